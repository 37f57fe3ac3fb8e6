// Package credential inspects the bearer token issued by the note service.
// The signature is not verified locally; only the service can do that.
package credential

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status is the structural and temporal validity of a token.
type Status struct {
	Format    bool
	UnExpired bool
	ExpiresAt time.Time
}

// Valid reports whether the token is well-formed and not expired.
func (s Status) Valid() bool {
	return s.Format && s.UnExpired
}

var parser = jwt.NewParser()

// Inspect decodes token and checks its expiry claim against now. A token that
// does not decode or carries no expiry is malformed.
func Inspect(token string, now time.Time) Status {
	if token == "" {
		return Status{}
	}

	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Status{}
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Status{}
	}

	return Status{
		Format:    true,
		UnExpired: now.Before(exp.Time),
		ExpiresAt: exp.Time,
	}
}
