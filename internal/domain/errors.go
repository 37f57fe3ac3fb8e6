package domain

import "errors"

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrNoCredential   = errors.New("no credential stored")
	ErrSyncInProgress = errors.New("sync already in progress")
)
