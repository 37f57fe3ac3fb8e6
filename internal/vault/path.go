package vault

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"unicode"
)

const (
	MaxTitleLength   = 100
	PlaceholderTitle = "Untitled"

	noteExt = ".md"

	maxSuffix = 100000
)

const illegalChars = `<>:"/\|?*`

// SanitizeTitle turns a note title into a single safe path segment.
func SanitizeTitle(title string) string {
	title = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, title)

	legal := strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalChars, r) {
			return -1
		}
		return r
	}, title)
	if strings.TrimSpace(legal) == "" {
		return PlaceholderTitle
	}

	title = strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalChars, r) {
			return '_'
		}
		return r
	}, title)
	title = strings.Join(strings.Fields(title), " ")

	if runes := []rune(title); len(runes) > MaxTitleLength {
		title = strings.TrimSpace(string(runes[:MaxTitleLength]))
	}

	switch title {
	case "", ".", "..":
		return PlaceholderTitle
	}
	return title
}

// NormalizePath unifies separators, resolves . and .. segments and strips
// leading and trailing slashes.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = path.Clean("/" + p)
	p = strings.Trim(p, "/")
	return p
}

// Join builds a normalized vault path from segments.
func Join(elem ...string) string {
	return NormalizePath(strings.Join(elem, "/"))
}

// Checker reports whether a vault path is taken.
type Checker interface {
	Exists(p string) (bool, error)
}

// UniquePath returns base + ".md", or base + " N.md" with the smallest N >= 1
// that is free. It is not atomic against concurrent writers.
func UniquePath(c Checker, base string) (string, error) {
	base = NormalizePath(base)

	candidate := base + noteExt
	for n := 1; n <= maxSuffix; n++ {
		taken, err := c.Exists(candidate)
		if err != nil {
			return "", fmt.Errorf("resolve path %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + " " + strconv.Itoa(n) + noteExt
	}
	return "", fmt.Errorf("resolve path %s: no free name", base)
}
