package util

import (
	"errors"
	"strings"
	"unicode"
)

// SanitizeFileName strips path separators and control characters and rejects
// traversal patterns, yielding a name safe to echo into logs and responses.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(name))
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
