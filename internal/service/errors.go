// Package service contains the service layer for the CityPortal API
package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// auth errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidRole       = errors.New("invalid role")

	// scrapbook errors
	ErrEntryNotFound = errors.New("entry not found")
	ErrNotEntryOwner = errors.New("not the entry owner")
)

// ValidationError reports malformed input with per-field details
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
