// Package repository contains the repository layer for the CityPortal API
package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when creating a user whose
	// username is already taken
	ErrDuplicateUsername = errors.New("username already exists")
)
