package repository

import (
	"github.com/civicstack/cityportal/internal/models"
)

// UserRepository is the storage contract for portal accounts. Both the
// in-memory and the Postgres implementations satisfy it, so the rest of
// the system is indifferent to durability.
type UserRepository interface {
	// Create assigns an ID and stores the user. Returns
	// ErrDuplicateUsername if the username is taken.
	Create(user *models.User) error

	// GetByID returns the user with the given ID or ErrNotFound
	GetByID(id uint) (*models.User, error)

	// GetByUsername returns the user with the given username or ErrNotFound
	GetByUsername(username string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Count returns the number of users
	Count() (int64, error)
}
