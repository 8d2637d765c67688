package repository

import (
	"github.com/civicstack/cityportal/internal/models"
)

// ScrapbookRepository is the storage contract for scrapbook entries.
// Ownership and visibility rules live in the service layer; the
// repository only stores and retrieves.
type ScrapbookRepository interface {
	// Create assigns an ID and stores the entry
	Create(entry *models.ScrapbookEntry) error

	// GetByID returns the entry with the given ID or ErrNotFound
	GetByID(id uint) (*models.ScrapbookEntry, error)

	// ListPublic returns all entries flagged public
	ListPublic() ([]models.ScrapbookEntry, error)

	// ListByOwner returns all entries owned by the given user,
	// public or not
	ListByOwner(ownerID uint) ([]models.ScrapbookEntry, error)

	// Update replaces the stored entry. Returns ErrNotFound if the
	// entry does not exist.
	Update(entry *models.ScrapbookEntry) error

	// Delete removes the entry. Returns ErrNotFound if the entry
	// does not exist.
	Delete(id uint) error

	// Counts returns the total and public entry counts
	Counts() (total int64, public int64, err error)
}
