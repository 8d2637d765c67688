package repository

import (
	"sort"
	"sync"

	"github.com/civicstack/cityportal/internal/models"
)

// MemoryScrapbookRepository is a process-lifetime entry store, shaped
// like MemoryUserRepository: mutex-guarded map with monotonically
// increasing IDs.
type MemoryScrapbookRepository struct {
	mu      sync.RWMutex
	entries map[uint]models.ScrapbookEntry
	nextID  uint
}

// NewMemoryScrapbookRepository creates an empty in-memory entry repository
func NewMemoryScrapbookRepository() *MemoryScrapbookRepository {
	return &MemoryScrapbookRepository{
		entries: make(map[uint]models.ScrapbookEntry),
		nextID:  1,
	}
}

// cloneEntry copies an entry so callers never share slices or pointers
// with the stored value
func cloneEntry(e models.ScrapbookEntry) models.ScrapbookEntry {
	out := e
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	if e.Latitude != nil {
		lat := *e.Latitude
		out.Latitude = &lat
	}
	if e.Longitude != nil {
		lng := *e.Longitude
		out.Longitude = &lng
	}
	if e.Rating != nil {
		rating := *e.Rating
		out.Rating = &rating
	}
	return out
}

// Create assigns the next ID and stores the entry
func (r *MemoryScrapbookRepository) Create(entry *models.ScrapbookEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = cloneEntry(*entry)
	return nil
}

// GetByID returns the entry with the given ID
func (r *MemoryScrapbookRepository) GetByID(id uint) (*models.ScrapbookEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneEntry(e)
	return &out, nil
}

// ListPublic returns all public entries ordered by ID
func (r *MemoryScrapbookRepository) ListPublic() ([]models.ScrapbookEntry, error) {
	return r.list(func(e models.ScrapbookEntry) bool { return e.IsPublic })
}

// ListByOwner returns all entries owned by the given user ordered by ID
func (r *MemoryScrapbookRepository) ListByOwner(ownerID uint) ([]models.ScrapbookEntry, error) {
	return r.list(func(e models.ScrapbookEntry) bool { return e.OwnerID == ownerID })
}

func (r *MemoryScrapbookRepository) list(keep func(models.ScrapbookEntry) bool) ([]models.ScrapbookEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.ScrapbookEntry, 0)
	for _, e := range r.entries {
		if keep(e) {
			entries = append(entries, cloneEntry(e))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// Update replaces the stored entry
func (r *MemoryScrapbookRepository) Update(entry *models.ScrapbookEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return ErrNotFound
	}
	r.entries[entry.ID] = cloneEntry(*entry)
	return nil
}

// Delete removes the entry
func (r *MemoryScrapbookRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// Counts returns the total and public entry counts
func (r *MemoryScrapbookRepository) Counts() (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var public int64
	for _, e := range r.entries {
		if e.IsPublic {
			public++
		}
	}
	return int64(len(r.entries)), public, nil
}
