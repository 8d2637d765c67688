package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/repository"
)

const (
	titleMinLen    = 3
	titleMaxLen    = 100
	locationMinLen = 3
	ratingMin      = 1
	ratingMax      = 5
)

// ScrapbookService enforces the ownership and visibility rules over the
// entry store
type ScrapbookService struct {
	repo repository.ScrapbookRepository
}

// NewScrapbookService creates a new scrapbook service
func NewScrapbookService(repo repository.ScrapbookRepository) *ScrapbookService {
	return &ScrapbookService{repo: repo}
}

// ListPublic returns all public entries. Open to any caller.
func (s *ScrapbookService) ListPublic() ([]models.ScrapbookEntry, error) {
	return s.repo.ListPublic()
}

// ListByOwner returns all of the owner's entries regardless of visibility
func (s *ScrapbookService) ListByOwner(ownerID uint) ([]models.ScrapbookEntry, error) {
	return s.repo.ListByOwner(ownerID)
}

// Get returns the entry if the viewer may see it. A private entry is
// readable only by its owner; viewerID is ignored unless authenticated.
func (s *ScrapbookService) Get(id uint, viewerID uint, authenticated bool) (*models.ScrapbookEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if !entry.IsPublic {
		if !authenticated || entry.OwnerID != viewerID {
			return nil, ErrNotEntryOwner
		}
	}
	return entry, nil
}

// Create validates the input and stores a new entry owned by ownerID
func (s *ScrapbookService) Create(ownerID uint, input models.ScrapbookInput) (*models.ScrapbookEntry, error) {
	fields := make(map[string]string)
	validateTitle(input.Title, fields)
	validateLocation(input.Location, fields)
	if input.Rating != nil {
		validateRating(*input.Rating, fields)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	entry := &models.ScrapbookEntry{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Date:        input.Date,
		ImageURL:    input.ImageURL,
		Tags:        input.Tags,
		Rating:      input.Rating,
		IsPublic:    input.IsPublic,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update merges the patch into the entry. Existence is checked before
// ownership so a missing entry reports not-found, not forbidden.
func (s *ScrapbookService) Update(id uint, ownerID uint, patch models.ScrapbookPatch) (*models.ScrapbookEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if entry.OwnerID != ownerID {
		return nil, ErrNotEntryOwner
	}

	applyPatch(entry, patch)

	fields := make(map[string]string)
	validateTitle(entry.Title, fields)
	validateLocation(entry.Location, fields)
	if entry.Rating != nil {
		validateRating(*entry.Rating, fields)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes the entry after the same existence and ownership
// checks as Update
func (s *ScrapbookService) Delete(id uint, ownerID uint) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	if entry.OwnerID != ownerID {
		return ErrNotEntryOwner
	}
	return s.repo.Delete(id)
}

// Counts returns the total and public entry counts
func (s *ScrapbookService) Counts() (int64, int64, error) {
	return s.repo.Counts()
}

func applyPatch(entry *models.ScrapbookEntry, patch models.ScrapbookPatch) {
	if patch.Title != nil {
		entry.Title = *patch.Title
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Location != nil {
		entry.Location = *patch.Location
	}
	if patch.Latitude != nil {
		entry.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		entry.Longitude = patch.Longitude
	}
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.ImageURL != nil {
		entry.ImageURL = *patch.ImageURL
	}
	if patch.Tags != nil {
		entry.Tags = *patch.Tags
	}
	if patch.Rating != nil {
		entry.Rating = patch.Rating
	}
	if patch.IsPublic != nil {
		entry.IsPublic = *patch.IsPublic
	}
}

func validateTitle(title string, fields map[string]string) {
	// bounds are in characters, not bytes
	n := utf8.RuneCountInString(title)
	if n < titleMinLen || n > titleMaxLen {
		fields["title"] = fmt.Sprintf("title must be between %d and %d characters", titleMinLen, titleMaxLen)
	}
}

func validateLocation(location string, fields map[string]string) {
	if utf8.RuneCountInString(location) < locationMinLen {
		fields["location"] = fmt.Sprintf("location must be at least %d characters", locationMinLen)
	}
}

func validateRating(rating int, fields map[string]string) {
	if rating < ratingMin || rating > ratingMax {
		fields["rating"] = fmt.Sprintf("rating must be between %d and %d", ratingMin, ratingMax)
	}
}
