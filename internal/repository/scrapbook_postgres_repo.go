package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/civicstack/cityportal/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// scrapbookRecord is the Postgres row shape for a scrapbook entry.
// Tags are stored as a JSON column.
type scrapbookRecord struct {
	ID          uint `gorm:"primaryKey"`
	OwnerID     uint `gorm:"index;not null"`
	Title       string
	Description string
	Location    string
	Latitude    *float64
	Longitude   *float64
	Date        string
	ImageURL    string
	Tags        datatypes.JSON
	Rating      *int
	IsPublic    bool `gorm:"index"`
}

func (scrapbookRecord) TableName() string {
	return models.ScrapbookEntriesTableName
}

func toRecord(e *models.ScrapbookEntry) (*scrapbookRecord, error) {
	rec := &scrapbookRecord{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		Date:        e.Date,
		ImageURL:    e.ImageURL,
		Rating:      e.Rating,
		IsPublic:    e.IsPublic,
	}
	if e.Tags != nil {
		tags, err := json.Marshal(e.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %v", err)
		}
		rec.Tags = datatypes.JSON(tags)
	}
	return rec, nil
}

func fromRecord(rec *scrapbookRecord) (*models.ScrapbookEntry, error) {
	e := &models.ScrapbookEntry{
		ID:          rec.ID,
		OwnerID:     rec.OwnerID,
		Title:       rec.Title,
		Description: rec.Description,
		Location:    rec.Location,
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
		Date:        rec.Date,
		ImageURL:    rec.ImageURL,
		Rating:      rec.Rating,
		IsPublic:    rec.IsPublic,
	}
	if len(rec.Tags) > 0 {
		if err := json.Unmarshal(rec.Tags, &e.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags: %v", err)
		}
	}
	return e, nil
}

// PostgresScrapbookRepository is the durable entry store
type PostgresScrapbookRepository struct {
	DB *gorm.DB
}

// NewPostgresScrapbookRepository creates a Postgres-backed entry repository
func NewPostgresScrapbookRepository(db *gorm.DB) *PostgresScrapbookRepository {
	return &PostgresScrapbookRepository{DB: db}
}

// Create stores the entry and writes the assigned ID back
func (r *PostgresScrapbookRepository) Create(entry *models.ScrapbookEntry) error {
	rec, err := toRecord(entry)
	if err != nil {
		return err
	}
	if err := r.DB.Create(rec).Error; err != nil {
		return err
	}
	entry.ID = rec.ID
	return nil
}

// GetByID returns the entry with the given ID
func (r *PostgresScrapbookRepository) GetByID(id uint) (*models.ScrapbookEntry, error) {
	var rec scrapbookRecord
	err := r.DB.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromRecord(&rec)
}

// ListPublic returns all public entries ordered by ID
func (r *PostgresScrapbookRepository) ListPublic() ([]models.ScrapbookEntry, error) {
	var recs []scrapbookRecord
	if err := r.DB.Where("is_public = ?", true).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return fromRecords(recs)
}

// ListByOwner returns all entries owned by the given user ordered by ID
func (r *PostgresScrapbookRepository) ListByOwner(ownerID uint) ([]models.ScrapbookEntry, error) {
	var recs []scrapbookRecord
	if err := r.DB.Where("owner_id = ?", ownerID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return fromRecords(recs)
}

func fromRecords(recs []scrapbookRecord) ([]models.ScrapbookEntry, error) {
	entries := make([]models.ScrapbookEntry, 0, len(recs))
	for i := range recs {
		e, err := fromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

// Update replaces the stored entry
func (r *PostgresScrapbookRepository) Update(entry *models.ScrapbookEntry) error {
	rec, err := toRecord(entry)
	if err != nil {
		return err
	}
	result := r.DB.Model(&scrapbookRecord{}).Where("id = ?", rec.ID).Select("*").Omit("id").Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the entry
func (r *PostgresScrapbookRepository) Delete(id uint) error {
	result := r.DB.Delete(&scrapbookRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns the total and public entry counts
func (r *PostgresScrapbookRepository) Counts() (int64, int64, error) {
	var total, public int64
	if err := r.DB.Model(&scrapbookRecord{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.DB.Model(&scrapbookRecord{}).Where("is_public = ?", true).Count(&public).Error; err != nil {
		return 0, 0, err
	}
	return total, public, nil
}
