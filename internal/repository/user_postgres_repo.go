package repository

import (
	"errors"

	"github.com/civicstack/cityportal/internal/models"
	"gorm.io/gorm"
)

// PostgresUserRepository is the durable user store
type PostgresUserRepository struct {
	DB *gorm.DB
}

// NewPostgresUserRepository creates a Postgres-backed user repository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// Create stores the user. The unique index on username backs the
// duplicate check; the pre-read keeps the common case cheap.
func (r *PostgresUserRepository) Create(user *models.User) error {
	var count int64
	if err := r.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUsername
	}

	err := r.DB.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	return err
}

// GetByID returns the user with the given ID
func (r *PostgresUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username
func (r *PostgresUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by ID
func (r *PostgresUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the number of users
func (r *PostgresUserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&models.User{}).Count(&count).Error
	return count, err
}
