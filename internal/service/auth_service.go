package service

import (
	"errors"
	"strings"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/repository"
	"github.com/civicstack/cityportal/pkg/utils/password"
	"github.com/civicstack/cityportal/pkg/utils/zaplogger"
)

// Seed accounts installed at process start. Plaintext credentials keep
// the legacy verification branch exercised until a one-time migration
// retires it.
var seedUsers = []models.User{
	{Username: "admin", Password: "admin123", Name: "Portal Administrator", Role: models.RoleAdmin},
	{Username: "citizen", Password: "citizen123", Name: "Demo Citizen", Role: models.RoleUser},
}

// AuthService orchestrates registration, login and user lookups
type AuthService struct {
	repo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(repo repository.UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register validates the request, hashes the password and stores the
// new user. Role defaults to "user" when not supplied.
func (s *AuthService) Register(username, plainPassword, name, role string) (*models.User, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(username) == "" {
		fields["username"] = "username is required"
	}
	if plainPassword == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Name:     name,
		Role:     role,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks the supplied credentials and returns the user
func (s *AuthService) Authenticate(username, plainPassword string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !password.Verify(plainPassword, user.Password) {
		return nil, ErrIncorrectPassword
	}
	return user, nil
}

// User returns the user with the given ID
func (s *AuthService) User(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users. The admin gate lives in the middleware,
// not here.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.repo.List()
}

// Seed installs the fixed seed accounts. Accounts already present are
// left untouched, so Seed is safe to run on every start.
func (s *AuthService) Seed() error {
	for _, seed := range seedUsers {
		if _, err := s.repo.GetByUsername(seed.Username); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		user := seed
		if err := s.repo.Create(&user); err != nil {
			return err
		}
		zaplogger.Info("seeded user", zaplogger.Fields{
			"username": user.Username,
			"role":     user.Role,
		})
	}
	return nil
}
