// Package models contains the models for the CityPortal API
package models

import (
	"time"
)

const UsersTableName = "users"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered portal account. The stored password is either a
// salted scrypt hash or a legacy plaintext value for seeded accounts.
// It is never serialized: responses carry the PublicUser projection.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password  string    `gorm:"size:256;not null" json:"-"`
	Name      string    `gorm:"size:128" json:"name"`
	Role      string    `gorm:"size:16;default:user" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (User) TableName() string {
	return UsersTableName
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicUser is the response projection of User. It has no credential
// field, so password stripping is structural rather than per-handler
// discipline.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Public returns the response projection of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}

// PublicUsers maps a user list to its response projection
func PublicUsers(users []User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}
