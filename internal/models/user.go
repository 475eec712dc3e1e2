// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered MindEase user.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Department string    `gorm:"not null" json:"department"`
	Batch      string    `gorm:"not null" json:"batch"`
	Nickname   *string   `json:"nickname"`
	Bio        *string   `json:"bio"`
	AvatarURL  *string   `json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublicUser is the non-secret projection returned by login.
type PublicUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Batch      string `json:"batch"`
	Department string `json:"department"`
}

// Public returns the non-secret fields of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Batch:      u.Batch,
		Department: u.Department,
	}
}
