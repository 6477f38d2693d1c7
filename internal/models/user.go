package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a person tracking their expenses.
//
// All other resources belong to exactly one user.
type User struct {
	DefaultModel
	Email             string    `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Name              string    `json:"name" example:"Jane" default:""`
	PasswordHash      string    `json:"-"`
	EmailVerified     bool      `json:"emailVerified" example:"true" default:"false"`
	VerificationToken uuid.UUID `json:"-"` // Token sent out on registration, cleared on verification
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	return nil
}
