package models

import "time"

// Admin is an administrator account for the console. Only the password
// hash is ever persisted, and it never serializes into responses.
type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null;size:255" json:"email"`
	PasswordHash string `gorm:"not null;size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
