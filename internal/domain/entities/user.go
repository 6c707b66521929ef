package entities

import (
	"time"

	"github.com/google/uuid"
)

// CalendarProvider identifies the calendar service linked to a user
type CalendarProvider string

const (
	CalendarProviderGoogle CalendarProvider = "google"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string           `json:"name" gorm:"type:varchar(255);not null"`
	Email        string           `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string           `json:"-" gorm:"column:password_hash;type:text;not null"` // Never expose in JSON
	Calendar     CalendarProvider `json:"calendar_provider,omitempty" gorm:"column:calendar_provider;type:varchar(50);default:'google'"`

	// Refresh token for the linked calendar; never serialized.
	CalendarRefreshToken *string `json:"-" gorm:"column:calendar_refresh_token;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with default values
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Calendar:     CalendarProviderGoogle,
		CreatedAt:    time.Now(),
	}
}
