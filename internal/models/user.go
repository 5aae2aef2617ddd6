package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID  `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Username   *string    `json:"username"`
	TelegramID int64      `json:"telegram_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`

	// Populated by UserRepository.GetByTelegramID when the user has one.
	Location *Location `json:"location,omitempty"`
}

func (u *User) HasLocation() bool {
	return u.Location != nil
}
