package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is an optional early notification for a todo (one-to-one). It is
// deleted as soon as its notification fires, or earlier if the todo is
// resolved first. Name is the scheduler job name, derived from the todo id.
type Reminder struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TodoID    uuid.UUID `json:"todo_id"`
	RemindAt  time.Time `json:"remind_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ReminderWithOwner carries the owning user's Telegram id alongside the
// reminder, for the restart reloader (Reminder -> Todo -> User join).
type ReminderWithOwner struct {
	Reminder
	OwnerTelegramID int64 `json:"owner_telegram_id"`
}
