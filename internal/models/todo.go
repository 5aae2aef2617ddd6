package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a user task that fires a notification at DueDate. DueDate is always
// stored in UTC; UTCOffset holds the signed offset (in seconds) that was in
// effect at the user's location when the due time was entered, so the due
// date can be shown in local terms later even across DST changes.
type Todo struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Details   string     `json:"details"`
	DueDate   time.Time  `json:"due_date"`
	UTCOffset int        `json:"utc_offset"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	// Populated by TodoRepository when the todo still has a pending reminder.
	Reminder *Reminder `json:"reminder,omitempty"`
}

// LocalDueDate returns the due date shifted into the user's wall-clock time.
func (t *Todo) LocalDueDate() time.Time {
	return t.DueDate.Add(time.Duration(t.UTCOffset) * time.Second)
}

// TodoWithOwner carries the owning user's Telegram id alongside the todo,
// for the restart reloader.
type TodoWithOwner struct {
	Todo
	OwnerTelegramID int64 `json:"owner_telegram_id"`
}
