package format

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

func TestLocalTimestamp(t *testing.T) {
	utc := time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"utc+2", 7200, "2025-06-10 09:00"},
		{"utc", 0, "2025-06-10 07:00"},
		{"utc-5 across midnight", -5 * 3600, "2025-06-10 02:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalTimestamp(utc, tt.offset); got != tt.want {
				t.Errorf("LocalTimestamp = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDueTimestamp(t *testing.T) {
	todo := &models.Todo{
		DueDate:   time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		UTCOffset: 7200,
	}
	if got := DueTimestamp(todo); got != "2025-06-10 09:00" {
		t.Errorf("DueTimestamp = %q, want %q", got, "2025-06-10 09:00")
	}
}

func TestDueNotificationShowsLocalDueDate(t *testing.T) {
	todo := &models.Todo{
		ID:        uuid.New(),
		Details:   "water the plants",
		DueDate:   time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		UTCOffset: 7200,
	}

	text := DueNotification(todo)
	if !strings.Contains(text, "2025-06-10 09:00") {
		t.Errorf("due notification missing localized due date: %q", text)
	}
	if !strings.Contains(text, "water the plants") {
		t.Errorf("due notification missing details: %q", text)
	}
	if !strings.Contains(text, ApproveEmoji) {
		t.Errorf("due notification missing reaction prompt: %q", text)
	}
}

func TestTodoDetailsIncludesReminderOnlyWhenSet(t *testing.T) {
	todo := &models.Todo{
		ID:        uuid.New(),
		Details:   "pay rent",
		DueDate:   time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		UTCOffset: 7200,
	}

	if strings.Contains(TodoDetails(todo), "Reminder:") {
		t.Error("details without reminder should not mention one")
	}

	todo.Reminder = &models.Reminder{
		RemindAt: time.Date(2025, 6, 10, 6, 30, 0, 0, time.UTC),
	}
	text := TodoDetails(todo)
	if !strings.Contains(text, "Reminder:") || !strings.Contains(text, "2025-06-10 08:30") {
		t.Errorf("details missing localized reminder time: %q", text)
	}
}
