package models

import (
	"testing"
	"time"
)

func TestLocalDueDate(t *testing.T) {
	todo := &Todo{
		DueDate:   time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		UTCOffset: 7200,
	}

	want := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	if got := todo.LocalDueDate(); !got.Equal(want) {
		t.Errorf("LocalDueDate = %v, want %v", got, want)
	}

	todo.UTCOffset = -5 * 3600
	want = time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC)
	if got := todo.LocalDueDate(); !got.Equal(want) {
		t.Errorf("LocalDueDate = %v, want %v", got, want)
	}
}
