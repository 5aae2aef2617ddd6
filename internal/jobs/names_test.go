package jobs

import (
	"testing"

	"github.com/google/uuid"
)

func TestJobNames(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-e5f6-4789-8abc-def012345678")
	wantHex := "a1b2c3d4e5f647898abcdef012345678"

	if got := TodoJobName(id); got != "todo_user_job_"+wantHex {
		t.Errorf("TodoJobName = %q", got)
	}
	if got := ReminderJobName(id); got != "remind_user_job_"+wantHex {
		t.Errorf("ReminderJobName = %q", got)
	}
	if len(wantHex) != 32 {
		t.Fatalf("hex id length = %d, want 32", len(wantHex))
	}
}

func TestTodoJobPatternMatchesBothKinds(t *testing.T) {
	id := uuid.New()
	pattern := TodoJobPattern(id)

	if !pattern.MatchString(TodoJobName(id)) {
		t.Error("pattern does not match the due job name")
	}
	if !pattern.MatchString(ReminderJobName(id)) {
		t.Error("pattern does not match the reminder job name")
	}

	other := uuid.New()
	if pattern.MatchString(TodoJobName(other)) || pattern.MatchString(ReminderJobName(other)) {
		t.Error("pattern matched a different todo's job")
	}
}
