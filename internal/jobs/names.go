package jobs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Job names are the contract with the scheduler: both jobs of a todo embed
// the 32-char hex form of its id, so cancelling ".*<hex>" always catches
// whichever of the two is still pending.

func TodoJobName(todoID uuid.UUID) string {
	return fmt.Sprintf("todo_user_job_%s", hex(todoID))
}

func ReminderJobName(todoID uuid.UUID) string {
	return fmt.Sprintf("remind_user_job_%s", hex(todoID))
}

// TodoJobPattern matches every job name belonging to the given todo.
func TodoJobPattern(todoID uuid.UUID) *regexp.Regexp {
	return regexp.MustCompile(".*" + hex(todoID))
}

func hex(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
