// Package format builds the user-facing message texts. All timestamps shown
// to the user are localized with the UTC offset stored on the todo, never
// with the server's timezone.
package format

import (
	"fmt"
	"time"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/timezone"
)

const timestampLayout = "2006-01-02 15:04"

// ApproveEmoji is the reaction that marks a todo as completed.
const ApproveEmoji = "👍"

// LocalTimestamp renders a stored UTC instant in the user's local terms.
func LocalTimestamp(utc time.Time, offsetSeconds int) string {
	return timezone.Localize(utc, offsetSeconds).Format(timestampLayout)
}

// DueTimestamp renders a todo's due date in the user's local terms.
func DueTimestamp(todo *models.Todo) string {
	return todo.LocalDueDate().Format(timestampLayout)
}

// DueNotification is the message sent when a todo reaches its due date. It
// carries the react-to-complete prompt.
func DueNotification(todo *models.Todo) string {
	return fmt.Sprintf(
		"⏰ Reminder (due %s)\n"+
			"To-do details:\n"+
			"<i>%s</i>\n\n"+
			"<i>React with a %s to the message to mark the to-do as completed.</i>",
		DueTimestamp(todo), todo.Details, ApproveEmoji,
	)
}

// ReminderNotification is the message sent at the early reminder time.
func ReminderNotification(todo *models.Todo, remindAt time.Time) string {
	return fmt.Sprintf(
		"⏰ Reminder (due %s)\n"+
			"(first reminder set at %s)\n"+
			"To-do details:\n"+
			"<i>%s</i>",
		DueTimestamp(todo),
		LocalTimestamp(remindAt, todo.UTCOffset),
		todo.Details,
	)
}

// TodoDetails is the drill-down text shown from the todos browser.
func TodoDetails(todo *models.Todo) string {
	text := fmt.Sprintf(
		"<b>📝 Todo:</b>\n"+
			"<b>Details:</b>\n"+
			"<code>%s</code>\n"+
			"<b>Due to:</b> %s\n",
		todo.Details, DueTimestamp(todo),
	)
	if todo.Reminder != nil {
		text += fmt.Sprintf("<b>Reminder:</b> %s", LocalTimestamp(todo.Reminder.RemindAt, todo.UTCOffset))
	}
	return text
}

// TodoCompleted confirms a completion, timestamped in the user's local terms.
func TodoCompleted(todo *models.Todo, completedAtUTC time.Time) string {
	return fmt.Sprintf("✅ To-Do (%s) checked as completed on %s",
		todo.Details, LocalTimestamp(completedAtUTC, todo.UTCOffset))
}

// TodoDeleted confirms a deletion, timestamped in the user's local terms.
func TodoDeleted(todo *models.Todo, deletedAtUTC time.Time) string {
	return fmt.Sprintf("❌ To-Do (%s) deleted on %s",
		todo.Details, LocalTimestamp(deletedAtUTC, todo.UTCOffset))
}
