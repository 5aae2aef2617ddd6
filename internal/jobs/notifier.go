package jobs

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/format"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/pending"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/scheduler"
)

// TodoStore is the slice of the todo repository the notifier reads from.
type TodoStore interface {
	GetByID(ctx context.Context, todoID uuid.UUID) (*models.Todo, error)
	GetAllPending(ctx context.Context) ([]*models.TodoWithOwner, error)
}

// ReminderStore is the slice of the reminder repository the notifier uses.
type ReminderStore interface {
	GetAll(ctx context.Context) ([]*models.ReminderWithOwner, error)
	Delete(ctx context.Context, reminderID uuid.UUID) (bool, error)
}

// Notifier owns the two notification callbacks of a todo and their
// scheduling. Both callbacks re-retrieve the todo when they fire: a row that
// vanished in the meantime (resolved concurrently, or cancelled in the race
// window between timer pop and invocation) makes the fire a no-op.
type Notifier struct {
	api      *tgbotapi.BotAPI
	sched    *scheduler.Scheduler
	todos    TodoStore
	remind   ReminderStore
	pendings *pending.Index
}

func NewNotifier(
	api *tgbotapi.BotAPI,
	sched *scheduler.Scheduler,
	todoRepo TodoStore,
	reminderRepo ReminderStore,
	pendings *pending.Index,
) *Notifier {
	return &Notifier{
		api:      api,
		sched:    sched,
		todos:    todoRepo,
		remind:   reminderRepo,
		pendings: pendings,
	}
}

// ScheduleDue registers the due-date job for a todo, unless one is already
// pending (the reminder path schedules it first when both are chosen).
func (n *Notifier) ScheduleDue(todoID uuid.UUID, chatID int64, dueDate time.Time) error {
	name := TodoJobName(todoID)
	if n.sched.Has(name) {
		return nil
	}
	return n.sched.Schedule(name, dueDate, func(ctx context.Context) {
		n.runDue(ctx, todoID, chatID)
	})
}

// ScheduleReminder registers the early-reminder job for a todo.
func (n *Notifier) ScheduleReminder(todoID uuid.UUID, chatID int64, remindAt time.Time) error {
	return n.sched.Schedule(ReminderJobName(todoID), remindAt, func(ctx context.Context) {
		n.runReminder(ctx, todoID, chatID)
	})
}

// runDue fires at the todo's due date: it sends the react-to-complete prompt
// and records the sent message in the pending-acknowledgement index.
func (n *Notifier) runDue(ctx context.Context, todoID uuid.UUID, chatID int64) {
	todo, err := n.todos.GetByID(ctx, todoID)
	if err != nil {
		log.Printf("Due job %s: failed to retrieve todo: %v", todoID, err)
		return
	}
	if todo == nil || todo.Done {
		return
	}

	msg := tgbotapi.NewMessage(chatID, format.DueNotification(todo))
	msg.ParseMode = tgbotapi.ModeHTML
	sent, err := n.api.Send(msg)
	if err != nil {
		log.Printf("Due job %s: failed to send notification: %v", todoID, err)
		return
	}

	n.pendings.Put(chatID, sent.MessageID, todoID)

	// A reminder row can outlive its job (e.g. it expired while the process
	// was down); the due notification supersedes it either way.
	if todo.Reminder != nil {
		if _, err := n.remind.Delete(ctx, todo.Reminder.ID); err != nil {
			log.Printf("Due job %s: failed to delete reminder: %v", todoID, err)
		}
	}
}

// runReminder fires at the early reminder time: it sends the heads-up message
// and deletes the reminder row so it can never fire a second time. No
// pending-index entry is recorded here, the reaction affordance belongs to
// the due notification.
func (n *Notifier) runReminder(ctx context.Context, todoID uuid.UUID, chatID int64) {
	todo, err := n.todos.GetByID(ctx, todoID)
	if err != nil {
		log.Printf("Reminder job %s: failed to retrieve todo: %v", todoID, err)
		return
	}
	if todo == nil || todo.Done {
		return
	}

	remindAt := time.Now().UTC()
	if todo.Reminder != nil {
		remindAt = todo.Reminder.RemindAt
	}

	msg := tgbotapi.NewMessage(chatID, format.ReminderNotification(todo, remindAt))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.api.Send(msg); err != nil {
		log.Printf("Reminder job %s: failed to send notification: %v", todoID, err)
		return
	}

	if todo.Reminder != nil {
		if _, err := n.remind.Delete(ctx, todo.Reminder.ID); err != nil {
			log.Printf("Reminder job %s: failed to delete reminder: %v", todoID, err)
		}
	}
}

// CancelJobs cancels whatever jobs of the todo are still pending and returns
// how many were dropped. Zero is a normal outcome (both already fired).
func (n *Notifier) CancelJobs(todoID uuid.UUID) int {
	return n.sched.CancelMatching(TodoJobPattern(todoID))
}
