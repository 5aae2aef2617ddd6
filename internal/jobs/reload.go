package jobs

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Reload rebuilds the scheduler's registry from storage after a restart.
// Reminders and todos whose instant is already in the past are silently
// dropped: they can never fire, and no backfill notification is sent for a
// moment missed while offline.
func (n *Notifier) Reload(ctx context.Context) error {
	now := time.Now().UTC()

	reminders, err := n.remind.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}
	reloaded := 0
	for _, reminder := range reminders {
		if !reminder.RemindAt.After(now) {
			continue
		}
		if err := n.ScheduleReminder(reminder.TodoID, reminder.OwnerTelegramID, reminder.RemindAt); err != nil {
			log.Printf("Reload: failed to schedule reminder job for todo %s: %v", reminder.TodoID, err)
			continue
		}
		reloaded++
	}
	log.Printf("Reloaded %d reminder job(s)", reloaded)

	todos, err := n.todos.GetAllPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}
	reloaded = 0
	for _, todo := range todos {
		if !todo.DueDate.After(now) {
			continue
		}
		if err := n.ScheduleDue(todo.ID, todo.OwnerTelegramID, todo.DueDate); err != nil {
			log.Printf("Reload: failed to schedule due job for todo %s: %v", todo.ID, err)
			continue
		}
		reloaded++
	}
	log.Printf("Reloaded %d todo job(s)", reloaded)

	return nil
}
