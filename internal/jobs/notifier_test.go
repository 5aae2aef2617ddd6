package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/pending"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/scheduler"
)

type todoStoreStub struct {
	byID    map[uuid.UUID]*models.Todo
	pending []*models.TodoWithOwner
}

func (s *todoStoreStub) GetByID(_ context.Context, todoID uuid.UUID) (*models.Todo, error) {
	return s.byID[todoID], nil
}

func (s *todoStoreStub) GetAllPending(_ context.Context) ([]*models.TodoWithOwner, error) {
	return s.pending, nil
}

type reminderStoreStub struct {
	all     []*models.ReminderWithOwner
	deleted []uuid.UUID
}

func (s *reminderStoreStub) GetAll(_ context.Context) ([]*models.ReminderWithOwner, error) {
	return s.all, nil
}

func (s *reminderStoreStub) Delete(_ context.Context, reminderID uuid.UUID) (bool, error) {
	s.deleted = append(s.deleted, reminderID)
	return true, nil
}

func pendingTodo(id uuid.UUID, due time.Time) *models.TodoWithOwner {
	return &models.TodoWithOwner{
		Todo:            models.Todo{ID: id, Details: "t", DueDate: due},
		OwnerTelegramID: 1,
	}
}

func storedReminder(todoID uuid.UUID, at time.Time) *models.ReminderWithOwner {
	return &models.ReminderWithOwner{
		Reminder:        models.Reminder{ID: uuid.New(), Name: ReminderJobName(todoID), TodoID: todoID, RemindAt: at},
		OwnerTelegramID: 1,
	}
}

func TestReloadSchedulesFutureJobs(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)
	past := time.Now().UTC().Add(-time.Hour)

	withReminder := uuid.New()
	todoIDs := []uuid.UUID{withReminder, uuid.New(), uuid.New()}

	todos := &todoStoreStub{
		pending: []*models.TodoWithOwner{
			pendingTodo(todoIDs[0], future),
			pendingTodo(todoIDs[1], future),
			pendingTodo(todoIDs[2], past), // expired, must not be scheduled
		},
	}
	reminders := &reminderStoreStub{
		all: []*models.ReminderWithOwner{
			storedReminder(withReminder, future),
			storedReminder(uuid.New(), past), // expired
		},
	}

	sched := scheduler.New()
	defer sched.Stop()
	n := NewNotifier(nil, sched, todos, reminders, pending.NewIndex())

	if err := n.Reload(context.Background()); err != nil {
		t.Fatalf("Reload error: %v", err)
	}

	// 2 future due jobs + 1 future reminder job.
	if got := len(sched.Jobs()); got != 3 {
		t.Fatalf("scheduled %d jobs, want 3", got)
	}
	if !sched.Has(TodoJobName(todoIDs[0])) || !sched.Has(TodoJobName(todoIDs[1])) {
		t.Error("future due jobs not scheduled")
	}
	if !sched.Has(ReminderJobName(withReminder)) {
		t.Error("future reminder job not scheduled")
	}
	if sched.Has(TodoJobName(todoIDs[2])) {
		t.Error("expired todo must not be scheduled")
	}
}

func TestReloadWithOnlyExpiredRowsSchedulesNothing(t *testing.T) {
	past := time.Now().UTC().Add(-time.Minute)

	todos := &todoStoreStub{pending: []*models.TodoWithOwner{pendingTodo(uuid.New(), past)}}
	reminders := &reminderStoreStub{all: []*models.ReminderWithOwner{storedReminder(uuid.New(), past)}}

	sched := scheduler.New()
	defer sched.Stop()
	n := NewNotifier(nil, sched, todos, reminders, pending.NewIndex())

	if err := n.Reload(context.Background()); err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	if got := len(sched.Jobs()); got != 0 {
		t.Fatalf("scheduled %d jobs, want 0", got)
	}
}

func TestCancelJobsDropsBothJobsOfATodo(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)
	todoID := uuid.New()
	other := uuid.New()

	sched := scheduler.New()
	defer sched.Stop()
	n := NewNotifier(nil, sched, &todoStoreStub{}, &reminderStoreStub{}, pending.NewIndex())

	if err := n.ScheduleReminder(todoID, 1, future.Add(-time.Minute)); err != nil {
		t.Fatalf("ScheduleReminder error: %v", err)
	}
	if err := n.ScheduleDue(todoID, 1, future); err != nil {
		t.Fatalf("ScheduleDue error: %v", err)
	}
	if err := n.ScheduleDue(other, 1, future); err != nil {
		t.Fatalf("ScheduleDue error: %v", err)
	}

	if got := n.CancelJobs(todoID); got != 2 {
		t.Fatalf("cancelled %d jobs, want 2", got)
	}
	if got := n.CancelJobs(todoID); got != 0 {
		t.Fatalf("second cancel dropped %d jobs, want 0", got)
	}
	if !sched.Has(TodoJobName(other)) {
		t.Error("cancel must not touch another todo's jobs")
	}
}

func TestScheduleDueSkipsWhenAlreadyRegistered(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)
	todoID := uuid.New()

	sched := scheduler.New()
	defer sched.Stop()
	n := NewNotifier(nil, sched, &todoStoreStub{}, &reminderStoreStub{}, pending.NewIndex())

	if err := n.ScheduleDue(todoID, 1, future); err != nil {
		t.Fatalf("first ScheduleDue error: %v", err)
	}
	if err := n.ScheduleDue(todoID, 1, future.Add(time.Minute)); err != nil {
		t.Fatalf("repeat ScheduleDue must be a no-op, got error: %v", err)
	}
	if got := len(sched.Jobs()); got != 1 {
		t.Fatalf("scheduled %d jobs, want 1", got)
	}
}
