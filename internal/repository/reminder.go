package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/database"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

type ReminderRepository struct {
	db *database.DB
}

func NewReminderRepository(db *database.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	reminder.ID = uuid.New()
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO reminders (id, name, todo_id, remind_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		reminder.ID, reminder.Name, reminder.TodoID, reminder.RemindAt.UTC(),
	).Scan(&reminder.CreatedAt)
}

func (r *ReminderRepository) GetByID(ctx context.Context, reminderID uuid.UUID) (*models.Reminder, error) {
	reminder := &models.Reminder{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, todo_id, remind_at, created_at
		 FROM reminders WHERE id = $1`,
		reminderID,
	).Scan(&reminder.ID, &reminder.Name, &reminder.TodoID, &reminder.RemindAt, &reminder.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return reminder, nil
}

// GetAll returns every reminder, joined with the owning user's Telegram id so
// the restart reloader can address the notification without extra lookups.
func (r *ReminderRepository) GetAll(ctx context.Context) ([]*models.ReminderWithOwner, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT rem.id, rem.name, rem.todo_id, rem.remind_at, rem.created_at, u.telegram_id
		 FROM reminders rem
		 JOIN todos t ON t.id = rem.todo_id
		 JOIN users u ON u.id = t.user_id
		 ORDER BY rem.remind_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.ReminderWithOwner
	for rows.Next() {
		reminder := &models.ReminderWithOwner{}
		if err := rows.Scan(&reminder.ID, &reminder.Name, &reminder.TodoID, &reminder.RemindAt,
			&reminder.CreatedAt, &reminder.OwnerTelegramID); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (r *ReminderRepository) Delete(ctx context.Context, reminderID uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM reminders WHERE id = $1`,
		reminderID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
