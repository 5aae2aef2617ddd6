package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/database"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

type TodoRepository struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	todo.ID = uuid.New()
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO todos (id, user_id, details, due_date, utc_offset, done)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		todo.ID, todo.UserID, todo.Details, todo.DueDate.UTC(), todo.UTCOffset, todo.Done,
	).Scan(&todo.CreatedAt)
}

// GetByID returns the todo with its reminder joined in (nil when the reminder
// already fired or was never set). Returns (nil, nil) when the todo is gone.
func (r *TodoRepository) GetByID(ctx context.Context, todoID uuid.UUID) (*models.Todo, error) {
	todo := &models.Todo{}
	var (
		reminderID   *uuid.UUID
		reminderName *string
		remindAt     *time.Time
	)

	err := r.db.Pool.QueryRow(ctx,
		`SELECT t.id, t.user_id, t.details, t.due_date, t.utc_offset, t.done, t.created_at, t.updated_at,
		        rem.id, rem.name, rem.remind_at
		 FROM todos t
		 LEFT JOIN reminders rem ON rem.todo_id = t.id
		 WHERE t.id = $1`,
		todoID,
	).Scan(&todo.ID, &todo.UserID, &todo.Details, &todo.DueDate, &todo.UTCOffset, &todo.Done,
		&todo.CreatedAt, &todo.UpdatedAt, &reminderID, &reminderName, &remindAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if reminderID != nil {
		todo.Reminder = &models.Reminder{
			ID:       *reminderID,
			Name:     *reminderName,
			TodoID:   todo.ID,
			RemindAt: *remindAt,
		}
	}
	return todo, nil
}

// GetByUserID returns the user's todos with the given done flag, ordered by
// due date ascending.
func (r *TodoRepository) GetByUserID(ctx context.Context, userID uuid.UUID, done bool) ([]*models.Todo, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, user_id, details, due_date, utc_offset, done, created_at, updated_at
		 FROM todos WHERE user_id = $1 AND done = $2
		 ORDER BY due_date ASC`,
		userID, done,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTodos(rows)
}

// GetAllPending returns every not-done todo regardless of owner, ordered by
// due date ascending, joined with the owning user's Telegram id. Used by the
// restart reloader.
func (r *TodoRepository) GetAllPending(ctx context.Context) ([]*models.TodoWithOwner, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT t.id, t.user_id, t.details, t.due_date, t.utc_offset, t.done, t.created_at, t.updated_at,
		        u.telegram_id
		 FROM todos t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.done = FALSE
		 ORDER BY t.due_date ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*models.TodoWithOwner
	for rows.Next() {
		todo := &models.TodoWithOwner{}
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Details, &todo.DueDate, &todo.UTCOffset,
			&todo.Done, &todo.CreatedAt, &todo.UpdatedAt, &todo.OwnerTelegramID); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// SetDone flips the done flag to true. The flag is monotonic: it is never
// reset to false. Returns false when no row matched.
func (r *TodoRepository) SetDone(ctx context.Context, todoID uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE todos SET done = TRUE, updated_at = NOW() WHERE id = $1`,
		todoID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the todo. The reminder row, if any, goes with it through the
// ON DELETE CASCADE on reminders.todo_id.
func (r *TodoRepository) Delete(ctx context.Context, todoID uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM todos WHERE id = $1`,
		todoID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTodos(rows pgx.Rows) ([]*models.Todo, error) {
	var todos []*models.Todo
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Details, &todo.DueDate, &todo.UTCOffset,
			&todo.Done, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}
