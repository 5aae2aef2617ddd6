package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/database"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO users (id, first_name, last_name, username, telegram_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		user.ID, user.FirstName, user.LastName, user.Username, user.TelegramID,
	).Scan(&user.CreatedAt)
}

// GetByTelegramID returns the user for the given Telegram id, with the
// location joined in when one is set. Returns (nil, nil) when not signed up.
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user := &models.User{}
	var (
		locationID *uuid.UUID
		latitude   *float64
		longitude  *float64
	)

	err := r.db.Pool.QueryRow(ctx,
		`SELECT u.id, u.first_name, u.last_name, u.username, u.telegram_id, u.created_at, u.updated_at,
		        l.id, l.latitude, l.longitude
		 FROM users u
		 LEFT JOIN locations l ON l.user_id = u.id
		 WHERE u.telegram_id = $1`,
		telegramID,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.TelegramID,
		&user.CreatedAt, &user.UpdatedAt, &locationID, &latitude, &longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if locationID != nil {
		user.Location = &models.Location{
			ID:        *locationID,
			UserID:    user.ID,
			Latitude:  *latitude,
			Longitude: *longitude,
		}
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, username, telegram_id, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.TelegramID,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
