package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/database"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

type LocationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	location.ID = uuid.New()
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO locations (id, user_id, latitude, longitude)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		location.ID, location.UserID, location.Latitude, location.Longitude,
	).Scan(&location.CreatedAt)
}

// Update overwrites the coordinates of an existing location in place. A user
// has at most one location; whether to Create or Update is the caller's
// explicit check-then-act decision.
func (r *LocationRepository) Update(ctx context.Context, locationID uuid.UUID, latitude, longitude float64) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE locations SET latitude = $1, longitude = $2, updated_at = NOW()
		 WHERE id = $3`,
		latitude, longitude, locationID,
	)
	return err
}

func (r *LocationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Location, error) {
	location := &models.Location{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, user_id, latitude, longitude, created_at, updated_at
		 FROM locations WHERE user_id = $1`,
		userID,
	).Scan(&location.ID, &location.UserID, &location.Latitude, &location.Longitude,
		&location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return location, nil
}
