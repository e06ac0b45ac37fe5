package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/content-archive-api/internal/database"
	"github.com/content-archive-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// GetByID retrieves a cached identity record; nil means not found
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, name, image, updated_at FROM users WHERE id = $1", id,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Image, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile rewrites the cached display name and avatar
func (r *userRepo) UpdateProfile(ctx context.Context, id, name, image string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET name = $2, image = $3, updated_at = $4 WHERE id = $1",
		id, name, image, time.Now(),
	)
	return err
}
