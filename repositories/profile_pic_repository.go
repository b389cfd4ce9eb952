package repositories

import (
	"context"
	"errors"
	"fmt"

	"learning-portal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfilePicRepository struct {
	db *pgxpool.Pool
}

func NewProfilePicRepository(db *pgxpool.Pool) *ProfilePicRepository {
	return &ProfilePicRepository{db: db}
}

func (r *ProfilePicRepository) GetByUser(ctx context.Context, userID int) (*models.ProfilePic, error) {
	pic := &models.ProfilePic{UserID: userID}
	err := r.db.QueryRow(ctx,
		"SELECT id, file_path FROM user_profile_pics WHERE user_id = $1",
		userID,
	).Scan(&pic.ID, &pic.FilePath)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile pic: %w", err)
	}
	return pic, nil
}

// Upsert stores the file path, updating the existing row when the user
// already has one. At most one picture per user.
func (r *ProfilePicRepository) Upsert(ctx context.Context, userID int, filePath string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_profile_pics (user_id, file_path)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET file_path = EXCLUDED.file_path`,
		userID, filePath,
	)
	if err != nil {
		return fmt.Errorf("upsert profile pic: %w", err)
	}
	return nil
}
