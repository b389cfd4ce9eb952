package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learning-portal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByIdentifier looks a user up by email or contact number, the two
// credentials accepted at login.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	user := &models.User{}
	var dob *time.Time

	err := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, contact_no,
			COALESCE(gender_id, 0), date_of_birth, COALESCE(current_status_id, 0),
			password, created_at, updated_at
		FROM users
		WHERE email = $1 OR contact_no = $1`,
		identifier,
	).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.ContactNo,
		&user.GenderID,
		&dob,
		&user.CurrentStatusID,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if dob != nil {
		user.DateOfBirth = dob.Format("2006-01-02")
	}
	return user, nil
}

// ExistsByEmailOrContact reports whether either unique credential is
// already taken. Registration checks this before inserting so the store's
// uniqueness violation is never reached.
func (r *UserRepository) ExistsByEmailOrContact(ctx context.Context, email, contactNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR contact_no = $2)",
		email, contactNo,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user existence: %w", err)
	}
	return exists, nil
}

// Create inserts a bare user row (registration without addresses) and
// returns the new id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int, error) {
	now := time.Now()
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, contact_no, gender_id, date_of_birth, current_status_id, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		user.FirstName,
		user.LastName,
		user.Email,
		user.ContactNo,
		nullIfZero(user.GenderID),
		nullIfEmpty(user.DateOfBirth),
		nullIfZero(user.CurrentStatusID),
		user.Password,
		now,
		now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}
