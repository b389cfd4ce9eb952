package repositories

import (
	"context"
	"fmt"
	"time"

	"learning-portal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// ApplyProfileUpdate writes the user scalars and the submitted address list
// as one transaction. Each address is updated when it carries an id and
// inserted when it does not. An id owned by another user matches zero rows
// and is not an error. Any failure rolls the whole unit back.
func (r *ProfileRepository) ApplyProfileUpdate(ctx context.Context, userID int, req models.UpdateProfileRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin profile update: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, contact_no = $4,
			gender_id = $5, date_of_birth = $6, current_status_id = $7, updated_at = $8
		WHERE id = $9`,
		req.FirstName,
		req.LastName,
		req.Email,
		req.ContactNo,
		nullIfZero(req.GenderID),
		nullIfEmpty(req.DateOfBirth),
		nullIfZero(req.CurrentStatusID),
		time.Now(),
		userID,
	)
	if err != nil {
		return fmt.Errorf("update user row: %w", err)
	}

	for _, addr := range req.Addresses {
		if addr.AddressID != nil {
			// user_id in the WHERE clause keeps the write inside the
			// caller's own rows; a foreign id touches nothing.
			_, err = tx.Exec(ctx, `
				UPDATE addresses
				SET label = $1, door_no = $2, street = $3, area = $4,
					city = $5, pincode = $6, country_id = $7, state_id = $8
				WHERE id = $9 AND user_id = $10`,
				addr.Label,
				addr.DoorNo,
				addr.Street,
				addr.Area,
				addr.City,
				addr.Pincode,
				nullIfZero(addr.CountryID),
				nullIfZero(addr.StateID),
				*addr.AddressID,
				userID,
			)
		} else {
			_, err = tx.Exec(ctx, `
				INSERT INTO addresses (user_id, label, door_no, street, area, city, pincode, country_id, state_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				userID,
				addr.Label,
				addr.DoorNo,
				addr.Street,
				addr.Area,
				addr.City,
				addr.Pincode,
				nullIfZero(addr.CountryID),
				nullIfZero(addr.StateID),
			)
		}
		if err != nil {
			return fmt.Errorf("write address row: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// CreateProfile inserts the user row and its initial addresses in one
// transaction and returns the new user id.
func (r *ProfileRepository) CreateProfile(ctx context.Context, req models.CreateProfileRequest, passwordHash string) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin profile create: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	var userID int
	err = tx.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, contact_no, gender_id, date_of_birth, current_status_id, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		req.FirstName,
		req.LastName,
		req.Email,
		req.ContactNo,
		nullIfZero(req.GenderID),
		nullIfEmpty(req.DateOfBirth),
		nullIfZero(req.CurrentStatusID),
		passwordHash,
		now,
		now,
	).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("insert user row: %w", err)
	}

	for _, addr := range req.Addresses {
		_, err = tx.Exec(ctx, `
			INSERT INTO addresses (user_id, label, door_no, street, area, city, pincode, country_id, state_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			userID,
			addr.Label,
			addr.DoorNo,
			addr.Street,
			addr.Area,
			addr.City,
			addr.Pincode,
			nullIfZero(addr.CountryID),
			nullIfZero(addr.StateID),
		)
		if err != nil {
			return 0, fmt.Errorf("insert address row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return userID, nil
}

// profileJoinRow is one row of the flat user/address/reference join.
type profileJoinRow struct {
	UserID            int
	FirstName         string
	LastName          string
	Email             string
	ContactNo         string
	GenderID          int
	GenderName        string
	DateOfBirth       *time.Time
	CurrentStatusID   int
	CurrentStatusName string
	AddressID         *int
	Label             string
	DoorNo            string
	Street            string
	Area              string
	City              string
	Pincode           string
	CountryID         int
	CountryName       string
	StateID           int
	StateName         string
}

// GetProfile returns the denormalized profile view for userID, or
// models.ErrNotFound when no user row matches.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID int) (*models.ProfileView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			u.id, u.first_name, u.last_name, u.email, u.contact_no,
			COALESCE(u.gender_id, 0), COALESCE(g.name, ''),
			u.date_of_birth,
			COALESCE(u.current_status_id, 0), COALESCE(cs.name, ''),
			a.id,
			COALESCE(a.label, ''), COALESCE(a.door_no, ''), COALESCE(a.street, ''),
			COALESCE(a.area, ''), COALESCE(a.city, ''), COALESCE(a.pincode, ''),
			COALESCE(a.country_id, 0), COALESCE(c.name, ''),
			COALESCE(a.state_id, 0), COALESCE(s.name, '')
		FROM users u
		LEFT JOIN genders g ON u.gender_id = g.id
		LEFT JOIN current_statuses cs ON u.current_status_id = cs.id
		LEFT JOIN addresses a ON u.id = a.user_id
		LEFT JOIN countries c ON a.country_id = c.id
		LEFT JOIN states s ON a.state_id = s.id
		WHERE u.id = $1
		ORDER BY a.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	defer rows.Close()

	var flat []profileJoinRow
	for rows.Next() {
		var row profileJoinRow
		err := rows.Scan(
			&row.UserID, &row.FirstName, &row.LastName, &row.Email, &row.ContactNo,
			&row.GenderID, &row.GenderName,
			&row.DateOfBirth,
			&row.CurrentStatusID, &row.CurrentStatusName,
			&row.AddressID,
			&row.Label, &row.DoorNo, &row.Street,
			&row.Area, &row.City, &row.Pincode,
			&row.CountryID, &row.CountryName,
			&row.StateID, &row.StateName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read profile rows: %w", err)
	}

	if len(flat) == 0 {
		return nil, models.ErrNotFound
	}

	return composeProfile(flat), nil
}

// composeProfile folds the flat join result into one logical record. Rows
// carry the same user scalars; an address entry is emitted per non-null
// address id, so a user with no addresses gets an empty list.
func composeProfile(flat []profileJoinRow) *models.ProfileView {
	head := flat[0]

	view := &models.ProfileView{
		UserID:            head.UserID,
		FirstName:         head.FirstName,
		LastName:          head.LastName,
		Email:             head.Email,
		ContactNo:         head.ContactNo,
		GenderID:          head.GenderID,
		GenderName:        head.GenderName,
		CurrentStatusID:   head.CurrentStatusID,
		CurrentStatusName: head.CurrentStatusName,
		Addresses:         []models.AddressView{},
	}
	if head.DateOfBirth != nil {
		view.DateOfBirth = head.DateOfBirth.Format("2006-01-02")
	}

	for _, row := range flat {
		if row.AddressID == nil {
			continue
		}
		view.Addresses = append(view.Addresses, models.AddressView{
			Address: models.Address{
				ID:        *row.AddressID,
				UserID:    row.UserID,
				Label:     row.Label,
				DoorNo:    row.DoorNo,
				Street:    row.Street,
				Area:      row.Area,
				City:      row.City,
				Pincode:   row.Pincode,
				CountryID: row.CountryID,
				StateID:   row.StateID,
			},
			CountryName: row.CountryName,
			StateName:   row.StateName,
		})
	}

	return view
}

func nullIfZero(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

func nullIfEmpty(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}
