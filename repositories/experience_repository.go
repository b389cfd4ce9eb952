package repositories

import (
	"context"
	"fmt"
	"time"

	"learning-portal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExperienceRepository struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) ListByUser(ctx context.Context, userID int) ([]models.Experience, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.company_id, c.name, e.designation_id, d.name,
			e.joining_date, e.relieving_date, COALESCE(e.location, '')
		FROM user_experience e
		LEFT JOIN companies c ON e.company_id = c.id
		LEFT JOIN designations d ON e.designation_id = d.id
		WHERE e.user_id = $1
		ORDER BY e.joining_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query experience: %w", err)
	}
	defer rows.Close()

	entries := []models.Experience{}
	for rows.Next() {
		var e models.Experience
		var joining time.Time
		var relieving *time.Time
		err := rows.Scan(&e.ID, &e.CompanyID, &e.CompanyName, &e.DesignationID, &e.DesignationName,
			&joining, &relieving, &e.Location)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		e.UserID = userID
		e.JoiningDate = joining.Format("2006-01-02")
		if relieving != nil {
			e.RelievingDate = relieving.Format("2006-01-02")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *ExperienceRepository) Insert(ctx context.Context, userID, companyID, designationID int, joiningDate, relievingDate, location string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO user_experience (user_id, company_id, designation_id, joining_date, relieving_date, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		userID, companyID, designationID, joiningDate, nullIfEmpty(relievingDate), nullIfEmpty(location),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert experience: %w", err)
	}
	return id, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, userID int, req models.UpdateExperienceRequest) error {
	_, err := r.db.Exec(ctx, `
		UPDATE user_experience
		SET company_id = $1, designation_id = $2, joining_date = $3, relieving_date = $4, location = $5
		WHERE id = $6 AND user_id = $7`,
		req.CompanyID, req.DesignationID, req.JoiningDate, nullIfEmpty(req.RelievingDate), nullIfEmpty(req.Location),
		req.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("update experience: %w", err)
	}
	return nil
}
