package repositories

import (
	"context"
	"fmt"
	"time"

	"learning-portal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EducationRepository struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) ListByUser(ctx context.Context, userID int) ([]models.Education, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.institute_id, i.name, e.degree_id, d.name,
			e.graduation_date, COALESCE(e.location, '')
		FROM user_education e
		LEFT JOIN institutes i ON e.institute_id = i.id
		LEFT JOIN degrees d ON e.degree_id = d.id
		WHERE e.user_id = $1
		ORDER BY e.graduation_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query education: %w", err)
	}
	defer rows.Close()

	entries := []models.Education{}
	for rows.Next() {
		var e models.Education
		var gradDate time.Time
		err := rows.Scan(&e.ID, &e.InstituteID, &e.InstituteName, &e.DegreeID, &e.DegreeName,
			&gradDate, &e.Location)
		if err != nil {
			return nil, fmt.Errorf("scan education: %w", err)
		}
		e.UserID = userID
		e.GraduationDate = gradDate.Format("2006-01-02")
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *EducationRepository) Insert(ctx context.Context, userID, instituteID, degreeID int, graduationDate, location string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO user_education (user_id, institute_id, degree_id, graduation_date, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		userID, instituteID, degreeID, graduationDate, nullIfEmpty(location),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert education: %w", err)
	}
	return id, nil
}

// Update is scoped to the owning user; an id owned by someone else
// matches zero rows.
func (r *EducationRepository) Update(ctx context.Context, userID int, req models.UpdateEducationRequest) error {
	_, err := r.db.Exec(ctx, `
		UPDATE user_education
		SET institute_id = $1, degree_id = $2, graduation_date = $3, location = $4
		WHERE id = $5 AND user_id = $6`,
		req.InstituteID, req.DegreeID, req.GraduationDate, nullIfEmpty(req.Location),
		req.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("update education: %w", err)
	}
	return nil
}
