package repositories

import (
	"context"
	"fmt"
	"time"

	"learning-portal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CourseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, COALESCE(description, ''), COALESCE(duration_weeks, 0) FROM courses ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DurationWeeks); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// ListByUser returns the caller's enrollments with course names, newest
// enrollment first.
func (r *CourseRepository) ListByUser(ctx context.Context, userID int) ([]models.UserCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT uc.id, uc.course_id, c.name, uc.status, uc.completion_pct,
			uc.enrolled_on, uc.completed_on
		FROM user_courses uc
		JOIN courses c ON uc.course_id = c.id
		WHERE uc.user_id = $1
		ORDER BY uc.enrolled_on DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query user courses: %w", err)
	}
	defer rows.Close()

	enrollments := []models.UserCourse{}
	for rows.Next() {
		var uc models.UserCourse
		var enrolled time.Time
		var completed *time.Time
		err := rows.Scan(&uc.ID, &uc.CourseID, &uc.CourseName, &uc.Status, &uc.CompletionPct,
			&enrolled, &completed)
		if err != nil {
			return nil, fmt.Errorf("scan user course: %w", err)
		}
		uc.EnrolledOn = enrolled.Format("2006-01-02")
		if completed != nil {
			uc.CompletedOn = completed.Format("2006-01-02")
		}
		enrollments = append(enrollments, uc)
	}
	return enrollments, rows.Err()
}
