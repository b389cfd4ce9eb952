package models

type Course struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DurationWeeks int    `json:"duration_weeks"`
}

// UserCourse is one enrollment row joined to its course, as shown in the
// history and certificate views.
type UserCourse struct {
	ID            int    `json:"id"`
	CourseID      int    `json:"course_id"`
	CourseName    string `json:"course_name"`
	Status        string `json:"status"`
	CompletionPct int    `json:"completion_pct"`
	EnrolledOn    string `json:"enrolled_on"`
	CompletedOn   string `json:"completed_on,omitempty"`
}
