package models

type Education struct {
	ID             int    `json:"id"`
	UserID         int    `json:"-"`
	InstituteID    int    `json:"institute_id"`
	InstituteName  string `json:"institute_name"`
	DegreeID       int    `json:"degree_id"`
	DegreeName     string `json:"degree_name"`
	GraduationDate string `json:"graduation_date"`
	Location       string `json:"location"`
}

type Experience struct {
	ID              int    `json:"id"`
	UserID          int    `json:"-"`
	CompanyID       int    `json:"company_id"`
	CompanyName     string `json:"company_name"`
	DesignationID   int    `json:"designation_id"`
	DesignationName string `json:"designation_name"`
	JoiningDate     string `json:"joining_date"`
	RelievingDate   string `json:"relieving_date"`
	Location        string `json:"location"`
}

// ProfilePic is the at-most-one stored-file reference per user.
type ProfilePic struct {
	ID       int    `json:"id"`
	UserID   int    `json:"-"`
	FilePath string `json:"profile_pic"`
}
