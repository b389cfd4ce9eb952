package models

type RegisterRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	ContactNo       string `json:"contact_no" binding:"required"`
	GenderID        int    `json:"gender_id" binding:"required"`
	DateOfBirth     string `json:"date_of_birth" binding:"required"`
	CurrentStatusID int    `json:"current_status_id"`
	Password        string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	// Identifier accepts either the registered email or contact number.
	Identifier string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AddressInput is one entry of the profile payload's address list.
// AddressID nil means insert a new row; non-nil means update the row with
// that id, scoped to the authenticated user.
type AddressInput struct {
	AddressID *int   `json:"address_id,omitempty"`
	Label     string `json:"label"`
	DoorNo    string `json:"door_no"`
	Street    string `json:"street"`
	Area      string `json:"area"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	CountryID int    `json:"country_id"`
	StateID   int    `json:"state_id"`
}

// UpdateProfileRequest carries the seven mutable user scalars plus the
// ordered address list. All scalars are written last-write-wins; no diffing.
type UpdateProfileRequest struct {
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Email           string         `json:"email"`
	ContactNo       string         `json:"contact_no"`
	GenderID        int            `json:"gender_id"`
	DateOfBirth     string         `json:"date_of_birth"`
	CurrentStatusID int            `json:"current_status_id"`
	Addresses       []AddressInput `json:"addresses"`
}

type CreateProfileRequest struct {
	FirstName       string         `json:"first_name" binding:"required"`
	LastName        string         `json:"last_name" binding:"required"`
	Email           string         `json:"email" binding:"required,email"`
	ContactNo       string         `json:"contact_no" binding:"required"`
	GenderID        int            `json:"gender_id"`
	DateOfBirth     string         `json:"date_of_birth"`
	CurrentStatusID int            `json:"current_status_id"`
	Password        string         `json:"password" binding:"required,min=6"`
	Addresses       []AddressInput `json:"addresses"`
}

// InsertEducationRequest requires either institute_id or both
// institute_name and institute_location (the institute is then
// found-or-created).
type InsertEducationRequest struct {
	InstituteID       int    `json:"institute_id"`
	InstituteName     string `json:"institute_name"`
	InstituteLocation string `json:"institute_location"`
	DegreeID          int    `json:"degree_id" binding:"required"`
	GraduationDate    string `json:"graduation_date" binding:"required"`
	Location          string `json:"location"`
}

type UpdateEducationRequest struct {
	ID             int    `json:"id" binding:"required"`
	InstituteID    int    `json:"institute_id" binding:"required"`
	DegreeID       int    `json:"degree_id" binding:"required"`
	GraduationDate string `json:"graduation_date" binding:"required"`
	Location       string `json:"location"`
}

type InsertExperienceRequest struct {
	CompanyID       int    `json:"company_id"`
	CompanyName     string `json:"company_name"`
	CompanyLocation string `json:"company_location"`
	DesignationID   int    `json:"designation_id" binding:"required"`
	JoiningDate     string `json:"joining_date" binding:"required"`
	RelievingDate   string `json:"relieving_date"`
	Location        string `json:"location"`
}

type UpdateExperienceRequest struct {
	ID            int    `json:"id" binding:"required"`
	CompanyID     int    `json:"company_id" binding:"required"`
	DesignationID int    `json:"designation_id" binding:"required"`
	JoiningDate   string `json:"joining_date" binding:"required"`
	RelievingDate string `json:"relieving_date"`
	Location      string `json:"location"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  UserBrief `json:"user"`
}

// UserBrief is the user summary returned alongside a fresh token.
type UserBrief struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
