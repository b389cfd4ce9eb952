package services

import (
	"context"

	"learning-portal/models"
)

// Store interfaces consumed by the services. The pgx implementations live
// in the repositories package; in-memory implementations back the tests.

type UserStore interface {
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	ExistsByEmailOrContact(ctx context.Context, email, contactNo string) (bool, error)
	Create(ctx context.Context, user *models.User) (int, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID int) (*models.ProfileView, error)
	ApplyProfileUpdate(ctx context.Context, userID int, req models.UpdateProfileRequest) error
	CreateProfile(ctx context.Context, req models.CreateProfileRequest, passwordHash string) (int, error)
}

type ProfilePicStore interface {
	GetByUser(ctx context.Context, userID int) (*models.ProfilePic, error)
	Upsert(ctx context.Context, userID int, filePath string) error
}

type EducationStore interface {
	ListByUser(ctx context.Context, userID int) ([]models.Education, error)
	Insert(ctx context.Context, userID, instituteID, degreeID int, graduationDate, location string) (int, error)
	Update(ctx context.Context, userID int, req models.UpdateEducationRequest) error
}

type ExperienceStore interface {
	ListByUser(ctx context.Context, userID int) ([]models.Experience, error)
	Insert(ctx context.Context, userID, companyID, designationID int, joiningDate, relievingDate, location string) (int, error)
	Update(ctx context.Context, userID int, req models.UpdateExperienceRequest) error
}

type ReferenceStore interface {
	ListGenders(ctx context.Context) ([]models.Lookup, error)
	ListCountries(ctx context.Context) ([]models.Lookup, error)
	ListCurrentStatuses(ctx context.Context) ([]models.Lookup, error)
	ListDegrees(ctx context.Context) ([]models.Lookup, error)
	ListDesignations(ctx context.Context) ([]models.Lookup, error)
	ListStates(ctx context.Context, countryID int) ([]models.State, error)
	ListAppModules(ctx context.Context) ([]models.AppModule, error)
	FindOrCreateInstitute(ctx context.Context, name, location string) (int, error)
	FindOrCreateCompany(ctx context.Context, name, location string) (int, error)
}

type CourseStore interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListByUser(ctx context.Context, userID int) ([]models.UserCourse, error)
}
