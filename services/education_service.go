package services

import (
	"context"
	"fmt"

	"learning-portal/models"
)

type EducationService struct {
	store EducationStore
	refs  ReferenceStore
}

func NewEducationService(store EducationStore, refs ReferenceStore) *EducationService {
	return &EducationService{
		store: store,
		refs:  refs,
	}
}

func (s *EducationService) List(ctx context.Context, userID int) ([]models.Education, error) {
	return s.store.ListByUser(ctx, userID)
}

// Insert resolves the institute first: an explicit institute_id wins,
// otherwise the (name, location) pair is found or created.
func (s *EducationService) Insert(ctx context.Context, userID int, req models.InsertEducationRequest) (int, error) {
	instituteID := req.InstituteID
	if instituteID == 0 {
		if req.InstituteName == "" || req.InstituteLocation == "" {
			return 0, fmt.Errorf("%w: either institute_id or both institute_name and institute_location are required", models.ErrValidation)
		}
		id, err := s.refs.FindOrCreateInstitute(ctx, req.InstituteName, req.InstituteLocation)
		if err != nil {
			return 0, err
		}
		instituteID = id
	}

	return s.store.Insert(ctx, userID, instituteID, req.DegreeID, req.GraduationDate, req.Location)
}

func (s *EducationService) Update(ctx context.Context, userID int, req models.UpdateEducationRequest) error {
	return s.store.Update(ctx, userID, req)
}
