package services

import (
	"context"
	"fmt"

	"learning-portal/models"
)

type ExperienceService struct {
	store ExperienceStore
	refs  ReferenceStore
}

func NewExperienceService(store ExperienceStore, refs ReferenceStore) *ExperienceService {
	return &ExperienceService{
		store: store,
		refs:  refs,
	}
}

func (s *ExperienceService) List(ctx context.Context, userID int) ([]models.Experience, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *ExperienceService) Insert(ctx context.Context, userID int, req models.InsertExperienceRequest) (int, error) {
	companyID := req.CompanyID
	if companyID == 0 {
		if req.CompanyName == "" || req.CompanyLocation == "" {
			return 0, fmt.Errorf("%w: either company_id or both company_name and company_location are required", models.ErrValidation)
		}
		id, err := s.refs.FindOrCreateCompany(ctx, req.CompanyName, req.CompanyLocation)
		if err != nil {
			return 0, err
		}
		companyID = id
	}

	return s.store.Insert(ctx, userID, companyID, req.DesignationID, req.JoiningDate, req.RelievingDate, req.Location)
}

func (s *ExperienceService) Update(ctx context.Context, userID int, req models.UpdateExperienceRequest) error {
	return s.store.Update(ctx, userID, req)
}
