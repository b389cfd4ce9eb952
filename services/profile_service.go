package services

import (
	"context"
	"fmt"

	"learning-portal/models"
	"learning-portal/utils"
)

type ProfileService struct {
	store ProfileStore
	users UserStore
	pics  ProfilePicStore
}

func NewProfileService(store ProfileStore, users UserStore, pics ProfilePicStore) *ProfileService {
	return &ProfileService{
		store: store,
		users: users,
		pics:  pics,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int) (*models.ProfileView, error) {
	return s.store.GetProfile(ctx, userID)
}

// UpdateProfile applies the scalar fields and the address list as one
// atomic unit; the store commits all of it or none of it.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) error {
	return s.store.ApplyProfileUpdate(ctx, userID, req)
}

// CreateProfile registers a user together with an initial address list.
func (s *ProfileService) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (int, error) {
	exists, err := s.users.ExistsByEmailOrContact(ctx, req.Email, req.ContactNo)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: email or contact number already exists", models.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	return s.store.CreateProfile(ctx, req, hash)
}

func (s *ProfileService) GetProfilePic(ctx context.Context, userID int) (*models.ProfilePic, error) {
	return s.pics.GetByUser(ctx, userID)
}

func (s *ProfileService) SaveProfilePic(ctx context.Context, userID int, filePath string) error {
	return s.pics.Upsert(ctx, userID, filePath)
}
