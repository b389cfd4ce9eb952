package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"learning-portal/models"
	"learning-portal/utils"
)

// Mailer sends the registration welcome email. A nil Mailer disables
// outgoing mail.
type Mailer interface {
	SendWelcomeEmail(toEmail, firstName string) error
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
	mailer Mailer
}

func NewAuthService(users UserStore, tokens *TokenService, mailer Mailer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		mailer: mailer,
	}
}

// Register creates a new user after checking that neither the email nor the
// contact number is taken. Returns the new user id.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (int, error) {
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

	user := &models.User{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		ContactNo:       req.ContactNo,
		GenderID:        req.GenderID,
		DateOfBirth:     req.DateOfBirth,
		CurrentStatusID: req.CurrentStatusID,
		Password:        hash,
	}

	userID, err := s.users.Create(ctx, user)
	if err != nil {
		return 0, err
	}

	if s.mailer != nil {
		go func(email, name string) {
			if err := s.mailer.SendWelcomeEmail(email, name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", email, err)
			}
		}(req.Email, req.FirstName)
	}

	return userID, nil
}

// Login accepts email or contact number as identifier and returns a signed
// token with a user summary. Unknown identifiers and bad passwords get the
// same answer.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByIdentifier(ctx, req.Identifier)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errors.New("invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User: models.UserBrief{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	}, nil
}
