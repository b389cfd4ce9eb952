package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-portal/models"
	"learning-portal/repositories"
	"learning-portal/services"
)

type recordingMailer struct {
	sent chan string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{sent: make(chan string, 1)}
}

func (m *recordingMailer) SendWelcomeEmail(toEmail, firstName string) error {
	m.sent <- toEmail
	return nil
}

func registerReq() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:       "Asha",
		LastName:        "Raman",
		Email:           "asha@example.com",
		ContactNo:       "9876543210",
		GenderID:        2,
		DateOfBirth:     "1998-04-12",
		CurrentStatusID: 1,
		Password:        "s3cret-pw",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := repositories.NewInMemoryUserStore()
	tokens := services.NewTokenService("test-secret", time.Hour)
	mailer := newRecordingMailer()
	svc := services.NewAuthService(users, tokens, mailer)

	userID, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	assert.Equal(t, 1, userID)

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "asha@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email was never sent")
	}

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Identifier: "asha@example.com",
		Password:   "s3cret-pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID, resp.User.ID)
	assert.Equal(t, "Asha", resp.User.FirstName)

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := repositories.NewInMemoryUserStore()
	svc := services.NewAuthService(users, services.NewTokenService("test-secret", time.Hour), nil)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	second := registerReq()
	second.ContactNo = "1112223334"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestRegisterDuplicateContact(t *testing.T) {
	users := repositories.NewInMemoryUserStore()
	svc := services.NewAuthService(users, services.NewTokenService("test-secret", time.Hour), nil)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	second := registerReq()
	second.Email = "other@example.com"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestLoginWithContactNumber(t *testing.T) {
	users := repositories.NewInMemoryUserStore()
	svc := services.NewAuthService(users, services.NewTokenService("test-secret", time.Hour), nil)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Identifier: "9876543210",
		Password:   "s3cret-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users := repositories.NewInMemoryUserStore()
	svc := services.NewAuthService(users, services.NewTokenService("test-secret", time.Hour), nil)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, wrongPw := svc.Login(context.Background(), models.LoginRequest{
		Identifier: "asha@example.com",
		Password:   "wrong",
	})
	_, unknownUser := svc.Login(context.Background(), models.LoginRequest{
		Identifier: "nobody@example.com",
		Password:   "s3cret-pw",
	})

	require.Error(t, wrongPw)
	require.Error(t, unknownUser)
	// unknown identifier and bad password must be indistinguishable
	assert.Equal(t, wrongPw.Error(), unknownUser.Error())
}
