package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-portal/controllers"
	"learning-portal/repositories"
	"learning-portal/services"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := repositories.NewInMemoryUserStore()
	tokens := services.NewTokenService("test-secret", time.Hour)
	ctrl := controllers.NewAuthController(services.NewAuthService(users, tokens, nil))

	router := gin.New()
	api := router.Group("/api")
	api.POST("/login/register", ctrl.Register)
	api.POST("/login", ctrl.Login)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router := authTestRouter()

	rec := postJSON(t, router, "/api/login/register", gin.H{
		"first_name":    "Asha",
		"last_name":     "Raman",
		"email":         "asha@example.com",
		"contact_no":    "9876543210",
		"gender_id":     2,
		"date_of_birth": "1998-04-12",
		"password":      "s3cret-pw",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":1`)

	// same email again
	rec = postJSON(t, router, "/api/login/register", gin.H{
		"first_name":    "Asha",
		"last_name":     "Raman",
		"email":         "asha@example.com",
		"contact_no":    "1112223334",
		"gender_id":     2,
		"date_of_birth": "1998-04-12",
		"password":      "s3cret-pw",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestRegisterEndpointValidation(t *testing.T) {
	router := authTestRouter()

	rec := postJSON(t, router, "/api/login/register", gin.H{
		"first_name": "Asha",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router := authTestRouter()

	rec := postJSON(t, router, "/api/login/register", gin.H{
		"first_name":    "Asha",
		"last_name":     "Raman",
		"email":         "asha@example.com",
		"contact_no":    "9876543210",
		"gender_id":     2,
		"date_of_birth": "1998-04-12",
		"password":      "s3cret-pw",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, router, "/api/login", gin.H{
		"email":    "asha@example.com",
		"password": "s3cret-pw",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)

	rec = postJSON(t, router, "/api/login", gin.H{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}
