package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsd/internal/errs"
	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/testutil"
)

type fakeAuthService struct {
	token string
	user  *models.User
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (string, *models.User, error) {
	if f.user != nil && username == f.user.Username && password == "hunter2" {
		return f.token, f.user, nil
	}
	return "", nil, errs.ErrUnauthorized
}

func (f *fakeAuthService) Verify(_ context.Context, _ string) (*models.User, error) {
	return nil, errs.ErrUnauthorized
}

func (f *fakeAuthService) Register(_ context.Context, _, _, _ string) (*models.User, error) {
	return nil, errs.ErrValidation
}

func newTestAuthController() (*AuthController, *models.User) {
	user := &models.User{ID: uuid.New(), Username: "writer1", Role: models.RoleWriter}
	svc := &fakeAuthService{token: "session-token", user: user}
	return NewAuthController(&testutil.MockLogger{}, svc), user
}

func TestLogin_Success(t *testing.T) {
	ac, _ := newTestAuthController()

	body := strings.NewReader(`{"username": "writer1", "password": "hunter2"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rr := httptest.NewRecorder()
	ac.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "session-token", resp["token"])
	assert.Equal(t, "writer1", resp["username"])
	assert.Equal(t, models.RoleWriter, resp["role"])
}

func TestLogin_WrongCredentials(t *testing.T) {
	ac, _ := newTestAuthController()

	body := strings.NewReader(`{"username": "writer1", "password": "wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rr := httptest.NewRecorder()
	ac.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "unauthorized")
}

func TestLogin_UnknownUserSameBodyAsWrongPassword(t *testing.T) {
	ac, _ := newTestAuthController()

	run := func(payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
		rr := httptest.NewRecorder()
		ac.Login(rr, req)
		return rr
	}

	wrongPass := run(`{"username": "writer1", "password": "wrong"}`)
	noUser := run(`{"username": "ghost", "password": "wrong"}`)

	assert.Equal(t, wrongPass.Code, noUser.Code)
	assert.Equal(t, wrongPass.Body.String(), noUser.Body.String())
}

func TestLogin_MalformedBody(t *testing.T) {
	ac, _ := newTestAuthController()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":`))
	rr := httptest.NewRecorder()
	ac.Login(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_EmptyFields(t *testing.T) {
	ac, _ := newTestAuthController()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username": "writer1"}`))
	rr := httptest.NewRecorder()
	ac.Login(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "username and password are required")
}

func TestProfile_ReturnsContextUser(t *testing.T) {
	ac, user := newTestAuthController()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(providers.ContextWithUser(req.Context(), user))
	rr := httptest.NewRecorder()
	ac.Profile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		User struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.Equal(t, "writer1", resp.User.Username)
}

func TestProfile_NoUserInContext(t *testing.T) {
	ac, _ := newTestAuthController()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rr := httptest.NewRecorder()
	ac.Profile(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
