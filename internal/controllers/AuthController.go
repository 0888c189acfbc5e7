package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"wsd/internal/providers"
	"wsd/internal/services"
)

type AuthController struct {
	logger  providers.Logger
	service services.AuthServiceInterface
}

func NewAuthController(logger providers.Logger, service services.AuthServiceInterface) *AuthController {
	return &AuthController{logger: logger, service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials and returns a 24h session token. The 401 body is
// the same whether the username exists or not.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "username and password are required"})
		return
	}
	if payload.Username == "" || payload.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "username and password are required"})
		return
	}

	token, user, err := ac.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Profile returns the canonical record behind the presented token. The auth
// middleware has already verified it.
func (ac *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := providers.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "unauthorized"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
