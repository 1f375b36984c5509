package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/skisyula/jobify-be/internal/apperr"
	"github.com/skisyula/jobify-be/internal/auth"
	"github.com/skisyula/jobify-be/internal/models"
	"github.com/skisyula/jobify-be/internal/services"
)

// AuthHandler handles registration, login and profile updates.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePayload defines the structure for profile update requests. All four
// fields are required.
type UpdatePayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
}

// AuthResponse is the body returned by register, login and update.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("Invalid request body"))
		return
	}

	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		writeError(w, apperr.Validation("Please provide all values"))
		return
	}

	user, err := h.users.CreateUser(payload.Name, payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("Invalid request body"))
		return
	}

	if payload.Email == "" || payload.Password == "" {
		writeError(w, apperr.Validation("Please provide all values"))
		return
	}

	user, err := h.users.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

// Update handles updating the authenticated user's profile. A fresh token
// is issued on every successful update, whether or not identity-bearing
// fields changed.
func (h *AuthHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, apperr.Auth("Authentication Invalid"))
		return
	}

	var payload UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("Invalid request body"))
		return
	}

	if payload.Name == "" || payload.Email == "" || payload.LastName == "" || payload.Location == "" {
		writeError(w, apperr.Validation("Please provide all values"))
		return
	}

	user, err := h.users.UpdateUser(userID, models.UserUpdate{
		Name:     payload.Name,
		Email:    payload.Email,
		LastName: payload.LastName,
		Location: payload.Location,
	})
	if err != nil {
		// A valid token naming a user that no longer exists is treated as
		// an authentication failure, not a 404.
		if apperr.Status(err) == http.StatusNotFound {
			err = apperr.Auth("Authentication Invalid")
		}
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to update user")
		writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}
