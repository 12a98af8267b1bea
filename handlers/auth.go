package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"notes-api/models"
	"notes-api/service/auth"
)

type AuthHandler struct {
	service auth.Service
	logger  zerolog.Logger
}

func NewAuthHandler(service auth.Service, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req authRequest) validate() map[string][]string {
	errs := map[string][]string{}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = append(errs["email"], "The email field is required.")
	}
	if req.Password == "" {
		errs["password"] = append(errs["password"], "The password field is required.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.validate(); errs != nil {
		validationError(w, errs)
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			validationError(w, map[string][]string{
				"email": {"The email has already been taken."},
			})
			return
		}
		h.logger.Error().Err(err).Msg("register failed")
		internalError(w)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		internalError(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(bearerToken(r)); err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondMessage(w, http.StatusOK, "Successfully logged out")
}
