package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daybook-labs/auth-service/internal/domain"
	"github.com/daybook-labs/auth-service/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignup processes a JSON signup request.
// POST /api/v1/auth/signup
// Request:  {"email":"...","password":"...","firstName":"...","lastName":"..."}
// Response: 201 {"token":"...","userId":"...","email":"...","firstName":"...","lastName":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	// Email and names are trimmed at the boundary; the password never
	// is. The store compares whatever it receives exactly as given.
	email := strings.TrimSpace(req.Email)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	acct, token, err := h.auth.Signup(r.Context(), email, req.Password, firstName, lastName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "email and password required")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "Email already registered")
		case errors.Is(err, domain.ErrStorageUnavailable):
			slog.Error("signup persist", "error", err)
			writeError(w, http.StatusInternalServerError, "Could not save account. Check that the data directory is writable.")
		default:
			slog.Error("signup", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toSessionDTO(acct, token))
}

// HandleLogin processes a JSON login request.
// POST /api/v1/auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 with the same body shape as signup
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	acct, token, err := h.auth.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "email and password required")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			slog.Error("login", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toSessionDTO(acct, token))
}

// HandleUpdateProfile processes a JSON profile update for the
// authenticated account. An omitted field keeps its current value.
// PATCH /api/v1/auth/profile
// Request:  {"firstName":"...","lastName":"..."} (both optional)
// Response: 200 {"firstName":"...","lastName":"..."}
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID := AccountIDFromContext(r.Context())
	if accountID == "" {
		writeError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.FirstName != nil {
		t := strings.TrimSpace(*req.FirstName)
		req.FirstName = &t
	}
	if req.LastName != nil {
		t := strings.TrimSpace(*req.LastName)
		req.LastName = &t
	}

	acct, err := h.auth.UpdateProfile(r.Context(), accountID, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrStorageUnavailable):
			slog.Error("profile persist", "error", err)
			writeError(w, http.StatusInternalServerError, "Could not save profile.")
		default:
			slog.Error("update profile", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(acct))
}
