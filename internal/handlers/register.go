package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
	"github.com/hikersclub/campgrounds/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (string, error)
}

// RegisterRequest represents the form body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: ranger_rick
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// default: rick@example.com
	Email string `json:"email"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// A successful registration logs the new user in: the session cookie
// is set and the browser is sent to the campground index.
// @Summary Register a new user
// @Description Creates a new user account with a unique username and email, hashes the password and starts a session.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param email formData string true "Email"
// @Success 303 "Registered and logged in, redirected to /campgrounds"
// @Failure 500 {object} handlers.RegisterErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, flashes NoticePusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, flashes, models.FlashError, "Invalid registration form", "/register")
			return
		}

		req := RegisterRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
			Email:    r.PostFormValue("email"),
		}
		if req.Username == "" || req.Password == "" || req.Email == "" {
			redirectWithFlash(w, r, flashes, models.FlashError, "Username, password and email are required", "/register")
			return
		}

		token, err := svc.Register(r.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				redirectWithFlash(w, r, flashes, models.FlashError, "Username or email already exists", "/register")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		redirectWithFlash(w, r, flashes, models.FlashSuccess, "Welcome to CampGrounds!", "/campgrounds")
	}
}
