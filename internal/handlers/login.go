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

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log a user in
// @Description Verifies the credentials, starts a session and sends the browser back to the campground index. Bad credentials redirect to the login form with a notice.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Logged in, redirected to /campgrounds"
// @Failure 500 {object} handlers.LoginErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, flashes NoticePusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, flashes, models.FlashError, "Invalid login form", "/login")
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist),
				errors.Is(err, services.ErrInvalidCredentials):
				redirectWithFlash(w, r, flashes, models.FlashError, "Invalid username or password.", "/login")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Internal server error"})
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

		redirectWithFlash(w, r, flashes, models.FlashSuccess, "welcome back!", "/campgrounds")
	}
}
