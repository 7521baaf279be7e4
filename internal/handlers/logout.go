package handlers

import (
	"context"
	"net/http"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// LogoutTokener defines only the methods needed by this handler.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// NewLogoutHandler returns an HTTP handler ending the session. The
// token is revoked for the rest of its lifetime and the cookie is
// cleared. A request without a usable token still clears the cookie.
// @Summary Log the user out
// @Description Revokes the session token, clears the session cookie and redirects to the campground index.
// @Tags auth
// @Success 303 "Logged out, redirected to /campgrounds"
// @Router /logout [get]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokenGetter LogoutTokener, flashes NoticePusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		clearCookie := func() {
			http.SetCookie(w, &http.Cookie{
				Name:     jwt.SessionCookie,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			clearCookie()
			http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			clearCookie()
			http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
			return
		}

		if err := svc.Logout(ctx, claims); err != nil {
			// The cookie still goes away; the token just outlives the
			// session until its natural expiry.
			logger.Log.Errorw("failed to revoke session token", "token_id", claims.TokenID, "err", err)
		}

		clearCookie()
		redirectWithFlash(w, r, flashes, models.FlashSuccess, "Successfully logged you out!", "/campgrounds")
	}
}
