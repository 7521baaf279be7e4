package middlewares

import (
	"context"
	"net/http"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token id was revoked at logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// FlashPusher queues a one-time notice for the next rendered page.
type FlashPusher interface {
	Push(ctx context.Context, sessionID string, flash models.Flash) error
}

// AuthMiddleware guards write routes. An unauthenticated request is
// not rejected with an error status: it gets a flash notice and a
// redirect to the login page, matching the site's soft-redirect UX.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker, flashes FlashPusher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			redirectToLogin := func() {
				if err := flashes.Push(ctx, EnsureFlashID(w, r), models.Flash{
					Kind:    models.FlashError,
					Message: "You need to login first!",
				}); err != nil {
					logger.Log.Errorw("failed to push login flash", "err", err)
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			}

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authentication required", "err", err)
				redirectToLogin()
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("invalid session token", "err", err)
				redirectToLogin()
				return
			}

			revoked, err := revocations.IsRevoked(ctx, claims.TokenID)
			if err != nil {
				logger.Log.Errorw("denylist check failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if revoked {
				logger.Log.Infow("revoked session token", "token_id", claims.TokenID)
				redirectToLogin()
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
