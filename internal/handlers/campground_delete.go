package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
	"github.com/hikersclub/campgrounds/internal/services"
)

// CampgroundDeleteTokener defines only the methods needed by this handler.
type CampgroundDeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CampgroundDeleteAuthorizer checks that the acting user owns the campground.
type CampgroundDeleteAuthorizer interface {
	AuthorizeCampground(ctx context.Context, campgroundID, actingUserID uuid.UUID) (*models.CampgroundDB, error)
}

// CampgroundDeleter defines the interface that the service must implement.
type CampgroundDeleter interface {
	Delete(ctx context.Context, campground *models.CampgroundDB) error
}

// CampgroundDeleteErrorResponse represents an error response for deletion
// swagger:model CampgroundDeleteErrorResponse
type CampgroundDeleteErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCampgroundDeleteHandler returns an HTTP handler removing a
// campground together with its reviews and image records.
// @Summary Delete a campground
// @Description Checks ownership, then removes the campground, its reviews and its images in one transaction. Stored files are queued for upstream cleanup.
// @Tags campgrounds
// @Produce json
// @Param campgroundID path string true "Campground ID"
// @Success 303 "Deleted, redirected to /campgrounds"
// @Failure 500 {object} handlers.CampgroundDeleteErrorResponse "Internal server error"
// @Router /campgrounds/{campgroundID} [delete]
// @Security BearerAuth
func NewCampgroundDeleteHandler(
	svc CampgroundDeleter,
	policy CampgroundDeleteAuthorizer,
	tokenGetter CampgroundDeleteTokener,
	flashes NoticePusher,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := requestClaims(w, r, tokenGetter)
		if !ok {
			return
		}

		campgroundID, err := uuid.Parse(chi.URLParam(r, "campgroundID"))
		if err != nil {
			redirectWithFlash(w, r, flashes, models.FlashError, "Cannot find that Campground", "/campgrounds")
			return
		}

		campground, err := policy.AuthorizeCampground(ctx, campgroundID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				redirectWithFlash(w, r, flashes, models.FlashError, "Cannot find that Campground", "/campgrounds")
			case errors.Is(err, services.ErrNotOwner):
				redirectWithFlash(w, r, flashes, models.FlashError, "You do not have the permission to do that!", "/campgrounds/"+campgroundID.String())
			default:
				logger.Log.Errorw("campground authorization failed", "campground_id", campgroundID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CampgroundDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if err := svc.Delete(ctx, campground); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				redirectWithFlash(w, r, flashes, models.FlashError, "Cannot find that Campground", "/campgrounds")
			default:
				logger.Log.Errorw("failed to delete campground", "campground_id", campgroundID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CampgroundDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		redirectWithFlash(w, r, flashes, models.FlashSuccess, "Successfully deleted campground", "/campgrounds")
	}
}
