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

// ReviewDeleteTokener defines only the methods needed by this handler.
type ReviewDeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ReviewDeleteAuthorizer checks that the acting user wrote the review.
type ReviewDeleteAuthorizer interface {
	AuthorizeReview(ctx context.Context, reviewID, actingUserID uuid.UUID) (*models.ReviewDB, error)
}

// ReviewDeleter defines the interface that the service must implement.
type ReviewDeleter interface {
	Delete(ctx context.Context, reviewID uuid.UUID) error
}

// ReviewDeleteErrorResponse represents an error response for review deletion
// swagger:model ReviewDeleteErrorResponse
type ReviewDeleteErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewReviewDeleteHandler returns an HTTP handler removing a review.
// Only the review's author may remove it.
// @Summary Delete a review
// @Description Checks review authorship, then removes the review from the campground.
// @Tags reviews
// @Produce json
// @Param campgroundID path string true "Campground ID"
// @Param reviewID path string true "Review ID"
// @Success 303 "Deleted, redirected to the campground"
// @Failure 404 {object} handlers.ReviewDeleteErrorResponse "Unknown review"
// @Failure 500 {object} handlers.ReviewDeleteErrorResponse "Internal server error"
// @Router /campgrounds/{campgroundID}/reviews/{reviewID} [delete]
// @Security BearerAuth
func NewReviewDeleteHandler(
	svc ReviewDeleter,
	policy ReviewDeleteAuthorizer,
	tokenGetter ReviewDeleteTokener,
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
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ReviewDeleteErrorResponse{Error: "Cannot find that Campground"})
			return
		}
		detailPage := "/campgrounds/" + campgroundID.String()

		reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ReviewDeleteErrorResponse{Error: "Cannot find that review"})
			return
		}

		if _, err := policy.AuthorizeReview(ctx, reviewID, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReviewDeleteErrorResponse{Error: "Cannot find that review"})
			case errors.Is(err, services.ErrNotOwner):
				redirectWithFlash(w, r, flashes, models.FlashError, "You do not have the permission to do that!", detailPage)
			default:
				logger.Log.Errorw("review authorization failed", "review_id", reviewID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReviewDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if err := svc.Delete(ctx, reviewID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReviewDeleteErrorResponse{Error: "Cannot find that review"})
			default:
				logger.Log.Errorw("failed to delete review", "review_id", reviewID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReviewDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		redirectWithFlash(w, r, flashes, models.FlashSuccess, "Successfully deleted review", detailPage)
	}
}
