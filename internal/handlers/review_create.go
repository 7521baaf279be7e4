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
	"github.com/hikersclub/campgrounds/internal/validation"
)

// ReviewCreateTokener defines only the methods needed by this handler.
type ReviewCreateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ReviewCreator defines the interface that the service must implement.
type ReviewCreator interface {
	Create(ctx context.Context, campgroundID, authorID uuid.UUID, rating int, body string) (*models.ReviewDB, error)
}

// ReviewCreateErrorResponse represents an error response for review creation
// swagger:model ReviewCreateErrorResponse
type ReviewCreateErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewReviewCreateHandler returns an HTTP handler attaching a review to
// a campground. The parent is checked inside the same transaction as
// the insert, so a review never lands on a vanished campground.
// @Summary Create a review
// @Description Validates the rating and body, then inserts the review under the campground.
// @Tags reviews
// @Accept x-www-form-urlencoded
// @Produce json
// @Param campgroundID path string true "Campground ID"
// @Param rating formData string true "Rating, 1 to 5"
// @Param body formData string true "Review text"
// @Success 303 "Created, redirected to the campground"
// @Failure 404 {object} handlers.ReviewCreateErrorResponse "Unknown campground"
// @Failure 500 {object} handlers.ReviewCreateErrorResponse "Internal server error"
// @Router /campgrounds/{campgroundID}/reviews [post]
// @Security BearerAuth
func NewReviewCreateHandler(
	svc ReviewCreator,
	tokenGetter ReviewCreateTokener,
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
			json.NewEncoder(w).Encode(ReviewCreateErrorResponse{Error: "Cannot find that Campground"})
			return
		}
		detailPage := "/campgrounds/" + campgroundID.String()

		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, flashes, models.FlashError, "Invalid review form", detailPage)
			return
		}

		payload := validation.ReviewPayload{
			Rating: r.PostFormValue("rating"),
			Body:   r.PostFormValue("body"),
		}
		rating, err := validation.Review(payload)
		if err != nil {
			redirectWithFlash(w, r, flashes, models.FlashError, err.Error(), detailPage)
			return
		}

		if _, err := svc.Create(ctx, campgroundID, claims.UserID, rating, payload.Body); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReviewCreateErrorResponse{Error: "Cannot find that Campground"})
			default:
				logger.Log.Errorw("failed to create review", "campground_id", campgroundID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReviewCreateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		redirectWithFlash(w, r, flashes, models.FlashSuccess, "Successfully created review!", detailPage)
	}
}
