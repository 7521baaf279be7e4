package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
	"github.com/hikersclub/campgrounds/internal/services"
)

// CampgroundDetailer defines the interface that the service must implement.
type CampgroundDetailer interface {
	Get(ctx context.Context, campgroundID uuid.UUID) (*models.CampgroundDetail, error)
}

// CampgroundGetErrorResponse represents an error response for the detail page
// swagger:model CampgroundGetErrorResponse
type CampgroundGetErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCampgroundGetHandler returns an HTTP handler for one campground's
// detail page. An unknown or malformed id is sent back to the index
// with a notice instead of a bare 404, matching the site's UX.
// @Summary Get a campground
// @Description Returns one campground with its images, geometry and resolved reviews.
// @Tags campgrounds
// @Produce json
// @Param campgroundID path string true "Campground ID"
// @Success 200 {object} models.CampgroundDetail "Campground detail"
// @Success 303 "Unknown campground, redirected to /campgrounds"
// @Failure 500 {object} handlers.CampgroundGetErrorResponse "Internal server error"
// @Router /campgrounds/{campgroundID} [get]
func NewCampgroundGetHandler(svc CampgroundDetailer, flashes NoticePusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campgroundID, err := uuid.Parse(chi.URLParam(r, "campgroundID"))
		if err != nil {
			redirectWithFlash(w, r, flashes, models.FlashError, "Cannot find that Campground", "/campgrounds")
			return
		}

		detail, err := svc.Get(r.Context(), campgroundID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				redirectWithFlash(w, r, flashes, models.FlashError, "Cannot find that Campground", "/campgrounds")
			default:
				logger.Log.Errorw("failed to get campground", "campground_id", campgroundID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CampgroundGetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}
