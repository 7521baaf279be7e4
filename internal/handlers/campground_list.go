package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// CampgroundLister defines the interface that the service must implement.
type CampgroundLister interface {
	List(ctx context.Context) ([]models.Campground, error)
}

// CampgroundListResponse represents the campground index
// swagger:model CampgroundListResponse
type CampgroundListResponse struct {
	// Every campground with its images and review references
	Campgrounds []models.Campground `json:"campgrounds"`
}

// CampgroundListErrorResponse represents an error response for the index
// swagger:model CampgroundListErrorResponse
type CampgroundListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCampgroundListHandler returns an HTTP handler for the campground
// index. The index is public and unpaginated.
// @Summary List campgrounds
// @Description Returns every campground with its images, geometry and review references.
// @Tags campgrounds
// @Produce json
// @Success 200 {object} handlers.CampgroundListResponse "Campground index"
// @Failure 500 {object} handlers.CampgroundListErrorResponse "Internal server error"
// @Router /campgrounds [get]
func NewCampgroundListHandler(svc CampgroundLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campgrounds, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list campgrounds", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CampgroundListErrorResponse{Error: "Internal server error"})
			return
		}
		if campgrounds == nil {
			campgrounds = []models.Campground{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CampgroundListResponse{Campgrounds: campgrounds})
	}
}
