package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
	"github.com/hikersclub/campgrounds/internal/services"
	"github.com/hikersclub/campgrounds/internal/validation"
)

// maxUploadMemory bounds the in-memory part of a multipart parse.
const maxUploadMemory = 32 << 20

// CampgroundCreateTokener defines only the methods needed by this handler.
type CampgroundCreateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CampgroundCreator defines the interface that the service must implement.
type CampgroundCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, input services.CampgroundInput, files []services.FileUpload) (*models.Campground, error)
}

// CampgroundCreateErrorResponse represents an error response for creation
// swagger:model CampgroundCreateErrorResponse
type CampgroundCreateErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCampgroundCreateHandler returns an HTTP handler creating a
// campground from a multipart form. The location text is geocoded and
// each submitted image is pushed to the image store before the insert.
// @Summary Create a campground
// @Description Validates the form, geocodes the location, uploads the images and inserts the campground. Validation failures redirect back to the form with the joined messages.
// @Tags campgrounds
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param price formData string true "Nightly price"
// @Param description formData string true "Description"
// @Param location formData string true "Location text"
// @Param images formData file false "Images"
// @Success 303 "Created, redirected to the new campground"
// @Failure 502 {object} handlers.CampgroundCreateErrorResponse "Geocoding or image store failure"
// @Failure 500 {object} handlers.CampgroundCreateErrorResponse "Internal server error"
// @Router /campgrounds [post]
// @Security BearerAuth
func NewCampgroundCreateHandler(
	svc CampgroundCreator,
	tokenGetter CampgroundCreateTokener,
	flashes NoticePusher,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := requestClaims(w, r, tokenGetter)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			logger.Log.Errorw("failed to parse campground form", "error", err)
			redirectWithFlash(w, r, flashes, models.FlashError, "Invalid campground form", "/campgrounds/new")
			return
		}

		payload := validation.CampgroundPayload{
			Title:       r.PostFormValue("title"),
			Price:       r.PostFormValue("price"),
			Description: r.PostFormValue("description"),
			Location:    r.PostFormValue("location"),
		}
		price, err := validation.Campground(payload)
		if err != nil {
			redirectWithFlash(w, r, flashes, models.FlashError, err.Error(), "/campgrounds/new")
			return
		}

		files, closeFiles, err := formFiles(r, "images")
		if err != nil {
			logger.Log.Errorw("failed to open submitted images", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CampgroundCreateErrorResponse{Error: "Internal server error"})
			return
		}
		defer closeFiles()

		input := services.CampgroundInput{
			Title:       payload.Title,
			Price:       price,
			Description: payload.Description,
			Location:    payload.Location,
		}

		campground, err := svc.Create(ctx, claims.UserID, input, files)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoGeocodeResult):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(CampgroundCreateErrorResponse{Error: "Location could not be geocoded"})
			default:
				logger.Log.Errorw("failed to create campground", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CampgroundCreateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		redirectWithFlash(w, r, flashes, models.FlashSuccess,
			"Successfully created a new campground!",
			"/campgrounds/"+campground.CampgroundID.String(),
		)
	}
}
