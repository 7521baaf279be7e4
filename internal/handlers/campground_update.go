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

// CampgroundUpdateTokener defines only the methods needed by this handler.
type CampgroundUpdateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CampgroundUpdateAuthorizer checks that the acting user owns the campground.
type CampgroundUpdateAuthorizer interface {
	AuthorizeCampground(ctx context.Context, campgroundID, actingUserID uuid.UUID) (*models.CampgroundDB, error)
}

// CampgroundUpdater defines the interface that the service must implement.
type CampgroundUpdater interface {
	Update(ctx context.Context, campground *models.CampgroundDB, input services.CampgroundInput, files []services.FileUpload, deleteKeys []string) (*models.Campground, error)
}

// CampgroundUpdateErrorResponse represents an error response for updates
// swagger:model CampgroundUpdateErrorResponse
type CampgroundUpdateErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCampgroundUpdateHandler returns an HTTP handler editing a
// campground from a multipart form. New images are appended, never
// replacing the existing ones; storage keys listed under deleteImages
// are removed.
// @Summary Update a campground
// @Description Checks ownership, validates the form, applies the field changes, appends uploaded images and removes the requested ones.
// @Tags campgrounds
// @Accept mpfd
// @Produce json
// @Param campgroundID path string true "Campground ID"
// @Param title formData string true "Title"
// @Param price formData string true "Nightly price"
// @Param description formData string true "Description"
// @Param location formData string true "Location text"
// @Param images formData file false "Images to append"
// @Param deleteImages formData string false "Storage keys to remove"
// @Success 303 "Updated, redirected to the campground"
// @Failure 409 {object} handlers.CampgroundUpdateErrorResponse "Concurrent edit lost"
// @Failure 500 {object} handlers.CampgroundUpdateErrorResponse "Internal server error"
// @Router /campgrounds/{campgroundID} [put]
// @Security BearerAuth
func NewCampgroundUpdateHandler(
	svc CampgroundUpdater,
	policy CampgroundUpdateAuthorizer,
	tokenGetter CampgroundUpdateTokener,
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
		detailPage := "/campgrounds/" + campgroundID.String()

		campground, err := policy.AuthorizeCampground(ctx, campgroundID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				redirectWithFlash(w, r, flashes, models.FlashError, "Cannot find that Campground", "/campgrounds")
			case errors.Is(err, services.ErrNotOwner):
				redirectWithFlash(w, r, flashes, models.FlashError, "You do not have the permission to do that!", detailPage)
			default:
				logger.Log.Errorw("campground authorization failed", "campground_id", campgroundID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CampgroundUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			logger.Log.Errorw("failed to parse campground form", "error", err)
			redirectWithFlash(w, r, flashes, models.FlashError, "Invalid campground form", detailPage)
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
			redirectWithFlash(w, r, flashes, models.FlashError, err.Error(), detailPage)
			return
		}

		files, closeFiles, err := formFiles(r, "images")
		if err != nil {
			logger.Log.Errorw("failed to open submitted images", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CampgroundUpdateErrorResponse{Error: "Internal server error"})
			return
		}
		defer closeFiles()

		input := services.CampgroundInput{
			Title:       payload.Title,
			Price:       price,
			Description: payload.Description,
			Location:    payload.Location,
		}
		deleteKeys := r.PostForm["deleteImages"]

		if _, err := svc.Update(ctx, campground, input, files, deleteKeys); err != nil {
			switch {
			case errors.Is(err, services.ErrVersionConflict):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CampgroundUpdateErrorResponse{Error: "Campground was modified by another request"})
			default:
				logger.Log.Errorw("failed to update campground", "campground_id", campgroundID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CampgroundUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		redirectWithFlash(w, r, flashes, models.FlashSuccess, "Successfully updated campground!", detailPage)
	}
}
