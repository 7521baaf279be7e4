package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/middlewares"
	"github.com/hikersclub/campgrounds/internal/models"
)

// NoticePusher queues a one-time notice for the next rendered page.
type NoticePusher interface {
	Push(ctx context.Context, sessionID string, flash models.Flash) error
}

// NoticePopper drains the queued notices of a session.
type NoticePopper interface {
	PopAll(ctx context.Context, sessionID string) ([]models.Flash, error)
}

// NoticesResponse carries the drained flash notices
// swagger:model NoticesResponse
type NoticesResponse struct {
	// Queued notices, oldest first
	Notices []models.Flash `json:"notices"`
}

// NewNoticesHandler returns an HTTP handler that drains the flash
// queue of the calling browser. Each notice is returned exactly once.
// @Summary Pop queued flash notices
// @Description Returns and removes the one-time notices queued for this browser session.
// @Tags notices
// @Produce json
// @Success 200 {object} handlers.NoticesResponse "Queued notices"
// @Router /notices [get]
func NewNoticesHandler(flashes NoticePopper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := middlewares.EnsureFlashID(w, r)

		notices, err := flashes.PopAll(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to pop flash notices", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}
		if notices == nil {
			notices = []models.Flash{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NoticesResponse{Notices: notices})
	}
}

// redirectWithFlash queues a notice and sends the browser to location.
// A failed push is logged; losing a notice never fails the request.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, flashes NoticePusher, kind, message, location string) {
	if err := flashes.Push(r.Context(), middlewares.EnsureFlashID(w, r), models.Flash{
		Kind:    kind,
		Message: message,
	}); err != nil {
		logger.Log.Errorw("failed to push flash notice", "err", err)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
