package middlewares

import (
	"net/http"

	"github.com/google/uuid"
)

// FlashCookie identifies the flash-notice queue of a browser, logged
// in or not.
const FlashCookie = "camp_flash"

// EnsureFlashID returns the request's flash queue id, minting a new
// cookie when the browser does not carry one yet.
func EnsureFlashID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(FlashCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
