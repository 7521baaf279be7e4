package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/services"
)

// tokener is what requestClaims needs from any of the per-handler
// tokener interfaces.
type tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// requestClaims extracts the session claims, answering 401 itself when
// the token is unusable. The auth middleware already vetted the token;
// this is the handler-level read of who is acting.
func requestClaims(w http.ResponseWriter, r *http.Request, tokenGetter tokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return nil, false
	}

	return claims, true
}

// formFiles opens every file under the given multipart field. The
// returned closer releases all of them once the service is done.
func formFiles(r *http.Request, field string) ([]services.FileUpload, func(), error) {
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}

	headers := r.MultipartForm.File[field]
	files := make([]services.FileUpload, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))

	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, f)
		files = append(files, services.FileUpload{
			Filename: fh.Filename,
			Content:  f,
		})
	}

	return files, closeAll, nil
}
