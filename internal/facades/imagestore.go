package facades

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// ImageStoreHTTPFacade uploads and deletes files at the cloud image
// store over its REST API.
type ImageStoreHTTPFacade struct {
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
}

// NewImageStoreHTTPFacade creates a facade for the given image store
// account with a bounded request timeout.
func NewImageStoreHTTPFacade(baseURL, cloudName, apiKey, apiSecret, folder string, timeout time.Duration) *ImageStoreHTTPFacade {
	return &ImageStoreHTTPFacade{
		baseURL:   baseURL,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		client:    &http.Client{Timeout: timeout},
	}
}

// sign produces the request signature over the sorted parameter string,
// per the store's authentication scheme.
func (f *ImageStoreHTTPFacade) sign(params url.Values) string {
	// url.Values.Encode sorts by key, which is exactly the signing order.
	toSign := params.Encode() + f.apiSecret

	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload sends one file to the store and returns its delivery URL and
// storage key.
func (f *ImageStoreHTTPFacade) Upload(ctx context.Context, filename string, file io.Reader) (*models.ImageUpload, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	signed := url.Values{}
	signed.Set("folder", f.folder)
	signed.Set("timestamp", timestamp)
	signature := f.sign(signed)

	var body strings.Builder
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"api_key":   f.apiKey,
		"timestamp": timestamp,
		"folder":    f.folder,
		"signature": signature,
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", f.baseURL, f.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("image upload failed", "filename", filename, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("image store returned non-200 on upload", "filename", filename, "status", resp.StatusCode)
		return nil, fmt.Errorf("image store returned status %d", resp.StatusCode)
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, err
	}

	logger.Log.Infow("image uploaded",
		"filename", filename,
		"storage_key", uploaded.PublicID,
	)

	return &models.ImageUpload{
		URL:        uploaded.SecureURL,
		StorageKey: uploaded.PublicID,
	}, nil
}

// Destroy deletes a previously uploaded file by its storage key.
func (f *ImageStoreHTTPFacade) Destroy(ctx context.Context, storageKey string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	signed := url.Values{}
	signed.Set("public_id", storageKey)
	signed.Set("timestamp", timestamp)
	signature := f.sign(signed)

	form := url.Values{}
	form.Set("public_id", storageKey)
	form.Set("timestamp", timestamp)
	form.Set("api_key", f.apiKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", f.baseURL, f.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("image destroy failed", "storage_key", storageKey, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("image store returned non-200 on destroy", "storage_key", storageKey, "status", resp.StatusCode)
		return fmt.Errorf("image store returned status %d", resp.StatusCode)
	}

	logger.Log.Infow("image destroyed", "storage_key", storageKey)
	return nil
}
