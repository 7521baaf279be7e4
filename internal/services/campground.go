package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// Error variables
var (
	// ErrNoGeocodeResult is returned when the geocoding provider has no
	// match for the submitted location text.
	ErrNoGeocodeResult = errors.New("location could not be geocoded")

	// ErrVersionConflict is returned when a concurrent writer updated
	// the campground first.
	ErrVersionConflict = errors.New("campground was modified by another request")
)

// CampgroundReader defines read operations over campground rows.
type CampgroundReader interface {
	List(ctx context.Context) ([]models.CampgroundDB, error)
	GetByID(ctx context.Context, campgroundID uuid.UUID) (*models.CampgroundDB, error)
	ListImages(ctx context.Context) ([]models.ImageDB, error)
	ListImagesByCampground(ctx context.Context, campgroundID uuid.UUID) ([]models.ImageDB, error)
}

// CampgroundWriter defines write operations over campground rows.
type CampgroundWriter interface {
	Save(ctx context.Context, c *models.CampgroundDB) error
	UpdateFields(ctx context.Context, campgroundID uuid.UUID, title string, price float64, description, location string, version int64) (int64, error)
	Delete(ctx context.Context, campgroundID uuid.UUID) (int64, error)
	AddImages(ctx context.Context, campgroundID uuid.UUID, uploads []models.ImageUpload) error
	DeleteImagesByKeys(ctx context.Context, campgroundID uuid.UUID, keys []string) ([]string, error)
	DeleteImagesByCampground(ctx context.Context, campgroundID uuid.UUID) ([]string, error)
}

// ReviewLister reads a campground's reviews and references.
type ReviewLister interface {
	ListByCampground(ctx context.Context, campgroundID uuid.UUID) ([]models.ReviewDB, error)
	ListIDsByCampground(ctx context.Context, campgroundID uuid.UUID) ([]uuid.UUID, error)
	ListRefs(ctx context.Context) ([]models.ReviewRef, error)
}

// ReviewRemover removes a campground's reviews, the first step of the
// cascade delete.
type ReviewRemover interface {
	DeleteByCampground(ctx context.Context, campgroundID uuid.UUID) (int64, error)
}

// Geocoder resolves free-text locations to coordinates.
// A (nil, nil) result means the provider had no match.
type Geocoder interface {
	Forward(ctx context.Context, query string) (*models.GeoPoint, error)
}

// ImageStore uploads and deletes files at the external image store.
type ImageStore interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*models.ImageUpload, error)
	Destroy(ctx context.Context, storageKey string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FileUpload is one submitted image file.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// CampgroundInput carries the validated fields of a campground write.
type CampgroundInput struct {
	Title       string
	Price       float64
	Description string
	Location    string
}

// CampgroundService implements the campground directory: list, detail,
// create with geocoding, update with image-list edits, and cascade
// delete. Writes run inside the per-request transaction.
type CampgroundService struct {
	readRepo    CampgroundReader
	writeRepo   CampgroundWriter
	reviews     ReviewLister
	reviewWipe  ReviewRemover
	geocoder    Geocoder
	images      ImageStore
	kafkaWriter KafkaWriter
}

// NewCampgroundService creates a new CampgroundService.
func NewCampgroundService(
	readRepo CampgroundReader,
	writeRepo CampgroundWriter,
	reviews ReviewLister,
	reviewWipe ReviewRemover,
	geocoder Geocoder,
	images ImageStore,
	kafkaWriter KafkaWriter,
) *CampgroundService {
	return &CampgroundService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		reviews:     reviews,
		reviewWipe:  reviewWipe,
		geocoder:    geocoder,
		images:      images,
		kafkaWriter: kafkaWriter,
	}
}

// publish sends a message to Kafka, logging instead of failing the
// request when the writer is absent or the publish does not succeed.
func (s *CampgroundService) publish(ctx context.Context, key string, payload any) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publish", "key", key)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorw("failed to marshal Kafka payload", "key", key, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish to Kafka", "key", key, "error", err)
	} else {
		logger.Log.Infow("published to Kafka", "key", key)
	}
}

// queueCleanup records a storage key whose upstream delete failed so a
// reconciler can retry it later.
func (s *CampgroundService) queueCleanup(ctx context.Context, campgroundID uuid.UUID, storageKey string, reason error) {
	task := models.CleanupTask{
		TaskID:       uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		StorageKey:   storageKey,
		CampgroundID: campgroundID.String(),
		Reason:       reason.Error(),
	}
	s.publish(ctx, task.StorageKey, task)
}

// destroyImages deletes files at the image store, best effort. Failed
// keys are queued on the cleanup topic and never fail the request.
func (s *CampgroundService) destroyImages(ctx context.Context, campgroundID uuid.UUID, keys []string) {
	for _, key := range keys {
		if err := s.images.Destroy(ctx, key); err != nil {
			logger.Log.Errorw("image store delete failed, queueing cleanup",
				"campground_id", campgroundID,
				"storage_key", key,
				"error", err,
			)
			s.queueCleanup(ctx, campgroundID, key, err)
		}
	}
}

// uploadFiles pushes submitted files to the image store in order.
func (s *CampgroundService) uploadFiles(ctx context.Context, files []FileUpload) ([]models.ImageUpload, error) {
	uploads := make([]models.ImageUpload, 0, len(files))
	for _, f := range files {
		uploaded, err := s.images.Upload(ctx, f.Filename, f.Content)
		if err != nil {
			logger.Log.Errorw("image upload failed", "filename", f.Filename, "error", err)
			return nil, err
		}
		uploads = append(uploads, *uploaded)
	}
	return uploads, nil
}

// assemble joins a campground row with its images and review ids.
func assemble(row models.CampgroundDB, images []models.ImageDB, reviewIDs []uuid.UUID) models.Campground {
	if images == nil {
		images = []models.ImageDB{}
	}
	if reviewIDs == nil {
		reviewIDs = []uuid.UUID{}
	}
	return models.Campground{
		CampgroundDB: row,
		Geometry:     row.Geometry(),
		Images:       images,
		ReviewIDs:    reviewIDs,
	}
}

// List returns every campground with images and review references.
// No pagination, no filter.
func (s *CampgroundService) List(ctx context.Context) ([]models.Campground, error) {
	rows, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list campgrounds", "error", err)
		return nil, err
	}

	images, err := s.readRepo.ListImages(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list campground images", "error", err)
		return nil, err
	}
	imagesByCampground := make(map[uuid.UUID][]models.ImageDB, len(rows))
	for _, img := range images {
		imagesByCampground[img.CampgroundID] = append(imagesByCampground[img.CampgroundID], img)
	}

	refs, err := s.reviews.ListRefs(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list review references", "error", err)
		return nil, err
	}
	reviewsByCampground := make(map[uuid.UUID][]uuid.UUID, len(rows))
	for _, ref := range refs {
		reviewsByCampground[ref.CampgroundID] = append(reviewsByCampground[ref.CampgroundID], ref.ReviewID)
	}

	campgrounds := make([]models.Campground, 0, len(rows))
	for _, row := range rows {
		campgrounds = append(campgrounds, assemble(row, imagesByCampground[row.CampgroundID], reviewsByCampground[row.CampgroundID]))
	}
	return campgrounds, nil
}

// Get returns one campground with images and resolved reviews.
func (s *CampgroundService) Get(ctx context.Context, campgroundID uuid.UUID) (*models.CampgroundDetail, error) {
	row, err := s.readRepo.GetByID(ctx, campgroundID)
	if err != nil {
		logger.Log.Errorw("failed to get campground", "campground_id", campgroundID, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	images, err := s.readRepo.ListImagesByCampground(ctx, campgroundID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByCampground(ctx, campgroundID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.ReviewDB{}
	}

	reviewIDs := make([]uuid.UUID, 0, len(reviews))
	for _, review := range reviews {
		reviewIDs = append(reviewIDs, review.ReviewID)
	}

	detail := &models.CampgroundDetail{
		Campground: assemble(*row, images, reviewIDs),
		Reviews:    reviews,
	}
	return detail, nil
}

// Create geocodes the location, uploads submitted files and inserts
// the campground. Zero images is permitted; zero geocode matches is
// ErrNoGeocodeResult.
func (s *CampgroundService) Create(ctx context.Context, authorID uuid.UUID, input CampgroundInput, files []FileUpload) (*models.Campground, error) {
	point, err := s.geocoder.Forward(ctx, input.Location)
	if err != nil {
		logger.Log.Errorw("geocoding failed", "location", input.Location, "error", err)
		return nil, err
	}
	if point == nil {
		return nil, ErrNoGeocodeResult
	}

	uploads, err := s.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	row := &models.CampgroundDB{
		CampgroundID: uuid.New(),
		Title:        input.Title,
		Price:        input.Price,
		Description:  input.Description,
		Location:     input.Location,
		Longitude:    point.Coordinates[0],
		Latitude:     point.Coordinates[1],
		AuthorID:     authorID,
		Version:      1,
	}

	if err := s.writeRepo.Save(ctx, row); err != nil {
		logger.Log.Errorw("failed to save campground", "campground_id", row.CampgroundID, "error", err)
		return nil, err
	}
	if len(uploads) > 0 {
		if err := s.writeRepo.AddImages(ctx, row.CampgroundID, uploads); err != nil {
			logger.Log.Errorw("failed to save campground images", "campground_id", row.CampgroundID, "error", err)
			return nil, err
		}
	}

	images := make([]models.ImageDB, 0, len(uploads))
	for i, upload := range uploads {
		images = append(images, models.ImageDB{
			CampgroundID: row.CampgroundID,
			URL:          upload.URL,
			StorageKey:   upload.StorageKey,
			Position:     i,
		})
	}

	campground := assemble(*row, images, nil)
	return &campground, nil
}

// Update applies field changes guarded by the version column, appends
// newly uploaded images and removes the requested storage keys from
// both the metadata and the image store.
func (s *CampgroundService) Update(ctx context.Context, campground *models.CampgroundDB, input CampgroundInput, files []FileUpload, deleteKeys []string) (*models.Campground, error) {
	newVersion, err := s.writeRepo.UpdateFields(ctx,
		campground.CampgroundID,
		input.Title, input.Price, input.Description, input.Location,
		campground.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Infow("campground update lost a concurrent race", "campground_id", campground.CampgroundID)
			return nil, ErrVersionConflict
		}
		logger.Log.Errorw("failed to update campground", "campground_id", campground.CampgroundID, "error", err)
		return nil, err
	}

	uploads, err := s.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	if len(uploads) > 0 {
		if err := s.writeRepo.AddImages(ctx, campground.CampgroundID, uploads); err != nil {
			logger.Log.Errorw("failed to append campground images", "campground_id", campground.CampgroundID, "error", err)
			return nil, err
		}
	}

	if len(deleteKeys) > 0 {
		removed, err := s.writeRepo.DeleteImagesByKeys(ctx, campground.CampgroundID, deleteKeys)
		if err != nil {
			logger.Log.Errorw("failed to remove campground images", "campground_id", campground.CampgroundID, "error", err)
			return nil, err
		}
		// Metadata and file store are two systems with no shared
		// transaction; upstream deletes are best effort.
		s.destroyImages(ctx, campground.CampgroundID, removed)
	}

	updated := *campground
	updated.Title = input.Title
	updated.Price = input.Price
	updated.Description = input.Description
	updated.Location = input.Location
	updated.Version = newVersion

	images, err := s.readRepo.ListImagesByCampground(ctx, campground.CampgroundID)
	if err != nil {
		return nil, err
	}
	reviewIDs, err := s.reviews.ListIDsByCampground(ctx, campground.CampgroundID)
	if err != nil {
		return nil, err
	}

	result := assemble(updated, images, reviewIDs)
	return &result, nil
}

// Delete removes the campground and cascades to its reviews and image
// rows inside the request transaction, then queues upstream file
// deletes and publishes an audit event.
func (s *CampgroundService) Delete(ctx context.Context, campground *models.CampgroundDB) error {
	storageKeys, err := s.writeRepo.DeleteImagesByCampground(ctx, campground.CampgroundID)
	if err != nil {
		logger.Log.Errorw("failed to remove image rows", "campground_id", campground.CampgroundID, "error", err)
		return err
	}

	reviewCount, err := s.reviewWipe.DeleteByCampground(ctx, campground.CampgroundID)
	if err != nil {
		logger.Log.Errorw("failed to cascade reviews", "campground_id", campground.CampgroundID, "error", err)
		return err
	}

	rows, err := s.writeRepo.Delete(ctx, campground.CampgroundID)
	if err != nil {
		logger.Log.Errorw("failed to delete campground", "campground_id", campground.CampgroundID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.destroyImages(ctx, campground.CampgroundID, storageKeys)

	event := models.DeletionEvent{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		CampgroundID: campground.CampgroundID.String(),
		AuthorID:     campground.AuthorID.String(),
		ReviewCount:  reviewCount,
		ImageCount:   len(storageKeys),
	}
	s.publish(ctx, event.CampgroundID, event)

	logger.Log.Infow("campground deleted",
		"campground_id", campground.CampgroundID,
		"cascaded_reviews", reviewCount,
		"queued_images", len(storageKeys),
	)
	return nil
}
