package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// CampgroundReadRepository handles campground read operations.
type CampgroundReadRepository struct {
	db *sqlx.DB
}

func NewCampgroundReadRepository(db *sqlx.DB) *CampgroundReadRepository {
	return &CampgroundReadRepository{db: db}
}

// List returns every campground, newest first. No pagination.
func (r *CampgroundReadRepository) List(ctx context.Context) ([]models.CampgroundDB, error) {
	const query = `
		SELECT campground_id, title, price, description, location,
		       longitude, latitude, author_id, version, created_at, updated_at
		FROM campgrounds
		ORDER BY created_at DESC
	`

	var campgrounds []models.CampgroundDB
	err := r.db.SelectContext(ctx, &campgrounds, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(campgrounds),
		"error", err,
	)

	return campgrounds, err
}

// GetByID returns the campground with the given id, or (nil, nil) if absent.
func (r *CampgroundReadRepository) GetByID(ctx context.Context, campgroundID uuid.UUID) (*models.CampgroundDB, error) {
	const query = `
		SELECT campground_id, title, price, description, location,
		       longitude, latitude, author_id, version, created_at, updated_at
		FROM campgrounds
		WHERE campground_id = $1
	`

	var campground models.CampgroundDB
	err := r.db.GetContext(ctx, &campground, query, campgroundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campgroundID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campground, nil
}

// ListImages returns every stored image ordered by campground and position.
func (r *CampgroundReadRepository) ListImages(ctx context.Context) ([]models.ImageDB, error) {
	const query = `
		SELECT image_id, campground_id, url, storage_key, position
		FROM campground_images
		ORDER BY campground_id, position
	`

	var images []models.ImageDB
	err := r.db.SelectContext(ctx, &images, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(images),
		"error", err,
	)

	return images, err
}

// ListImagesByCampground returns a campground's ordered image list.
func (r *CampgroundReadRepository) ListImagesByCampground(ctx context.Context, campgroundID uuid.UUID) ([]models.ImageDB, error) {
	const query = `
		SELECT image_id, campground_id, url, storage_key, position
		FROM campground_images
		WHERE campground_id = $1
		ORDER BY position
	`

	var images []models.ImageDB
	err := r.db.SelectContext(ctx, &images, query, campgroundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campgroundID},
		"rows", len(images),
		"error", err,
	)

	return images, err
}

// CampgroundWriteRepository handles campground write operations.
// Writes go through the request transaction when one is present.
type CampgroundWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCampgroundWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CampgroundWriteRepository {
	return &CampgroundWriteRepository{db: db, txGetter: txGetter}
}

func (r *CampgroundWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new campground row with version 1.
func (r *CampgroundWriteRepository) Save(ctx context.Context, c *models.CampgroundDB) error {
	const query = `
		INSERT INTO campgrounds
			(campground_id, title, price, description, location,
			 longitude, latitude, author_id, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, NOW(), NOW())
	`
	args := []any{
		c.CampgroundID, c.Title, c.Price, c.Description, c.Location,
		c.Longitude, c.Latitude, c.AuthorID,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateFields applies a conditional update guarded by the version
// column and returns the new version. sql.ErrNoRows means the row is
// gone or another writer bumped the version first.
func (r *CampgroundWriteRepository) UpdateFields(ctx context.Context, campgroundID uuid.UUID, title string, price float64, description, location string, version int64) (int64, error) {
	const query = `
		UPDATE campgrounds
		SET title = $3, price = $4, description = $5, location = $6,
		    version = version + 1, updated_at = NOW()
		WHERE campground_id = $1 AND version = $2
		RETURNING version
	`
	args := []any{campgroundID, version, title, price, description, location}

	var newVersion int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &newVersion, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", newVersion,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

// Delete removes the campground row and reports how many rows matched.
// Child image and review rows are removed by their own delete calls in
// the same transaction; the schema's cascade rule is a second line of
// defense.
func (r *CampgroundWriteRepository) Delete(ctx context.Context, campgroundID uuid.UUID) (int64, error) {
	const query = `DELETE FROM campgrounds WHERE campground_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, campgroundID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{campgroundID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// AddImages appends uploads to the end of the campground's image list.
// Existing entries are never replaced.
func (r *CampgroundWriteRepository) AddImages(ctx context.Context, campgroundID uuid.UUID, uploads []models.ImageUpload) error {
	const query = `
		INSERT INTO campground_images (image_id, campground_id, url, storage_key, position)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(position) + 1, 0) FROM campground_images WHERE campground_id = $2))
	`

	executor := r.executor(ctx)
	for _, upload := range uploads {
		args := []any{uuid.New(), campgroundID, upload.URL, upload.StorageKey}

		_, err := executor.ExecContext(ctx, query, args...)

		logger.Log.Infow("query executed",
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"error", err,
		)

		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteImagesByKeys removes image rows matching the given storage keys
// and returns the keys actually removed, so the caller knows which
// files to destroy at the image store.
func (r *CampgroundWriteRepository) DeleteImagesByKeys(ctx context.Context, campgroundID uuid.UUID, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`DELETE FROM campground_images
		 WHERE campground_id = ? AND storage_key IN (?)
		 RETURNING storage_key`,
		campgroundID, keys,
	)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var deleted []string
	err = sqlx.SelectContext(ctx, r.executor(ctx), &deleted, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// DeleteImagesByCampground removes all image rows of a campground and
// returns their storage keys for upstream cleanup.
func (r *CampgroundWriteRepository) DeleteImagesByCampground(ctx context.Context, campgroundID uuid.UUID) ([]string, error) {
	const query = `
		DELETE FROM campground_images
		WHERE campground_id = $1
		RETURNING storage_key
	`

	var deleted []string
	err := sqlx.SelectContext(ctx, r.executor(ctx), &deleted, query, campgroundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campgroundID},
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return deleted, nil
}
