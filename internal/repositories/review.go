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

// ReviewReadRepository handles review read operations.
type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// GetByID returns the review with the given id, or (nil, nil) if absent.
func (r *ReviewReadRepository) GetByID(ctx context.Context, reviewID uuid.UUID) (*models.ReviewDB, error) {
	const query = `
		SELECT review_id, campground_id, author_id, rating, body, created_at
		FROM reviews
		WHERE review_id = $1
	`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, reviewID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByCampground returns a campground's reviews, oldest first.
func (r *ReviewReadRepository) ListByCampground(ctx context.Context, campgroundID uuid.UUID) ([]models.ReviewDB, error) {
	const query = `
		SELECT review_id, campground_id, author_id, rating, body, created_at
		FROM reviews
		WHERE campground_id = $1
		ORDER BY created_at
	`

	var reviews []models.ReviewDB
	err := r.db.SelectContext(ctx, &reviews, query, campgroundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campgroundID},
		"rows", len(reviews),
		"error", err,
	)

	return reviews, err
}

// ListIDsByCampground returns the ids of a campground's reviews, the
// directory's review-reference list.
func (r *ReviewReadRepository) ListIDsByCampground(ctx context.Context, campgroundID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT review_id
		FROM reviews
		WHERE campground_id = $1
		ORDER BY created_at
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query, campgroundID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campgroundID},
		"rows", len(ids),
		"error", err,
	)

	return ids, err
}

// ListRefs returns every review reference grouped by campground,
// used to assemble directory listings in one query.
func (r *ReviewReadRepository) ListRefs(ctx context.Context) ([]models.ReviewRef, error) {
	const query = `
		SELECT review_id, campground_id
		FROM reviews
		ORDER BY campground_id, created_at
	`

	var refs []models.ReviewRef
	err := r.db.SelectContext(ctx, &refs, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(refs),
		"error", err,
	)

	return refs, err
}

// ReviewWriteRepository handles review write operations.
// Writes go through the request transaction when one is present.
type ReviewWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReviewWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReviewWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new review row.
func (r *ReviewWriteRepository) Save(ctx context.Context, review *models.ReviewDB) error {
	const query = `
		INSERT INTO reviews (review_id, campground_id, author_id, rating, body, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	args := []any{review.ReviewID, review.CampgroundID, review.AuthorID, review.Rating, review.Body}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes a review row and reports how many rows matched.
func (r *ReviewWriteRepository) Delete(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	const query = `DELETE FROM reviews WHERE review_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, reviewID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{reviewID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// DeleteByCampground removes every review of a campground. First step
// of the directory's cascade delete.
func (r *ReviewWriteRepository) DeleteByCampground(ctx context.Context, campgroundID uuid.UUID) (int64, error) {
	const query = `DELETE FROM reviews WHERE campground_id = $1`

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
