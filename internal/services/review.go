package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, review *models.ReviewDB) error
	Delete(ctx context.Context, reviewID uuid.UUID) (int64, error)
}

// ReviewService implements the review ledger. The parent existence
// check and the insert run inside the same request transaction, so a
// review never appears without its parent reference resolving.
type ReviewService struct {
	writer      ReviewWriter
	campgrounds CampgroundGetter
}

// NewReviewService creates a new ReviewService.
func NewReviewService(writer ReviewWriter, campgrounds CampgroundGetter) *ReviewService {
	return &ReviewService{
		writer:      writer,
		campgrounds: campgrounds,
	}
}

// Create attaches a new review to an existing campground.
func (s *ReviewService) Create(ctx context.Context, campgroundID, authorID uuid.UUID, rating int, body string) (*models.ReviewDB, error) {
	parent, err := s.campgrounds.GetByID(ctx, campgroundID)
	if err != nil {
		logger.Log.Errorw("failed to load parent campground", "campground_id", campgroundID, "error", err)
		return nil, err
	}
	if parent == nil {
		return nil, ErrNotFound
	}

	review := &models.ReviewDB{
		ReviewID:     uuid.New(),
		CampgroundID: campgroundID,
		AuthorID:     authorID,
		Rating:       rating,
		Body:         body,
	}

	if err := s.writer.Save(ctx, review); err != nil {
		logger.Log.Errorw("failed to save review", "campground_id", campgroundID, "error", err)
		return nil, err
	}

	return review, nil
}

// Delete removes a review. Ownership is checked by the caller through
// the ownership policy before this runs.
func (s *ReviewService) Delete(ctx context.Context, reviewID uuid.UUID) error {
	rows, err := s.writer.Delete(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to delete review", "review_id", reviewID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
