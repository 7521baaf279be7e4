package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// Error variables
var (
	ErrNotFound = errors.New("resource not found")
	ErrNotOwner = errors.New("not owner")
)

// CampgroundGetter loads a single campground.
type CampgroundGetter interface {
	GetByID(ctx context.Context, campgroundID uuid.UUID) (*models.CampgroundDB, error)
}

// ReviewGetter loads a single review.
type ReviewGetter interface {
	GetByID(ctx context.Context, reviewID uuid.UUID) (*models.ReviewDB, error)
}

// OwnershipService decides whether an acting user may mutate a
// resource. Only the author of a campground or review may touch it.
type OwnershipService struct {
	campgrounds CampgroundGetter
	reviews     ReviewGetter
}

// NewOwnershipService creates a new OwnershipService instance.
func NewOwnershipService(campgrounds CampgroundGetter, reviews ReviewGetter) *OwnershipService {
	return &OwnershipService{
		campgrounds: campgrounds,
		reviews:     reviews,
	}
}

// AuthorizeCampground loads the campground and checks ownership.
// Returns the record so callers do not fetch it twice. A missing
// record is ErrNotFound, never a nil dereference.
func (svc *OwnershipService) AuthorizeCampground(ctx context.Context, campgroundID, actingUserID uuid.UUID) (*models.CampgroundDB, error) {
	campground, err := svc.campgrounds.GetByID(ctx, campgroundID)
	if err != nil {
		logger.Log.Errorw("failed to load campground for authorization", "campground_id", campgroundID, "err", err)
		return nil, err
	}
	if campground == nil {
		return nil, ErrNotFound
	}
	if campground.AuthorID != actingUserID {
		logger.Log.Infow("campground mutation denied",
			"campground_id", campgroundID,
			"author_id", campground.AuthorID,
			"acting_user_id", actingUserID,
		)
		return nil, ErrNotOwner
	}
	return campground, nil
}

// AuthorizeReview loads the review and checks ownership.
func (svc *OwnershipService) AuthorizeReview(ctx context.Context, reviewID, actingUserID uuid.UUID) (*models.ReviewDB, error) {
	review, err := svc.reviews.GetByID(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to load review for authorization", "review_id", reviewID, "err", err)
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	if review.AuthorID != actingUserID {
		logger.Log.Infow("review mutation denied",
			"review_id", reviewID,
			"author_id", review.AuthorID,
			"acting_user_id", actingUserID,
		)
		return nil, ErrNotOwner
	}
	return review, nil
}
