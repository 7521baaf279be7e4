package services_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikersclub/campgrounds/internal/models"
	"github.com/hikersclub/campgrounds/internal/services"
)

type campgroundMocks struct {
	readRepo   *services.MockCampgroundReader
	writeRepo  *services.MockCampgroundWriter
	reviews    *services.MockReviewLister
	reviewWipe *services.MockReviewRemover
	geocoder   *services.MockGeocoder
	images     *services.MockImageStore
	kafka      *services.MockKafkaWriter
}

func newCampgroundService(ctrl *gomock.Controller) (*services.CampgroundService, campgroundMocks) {
	m := campgroundMocks{
		readRepo:   services.NewMockCampgroundReader(ctrl),
		writeRepo:  services.NewMockCampgroundWriter(ctrl),
		reviews:    services.NewMockReviewLister(ctrl),
		reviewWipe: services.NewMockReviewRemover(ctrl),
		geocoder:   services.NewMockGeocoder(ctrl),
		images:     services.NewMockImageStore(ctrl),
		kafka:      services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewCampgroundService(m.readRepo, m.writeRepo, m.reviews, m.reviewWipe, m.geocoder, m.images, m.kafka)
	return svc, m
}

func TestCampgroundService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCampgroundService(ctrl)

	first := models.CampgroundDB{CampgroundID: uuid.New(), Title: "Ridge Camp"}
	second := models.CampgroundDB{CampgroundID: uuid.New(), Title: "River Bend"}
	reviewID := uuid.New()

	m.readRepo.EXPECT().List(gomock.Any()).Return([]models.CampgroundDB{first, second}, nil)
	m.readRepo.EXPECT().ListImages(gomock.Any()).Return([]models.ImageDB{
		{CampgroundID: first.CampgroundID, URL: "https://img/one.png", StorageKey: "camp/one"},
	}, nil)
	m.reviews.EXPECT().ListRefs(gomock.Any()).Return([]models.ReviewRef{
		{ReviewID: reviewID, CampgroundID: second.CampgroundID},
	}, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Len(t, got[0].Images, 1)
	assert.Empty(t, got[0].ReviewIDs)
	assert.Empty(t, got[1].Images)
	assert.Equal(t, []uuid.UUID{reviewID}, got[1].ReviewIDs)
}

func TestCampgroundService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campgroundID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)
		m.readRepo.EXPECT().GetByID(gomock.Any(), campgroundID).Return(nil, nil)

		got, err := svc.Get(context.Background(), campgroundID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("resolves reviews", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)
		row := &models.CampgroundDB{CampgroundID: campgroundID, Title: "Ridge Camp"}
		review := models.ReviewDB{ReviewID: uuid.New(), CampgroundID: campgroundID, Rating: 5}

		m.readRepo.EXPECT().GetByID(gomock.Any(), campgroundID).Return(row, nil)
		m.readRepo.EXPECT().ListImagesByCampground(gomock.Any(), campgroundID).Return(nil, nil)
		m.reviews.EXPECT().ListByCampground(gomock.Any(), campgroundID).Return([]models.ReviewDB{review}, nil)

		got, err := svc.Get(context.Background(), campgroundID)
		require.NoError(t, err)
		assert.Equal(t, "Ridge Camp", got.Title)
		assert.Equal(t, []uuid.UUID{review.ReviewID}, got.ReviewIDs)
		assert.Equal(t, []models.ReviewDB{review}, got.Reviews)
	})
}

func TestCampgroundService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	input := services.CampgroundInput{
		Title:       "Ridge Camp",
		Price:       25,
		Description: "Quiet pines",
		Location:    "Moab, Utah",
	}
	point := models.NewGeoPoint(-109.55, 38.57)

	t.Run("geocodes and stores", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.geocoder.EXPECT().Forward(gomock.Any(), "Moab, Utah").Return(&point, nil)
		m.images.EXPECT().Upload(gomock.Any(), "one.jpg", gomock.Any()).
			Return(&models.ImageUpload{URL: "https://img/one.png", StorageKey: "camp/one"}, nil)
		m.writeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.CampgroundDB) error {
				assert.Equal(t, "Ridge Camp", c.Title)
				assert.Equal(t, authorID, c.AuthorID)
				assert.Equal(t, -109.55, c.Longitude)
				assert.Equal(t, 38.57, c.Latitude)
				assert.Equal(t, int64(1), c.Version)
				return nil
			})
		m.writeRepo.EXPECT().AddImages(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)

		files := []services.FileUpload{{Filename: "one.jpg", Content: strings.NewReader("bytes")}}
		got, err := svc.Create(context.Background(), authorID, input, files)
		require.NoError(t, err)
		assert.Len(t, got.Images, 1)
		assert.Equal(t, point, got.Geometry)
	})

	t.Run("zero images permitted", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.geocoder.EXPECT().Forward(gomock.Any(), "Moab, Utah").Return(&point, nil)
		m.writeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Create(context.Background(), authorID, input, nil)
		require.NoError(t, err)
		assert.Empty(t, got.Images)
	})

	t.Run("no geocode match", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.geocoder.EXPECT().Forward(gomock.Any(), "Moab, Utah").Return(nil, nil)

		got, err := svc.Create(context.Background(), authorID, input, nil)
		assert.ErrorIs(t, err, services.ErrNoGeocodeResult)
		assert.Nil(t, got)
	})

	t.Run("upload failure aborts", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.geocoder.EXPECT().Forward(gomock.Any(), "Moab, Utah").Return(&point, nil)
		m.images.EXPECT().Upload(gomock.Any(), "one.jpg", gomock.Any()).
			Return(nil, errors.New("store down"))

		files := []services.FileUpload{{Filename: "one.jpg", Content: strings.NewReader("bytes")}}
		got, err := svc.Create(context.Background(), authorID, input, files)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCampgroundService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campground := &models.CampgroundDB{
		CampgroundID: uuid.New(),
		Title:        "Ridge Camp",
		AuthorID:     uuid.New(),
		Version:      3,
	}
	input := services.CampgroundInput{
		Title:       "Ridge Camp Revised",
		Price:       30,
		Description: "Quiet pines, new firepits",
		Location:    "Moab, Utah",
	}

	t.Run("bumps version and appends images", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.writeRepo.EXPECT().
			UpdateFields(gomock.Any(), campground.CampgroundID, input.Title, input.Price, input.Description, input.Location, int64(3)).
			Return(int64(4), nil)
		m.images.EXPECT().Upload(gomock.Any(), "new.jpg", gomock.Any()).
			Return(&models.ImageUpload{URL: "https://img/new.png", StorageKey: "camp/new"}, nil)
		m.writeRepo.EXPECT().AddImages(gomock.Any(), campground.CampgroundID, gomock.Len(1)).Return(nil)
		m.readRepo.EXPECT().ListImagesByCampground(gomock.Any(), campground.CampgroundID).
			Return([]models.ImageDB{{StorageKey: "camp/old"}, {StorageKey: "camp/new"}}, nil)
		m.reviews.EXPECT().ListIDsByCampground(gomock.Any(), campground.CampgroundID).Return(nil, nil)

		files := []services.FileUpload{{Filename: "new.jpg", Content: strings.NewReader("bytes")}}
		got, err := svc.Update(context.Background(), campground, input, files, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.Version)
		assert.Equal(t, "Ridge Camp Revised", got.Title)
		assert.Len(t, got.Images, 2)
	})

	t.Run("lost concurrent race", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.writeRepo.EXPECT().
			UpdateFields(gomock.Any(), campground.CampgroundID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).
			Return(int64(0), sql.ErrNoRows)

		got, err := svc.Update(context.Background(), campground, input, nil, nil)
		assert.ErrorIs(t, err, services.ErrVersionConflict)
		assert.Nil(t, got)
	})

	t.Run("removed keys destroyed upstream", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.writeRepo.EXPECT().
			UpdateFields(gomock.Any(), campground.CampgroundID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).
			Return(int64(4), nil)
		m.writeRepo.EXPECT().
			DeleteImagesByKeys(gomock.Any(), campground.CampgroundID, []string{"camp/old"}).
			Return([]string{"camp/old"}, nil)
		m.images.EXPECT().Destroy(gomock.Any(), "camp/old").Return(nil)
		m.readRepo.EXPECT().ListImagesByCampground(gomock.Any(), campground.CampgroundID).Return(nil, nil)
		m.reviews.EXPECT().ListIDsByCampground(gomock.Any(), campground.CampgroundID).Return(nil, nil)

		_, err := svc.Update(context.Background(), campground, input, nil, []string{"camp/old"})
		assert.NoError(t, err)
	})

	t.Run("failed destroy queues cleanup", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.writeRepo.EXPECT().
			UpdateFields(gomock.Any(), campground.CampgroundID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).
			Return(int64(4), nil)
		m.writeRepo.EXPECT().
			DeleteImagesByKeys(gomock.Any(), campground.CampgroundID, []string{"camp/old"}).
			Return([]string{"camp/old"}, nil)
		m.images.EXPECT().Destroy(gomock.Any(), "camp/old").Return(errors.New("store down"))
		m.kafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				var task models.CleanupTask
				require.NoError(t, json.Unmarshal(msgs[0].Value, &task))
				assert.Equal(t, "camp/old", task.StorageKey)
				assert.Equal(t, campground.CampgroundID.String(), task.CampgroundID)
				return nil
			})
		m.readRepo.EXPECT().ListImagesByCampground(gomock.Any(), campground.CampgroundID).Return(nil, nil)
		m.reviews.EXPECT().ListIDsByCampground(gomock.Any(), campground.CampgroundID).Return(nil, nil)

		_, err := svc.Update(context.Background(), campground, input, nil, []string{"camp/old"})
		assert.NoError(t, err)
	})
}

func TestCampgroundService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campground := &models.CampgroundDB{
		CampgroundID: uuid.New(),
		Title:        "Ridge Camp",
		AuthorID:     uuid.New(),
	}

	t.Run("cascades reviews and images", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.writeRepo.EXPECT().
			DeleteImagesByCampground(gomock.Any(), campground.CampgroundID).
			Return([]string{"camp/one", "camp/two"}, nil)
		m.reviewWipe.EXPECT().
			DeleteByCampground(gomock.Any(), campground.CampgroundID).
			Return(int64(3), nil)
		m.writeRepo.EXPECT().Delete(gomock.Any(), campground.CampgroundID).Return(int64(1), nil)
		m.images.EXPECT().Destroy(gomock.Any(), "camp/one").Return(nil)
		m.images.EXPECT().Destroy(gomock.Any(), "camp/two").Return(nil)
		m.kafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				var event models.DeletionEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, campground.CampgroundID.String(), event.CampgroundID)
				assert.Equal(t, int64(3), event.ReviewCount)
				assert.Equal(t, 2, event.ImageCount)
				return nil
			})

		assert.NoError(t, svc.Delete(context.Background(), campground))
	})

	t.Run("already gone", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.writeRepo.EXPECT().DeleteImagesByCampground(gomock.Any(), campground.CampgroundID).Return(nil, nil)
		m.reviewWipe.EXPECT().DeleteByCampground(gomock.Any(), campground.CampgroundID).Return(int64(0), nil)
		m.writeRepo.EXPECT().Delete(gomock.Any(), campground.CampgroundID).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), campground), services.ErrNotFound)
	})

	t.Run("review cascade failure aborts", func(t *testing.T) {
		svc, m := newCampgroundService(ctrl)

		m.writeRepo.EXPECT().DeleteImagesByCampground(gomock.Any(), campground.CampgroundID).Return(nil, nil)
		m.reviewWipe.EXPECT().DeleteByCampground(gomock.Any(), campground.CampgroundID).
			Return(int64(0), errors.New("db error"))

		assert.Error(t, svc.Delete(context.Background(), campground))
	})
}
