package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hikersclub/campgrounds/internal/models"
)

func setupCampgroundPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS campgrounds (
		campground_id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL,
		location VARCHAR(255) NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		author_id UUID NOT NULL REFERENCES users(user_id),
		version BIGINT NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS campground_images (
		image_id UUID PRIMARY KEY,
		campground_id UUID NOT NULL REFERENCES campgrounds(campground_id) ON DELETE CASCADE,
		url TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		position INT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS reviews (
		review_id UUID PRIMARY KEY,
		campground_id UUID NOT NULL REFERENCES campgrounds(campground_id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(user_id),
		rating INT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertTestUser(t *testing.T, db *sqlx.DB) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	_, err := db.Exec(
		`INSERT INTO users (user_id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, "author-"+userID.String()[:8], userID.String()[:8]+"@example.com", "hash",
	)
	require.NoError(t, err)
	return userID
}

func insertTestCampground(t *testing.T, db *sqlx.DB, authorID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	repo := NewCampgroundWriteRepository(db, nil)
	campgroundID := uuid.New()
	err := repo.Save(context.Background(), &models.CampgroundDB{
		CampgroundID: campgroundID,
		Title:        title,
		Price:        25.50,
		Description:  "A quiet riverside spot",
		Location:     "Bend, Oregon",
		Longitude:    -121.31,
		Latitude:     44.05,
		AuthorID:     authorID,
	})
	require.NoError(t, err)
	return campgroundID
}

func TestCampgroundRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupCampgroundPostgresContainer(t)
	defer teardown()

	readRepo := NewCampgroundReadRepository(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)
	campgroundID := insertTestCampground(t, db, authorID, "River Bend")

	campground, err := readRepo.GetByID(ctx, campgroundID)
	require.NoError(t, err)
	require.NotNil(t, campground)
	assert.Equal(t, "River Bend", campground.Title)
	assert.Equal(t, 25.50, campground.Price)
	assert.Equal(t, authorID, campground.AuthorID)
	assert.Equal(t, int64(1), campground.Version)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCampgroundRepository_ListNewestFirst(t *testing.T) {
	db, teardown := setupCampgroundPostgresContainer(t)
	defer teardown()

	writeRepo := NewCampgroundWriteRepository(db, nil)
	readRepo := NewCampgroundReadRepository(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)

	// Explicit timestamps, Save uses NOW() and inserts would tie.
	older := uuid.New()
	newer := uuid.New()
	for i, id := range []uuid.UUID{older, newer} {
		err := writeRepo.Save(ctx, &models.CampgroundDB{
			CampgroundID: id,
			Title:        fmt.Sprintf("Camp %d", i),
			Price:        10,
			Description:  "d",
			Location:     "l",
			AuthorID:     authorID,
		})
		require.NoError(t, err)
	}
	_, err := db.Exec(`UPDATE campgrounds SET created_at = NOW() - INTERVAL '1 hour' WHERE campground_id = $1`, older)
	require.NoError(t, err)

	campgrounds, err := readRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, campgrounds, 2)
	assert.Equal(t, newer, campgrounds[0].CampgroundID)
	assert.Equal(t, older, campgrounds[1].CampgroundID)
}

func TestCampgroundWriteRepository_UpdateFields(t *testing.T) {
	db, teardown := setupCampgroundPostgresContainer(t)
	defer teardown()

	writeRepo := NewCampgroundWriteRepository(db, nil)
	readRepo := NewCampgroundReadRepository(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)
	campgroundID := insertTestCampground(t, db, authorID, "Before")

	newVersion, err := writeRepo.UpdateFields(ctx, campgroundID, "After", 42, "updated", "Moab, Utah", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), newVersion)

	campground, err := readRepo.GetByID(ctx, campgroundID)
	require.NoError(t, err)
	assert.Equal(t, "After", campground.Title)
	assert.Equal(t, float64(42), campground.Price)
	assert.Equal(t, int64(2), campground.Version)

	// Stale version loses the race.
	_, err = writeRepo.UpdateFields(ctx, campgroundID, "Again", 1, "d", "l", 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCampgroundWriteRepository_Images(t *testing.T) {
	db, teardown := setupCampgroundPostgresContainer(t)
	defer teardown()

	writeRepo := NewCampgroundWriteRepository(db, nil)
	readRepo := NewCampgroundReadRepository(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)
	campgroundID := insertTestCampground(t, db, authorID, "With images")

	err := writeRepo.AddImages(ctx, campgroundID, []models.ImageUpload{
		{URL: "https://res.example.com/upload/a.jpg", StorageKey: "camps/a"},
		{URL: "https://res.example.com/upload/b.jpg", StorageKey: "camps/b"},
	})
	require.NoError(t, err)

	// Appended uploads land after the existing ones.
	err = writeRepo.AddImages(ctx, campgroundID, []models.ImageUpload{
		{URL: "https://res.example.com/upload/c.jpg", StorageKey: "camps/c"},
	})
	require.NoError(t, err)

	images, err := readRepo.ListImagesByCampground(ctx, campgroundID)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, []string{"camps/a", "camps/b", "camps/c"},
		[]string{images[0].StorageKey, images[1].StorageKey, images[2].StorageKey})
	assert.Equal(t, []int{0, 1, 2},
		[]int{images[0].Position, images[1].Position, images[2].Position})

	t.Run("DeleteImagesByKeys", func(t *testing.T) {
		deleted, err := writeRepo.DeleteImagesByKeys(ctx, campgroundID, []string{"camps/b", "camps/missing"})
		require.NoError(t, err)
		assert.Equal(t, []string{"camps/b"}, deleted)

		remaining, err := readRepo.ListImagesByCampground(ctx, campgroundID)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})

	t.Run("DeleteImagesByKeys empty", func(t *testing.T) {
		deleted, err := writeRepo.DeleteImagesByKeys(ctx, campgroundID, nil)
		assert.NoError(t, err)
		assert.Nil(t, deleted)
	})

	t.Run("DeleteImagesByCampground", func(t *testing.T) {
		deleted, err := writeRepo.DeleteImagesByCampground(ctx, campgroundID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"camps/a", "camps/c"}, deleted)

		remaining, err := readRepo.ListImagesByCampground(ctx, campgroundID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}

func TestCampgroundWriteRepository_Delete(t *testing.T) {
	db, teardown := setupCampgroundPostgresContainer(t)
	defer teardown()

	campgroundWrite := NewCampgroundWriteRepository(db, nil)
	reviewWrite := NewReviewWriteRepository(db, nil)
	ctx := context.Background()

	authorID := insertTestUser(t, db)
	campgroundID := insertTestCampground(t, db, authorID, "Doomed")

	err := campgroundWrite.AddImages(ctx, campgroundID, []models.ImageUpload{
		{URL: "https://res.example.com/upload/a.jpg", StorageKey: "camps/a"},
	})
	require.NoError(t, err)
	err = reviewWrite.Save(ctx, &models.ReviewDB{
		ReviewID:     uuid.New(),
		CampgroundID: campgroundID,
		AuthorID:     authorID,
		Rating:       4,
		Body:         "Nice",
	})
	require.NoError(t, err)

	rows, err := campgroundWrite.Delete(ctx, campgroundID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// Schema cascade swept the children along with the row.
	var imageCount, reviewCount int
	require.NoError(t, db.Get(&imageCount, `SELECT COUNT(*) FROM campground_images WHERE campground_id = $1`, campgroundID))
	require.NoError(t, db.Get(&reviewCount, `SELECT COUNT(*) FROM reviews WHERE campground_id = $1`, campgroundID))
	assert.Zero(t, imageCount)
	assert.Zero(t, reviewCount)

	rows, err = campgroundWrite.Delete(ctx, campgroundID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestCampgroundWriteRepository_UsesRequestTx(t *testing.T) {
	db, teardown := setupCampgroundPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	authorID := insertTestUser(t, db)

	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := NewCampgroundWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	campgroundID := uuid.New()
	err = repo.Save(ctx, &models.CampgroundDB{
		CampgroundID: campgroundID,
		Title:        "Tentative",
		Price:        5,
		Description:  "d",
		Location:     "l",
		AuthorID:     authorID,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	campground, err := NewCampgroundReadRepository(db).GetByID(ctx, campgroundID)
	assert.NoError(t, err)
	assert.Nil(t, campground)
}
