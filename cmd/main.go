package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/hikersclub/campgrounds/internal/facades"
	"github.com/hikersclub/campgrounds/internal/handlers"
	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/middlewares"
	"github.com/hikersclub/campgrounds/internal/repositories"
	"github.com/hikersclub/campgrounds/internal/services"

	_ "github.com/hikersclub/campgrounds/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title CampGrounds API
// @version 1.0.0
// @description Community campground directory with reviews and image galleries
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka, provider, and
// JWT settings.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	FlashExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	GeocoderBaseURL     string
	GeocoderAccessToken string

	ImageStoreBaseURL   string
	ImageStoreCloudName string
	ImageStoreAPIKey    string
	ImageStoreAPISecret string
	ImageStoreFolder    string

	ProviderTimeoutSecond int

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and returns the
// assembled application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "campgrounds")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.FlashExpSecond, err = strconv.Atoi(getEnv("FLASH_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "campground-events")

	// Geocoding provider config
	cfg.GeocoderBaseURL = getEnv("GEOCODER_BASE_URL", "https://api.mapbox.com")
	cfg.GeocoderAccessToken = getEnv("GEOCODER_ACCESS_TOKEN", "")

	// Image store config
	cfg.ImageStoreBaseURL = getEnv("IMAGE_STORE_BASE_URL", "https://api.cloudinary.com")
	cfg.ImageStoreCloudName = getEnv("IMAGE_STORE_CLOUD_NAME", "")
	cfg.ImageStoreAPIKey = getEnv("IMAGE_STORE_API_KEY", "")
	cfg.ImageStoreAPISecret = getEnv("IMAGE_STORE_API_SECRET", "")
	cfg.ImageStoreFolder = getEnv("IMAGE_STORE_FOLDER", "CampGrounds")

	if cfg.ProviderTimeoutSecond, err = strconv.Atoi(getEnv("PROVIDER_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for deletion events and image-cleanup tasks
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	campgroundReadRepo := repositories.NewCampgroundReadRepository(db)
	campgroundWriteRepo := repositories.NewCampgroundWriteRepository(db, middlewares.GetTxFromContext)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db, middlewares.GetTxFromContext)
	flashRepo := repositories.NewFlashCacheRepository(rdb, time.Duration(cfg.FlashExpSecond)*time.Second)
	denylistRepo := repositories.NewTokenDenylistRepository(rdb)

	// Initialize provider facades
	providerTimeout := time.Duration(cfg.ProviderTimeoutSecond) * time.Second
	geocoder := facades.NewGeocoderHTTPFacade(cfg.GeocoderBaseURL, cfg.GeocoderAccessToken, providerTimeout)
	imageStore := facades.NewImageStoreHTTPFacade(
		cfg.ImageStoreBaseURL, cfg.ImageStoreCloudName,
		cfg.ImageStoreAPIKey, cfg.ImageStoreAPISecret,
		cfg.ImageStoreFolder, providerTimeout,
	)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, denylistRepo)
	ownershipService := services.NewOwnershipService(campgroundReadRepo, reviewReadRepo)
	campgroundService := services.NewCampgroundService(
		campgroundReadRepo, campgroundWriteRepo,
		reviewReadRepo, reviewWriteRepo,
		geocoder, imageStore, kafkaWriter,
	)
	reviewService := services.NewReviewService(reviewWriteRepo, campgroundReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService, flashRepo)
	loginHandler := handlers.NewLoginHandler(authService, flashRepo)
	logoutHandler := handlers.NewLogoutHandler(authService, jwtSvc, flashRepo)
	noticesHandler := handlers.NewNoticesHandler(flashRepo)
	campgroundListHandler := handlers.NewCampgroundListHandler(campgroundService)
	campgroundGetHandler := handlers.NewCampgroundGetHandler(campgroundService, flashRepo)
	campgroundCreateHandler := handlers.NewCampgroundCreateHandler(campgroundService, jwtSvc, flashRepo)
	campgroundUpdateHandler := handlers.NewCampgroundUpdateHandler(campgroundService, ownershipService, jwtSvc, flashRepo)
	campgroundDeleteHandler := handlers.NewCampgroundDeleteHandler(campgroundService, ownershipService, jwtSvc, flashRepo)
	reviewCreateHandler := handlers.NewReviewCreateHandler(reviewService, jwtSvc, flashRepo)
	reviewDeleteHandler := handlers.NewReviewDeleteHandler(reviewService, ownershipService, jwtSvc, flashRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Get("/logout", logoutHandler)
	r.Get("/notices", noticesHandler)
	r.Get("/campgrounds", campgroundListHandler)
	r.Get("/campgrounds/{campgroundID}", campgroundGetHandler)

	// Protected routes with JWT middleware; writes run inside a
	// per-request transaction.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc, denylistRepo, flashRepo))
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/campgrounds", campgroundCreateHandler)
		r.Put("/campgrounds/{campgroundID}", campgroundUpdateHandler)
		r.Delete("/campgrounds/{campgroundID}", campgroundDeleteHandler)
		r.Post("/campgrounds/{campgroundID}/reviews", reviewCreateHandler)
		r.Delete("/campgrounds/{campgroundID}/reviews/{reviewID}", reviewDeleteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
