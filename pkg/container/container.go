package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"dadadu-backend/internal/config"
	"dadadu-backend/internal/infrastructure/ai"
	"dadadu-backend/internal/infrastructure/database"
	"dadadu-backend/internal/infrastructure/queue"
	"dadadu-backend/internal/infrastructure/storage"
	"dadadu-backend/pkg/jwt"
	"dadadu-backend/pkg/logger"

	paymentGateway "dadadu-backend/internal/domains/payment/gateway"
	stripeGateway "dadadu-backend/internal/domains/payment/gateway/stripe"
	paymentHandler "dadadu-backend/internal/domains/payment/handler"
	postHandler "dadadu-backend/internal/domains/post/handler"
	postRepo "dadadu-backend/internal/domains/post/repository"
	postService "dadadu-backend/internal/domains/post/service"
	referralHandler "dadadu-backend/internal/domains/referral/handler"
	referralRepo "dadadu-backend/internal/domains/referral/repository"
	referralService "dadadu-backend/internal/domains/referral/service"
	uploadHandler "dadadu-backend/internal/domains/upload/handler"
	uploadService "dadadu-backend/internal/domains/upload/service"
	videoHandler "dadadu-backend/internal/domains/video/handler"
	videoRepo "dadadu-backend/internal/domains/video/repository"
	videoService "dadadu-backend/internal/domains/video/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the
// root of the dependency graph; all members are singletons living for
// the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	JWTManager *jwt.Manager
	Queue      *queue.Client
	Storage    *storage.WasabiStorage // nil when credentials are absent

	// External collaborators
	Classifier videoService.Classifier
	Gateway    paymentGateway.PaymentGateway

	// Repositories
	VideoRepo videoRepo.VideoRepository
	PostRepo  postRepo.PostRepository
	ClickRepo referralRepo.ClickRepository

	// Services
	VideoService    videoService.ServiceInterface
	UploadService   uploadService.ServiceInterface
	PostService     postService.ServiceInterface
	ReferralService referralService.ServiceInterface

	// Handlers
	VideoHandler    *videoHandler.VideoHandler
	PaymentHandler  *paymentHandler.PaymentHandler
	UploadHandler   *uploadHandler.UploadHandler
	PostHandler     *postHandler.PostHandler
	ReferralHandler *referralHandler.ReferralHandler

	// storageConfigErr records why Storage is nil; surfaced as a 500
	// by the upload handler on every request.
	storageConfigErr error
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph.
// Order matters: config -> infrastructure -> repositories ->
// services -> handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[Container] Config loaded (environment: %s)", cfg.App.Environment)

	// Step 2: Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Step 3: Auth + task queue
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)
	c.Queue = queue.NewClient(cfg.Redis.Host)

	// Step 4: External collaborators. Missing credentials never stop
	// the boot; each endpoint reports its own configuration fault.
	if err := cfg.Storage.Validate(); err != nil {
		logger.Warn("Wasabi credentials missing, signed uploads disabled", map[string]interface{}{
			"reason": err.Error(),
		})
		c.storageConfigErr = err
	} else {
		c.Storage, err = storage.NewWasabiStorage(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to init wasabi storage: %w", err)
		}
	}

	c.Classifier, err = ai.NewOpenAIClassifier(cfg.OpenAI)
	if err != nil {
		logger.Warn("OpenAI key missing, captions will be marked errored", map[string]interface{}{
			"reason": err.Error(),
		})
		c.Classifier = ai.Unconfigured(err)
	}

	c.Gateway, err = stripeGateway.NewClient(cfg.Stripe.SecretKey)
	if err != nil {
		logger.Warn("Stripe key missing, payment intents disabled", map[string]interface{}{
			"reason": err.Error(),
		})
		c.Gateway = paymentGateway.Unconfigured(err)
	}

	// Step 5: Repositories
	c.initRepositories()

	// Step 6: Services
	c.initServices()

	// Step 7: Handlers
	c.initHandlers()

	log.Println("[Container] Initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.VideoRepo = videoRepo.NewPostgresVideoRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.ClickRepo = referralRepo.NewPostgresClickRepository(pool)
}

func (c *Container) initServices() {
	c.VideoService = videoService.NewVideoService(
		c.VideoRepo,
		c.Classifier,
		c.Queue,
	)

	if c.Storage != nil {
		c.UploadService = uploadService.NewUploadService(c.Storage)
	}

	c.PostService = postService.NewPostService(
		c.PostRepo,
		c.Config.CDN.Hostname,
	)

	c.ReferralService = referralService.NewReferralService(
		c.ClickRepo,
		c.Config.Referral,
	)
}

func (c *Container) initHandlers() {
	c.VideoHandler = videoHandler.NewVideoHandler(c.VideoService)
	c.PaymentHandler = paymentHandler.NewPaymentHandler(c.Gateway)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, c.storageConfigErr)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.ReferralHandler = referralHandler.NewReferralHandler(c.ReferralService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("[Container] Failed to close queue client: %v", err)
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("[Container] Database connections closed")
	}
}
