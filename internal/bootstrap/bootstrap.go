package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kranthik10/campusconnect/internal/app/controllers"
	appRoutes "github.com/kranthik10/campusconnect/internal/app/routes"
	appServices "github.com/kranthik10/campusconnect/internal/app/services"
	appStore "github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/config"
	appMiddleware "github.com/kranthik10/campusconnect/internal/middleware"
	"github.com/kranthik10/campusconnect/internal/pkg/logger"
	"github.com/kranthik10/campusconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Stores *appStore.Stores

	UserService         appServices.UserService
	MatchService        appServices.MatchService
	CommunityService    appServices.CommunityService
	EventService        appServices.EventService
	PostService         appServices.PostService
	MessageService      appServices.MessageService
	EngagementService   appServices.EngagementService
	ReferralService     appServices.ReferralService
	NotificationService appServices.NotificationService

	UserController         *appControllers.UserController
	CommunityController    *appControllers.CommunityController
	EventController        *appControllers.EventController
	PostController         *appControllers.PostController
	MessageController      *appControllers.MessageController
	EngagementController   *appControllers.EngagementController
	ReferralController     *appControllers.ReferralController
	NotificationController *appControllers.NotificationController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStores creates the in-memory stores and seeds demo data when
// configured to do so.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) *appStore.Stores {
	stores := appStore.NewStores()

	if cfg.Engine.SeedDemoData {
		seed.LoadDemoData(stores, lgr)
	}

	return stores
}

// BuildDependencies initializes application stores, services, and controllers.
func BuildDependencies(cfg *config.Config, stores *appStore.Stores, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Stores: stores, Logger: lgr}

	deps.UserService = appServices.NewUserService(stores.Users, seed.Interests(), seed.Colleges(), lgr)
	deps.MatchService = appServices.NewMatchService(stores.Users, cfg.Engine.DefaultMatchLimit, cfg.Engine.MaxMatchLimit, lgr)
	deps.CommunityService = appServices.NewCommunityService(stores.Communities, stores.Users, lgr)
	deps.EventService = appServices.NewEventService(stores.Events, stores.Users, lgr)
	deps.PostService = appServices.NewPostService(stores.Posts, stores.Users, stores.Communities, lgr)
	deps.MessageService = appServices.NewMessageService(stores.Messages, stores.Users, lgr)
	deps.EngagementService = appServices.NewEngagementService(stores.Engagement, lgr)
	deps.ReferralService = appServices.NewReferralService(
		stores.Referrals,
		stores.Users,
		stores.Engagement,
		cfg.Engine.ReferralBaseURL,
		cfg.Engine.ReferralBonusPoints,
		lgr,
	)
	deps.NotificationService = appServices.NewNotificationService(stores.Notifications, lgr)

	deps.UserController = appControllers.NewUserController(deps.UserService, deps.MatchService)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)
	deps.EngagementController = appControllers.NewEngagementController(deps.EngagementService)
	deps.ReferralController = appControllers.NewReferralController(deps.ReferralService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.CommunityController,
		deps.EventController,
		deps.PostController,
		deps.MessageController,
		deps.EngagementController,
		deps.ReferralController,
		deps.NotificationController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
