// Package app wires configuration, storage and collaborators into the
// endpoints shared by the HTTP server and the Lambda binary.
package app

import (
	"context"
	"fmt"
	"net/http"

	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"profilehub/database"
	"profilehub/internal/awsclient"
	"profilehub/internal/config"
	"profilehub/internal/i18n"
	"profilehub/internal/invoker"
	"profilehub/internal/microservices/http-api/handler"
	"profilehub/internal/microservices/http-api/middleware"
	"profilehub/internal/microservices/http-api/repository"
	"profilehub/internal/microservices/http-api/service"
	"profilehub/internal/observability/metrics"
	"profilehub/internal/storage"
	"profilehub/pkg/logger"
)

type App struct {
	Config   *config.Config
	Pipeline *handler.Pipeline

	Notifications *handler.NotificationHandler
	Pictures      *handler.PictureHandler
	Questions     *handler.QuestionHandler

	gdb   *gorm.DB
	pool  *pgxpool.Pool
	redis *redis.Client
}

// Build opens every collaborator named by cfg. Nothing is dialed eagerly, so
// an unavailable dependency fails the requests that need it, not startup.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.L()

	catalogs, err := i18n.LoadEmbedded(cfg.BaseLanguageID)
	if err != nil {
		return nil, fmt.Errorf("load message catalogs: %w", err)
	}

	gdb, err := database.OpenGorm(cfg, log)
	if err != nil {
		return nil, err
	}
	pool, err := database.OpenPool(ctx, cfg, log)
	if err != nil {
		database.Close(gdb, nil)
		return nil, err
	}

	awsCfg, err := awsclient.LoadConfig(ctx, cfg)
	if err != nil {
		database.Close(gdb, pool)
		return nil, err
	}

	rdb := repository.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword)
	if rdb == nil {
		log.Info("language cache disabled")
	}

	userRepo := repository.NewUserRepository(gdb)
	questionRepo := repository.NewQuestionRepository(gdb, cfg.BaseLanguageID)
	notificationRepo := repository.NewNotificationRepository(pool)

	detector := invoker.NewLanguageDetector(awslambda.NewFromConfig(awsCfg), cfg.LanguageFunctionName())
	resolver := service.NewLanguageResolver(detector, repository.NewLanguageCache(rdb, cfg.LanguageCacheTTL))
	store := storage.NewS3Store(s3.NewFromConfig(awsCfg), cfg.BucketName)

	pipeline := handler.NewPipeline(service.NewCredentialVerifier(cfg.TokenSecret), catalogs, cfg.RequestTimeout)

	return &App{
		Config:        cfg,
		Pipeline:      pipeline,
		Notifications: handler.NewNotificationHandler(pipeline, service.NewNotificationService(notificationRepo)),
		Pictures:      handler.NewPictureHandler(pipeline, service.NewPictureService(userRepo, store)),
		Questions:     handler.NewQuestionHandler(pipeline, resolver, service.NewQuestionService(userRepo, questionRepo)),
		gdb:           gdb,
		pool:          pool,
		redis:         rdb,
	}, nil
}

// Endpoint returns the handler served under a HANDLER name.
func (a *App) Endpoint(name string) (handler.Endpoint, error) {
	switch name {
	case config.HandlerActiveNotifications:
		return a.Notifications, nil
	case config.HandlerDeletePicture:
		return a.Pictures, nil
	case config.HandlerQuestions:
		return a.Questions, nil
	}
	return nil, fmt.Errorf("unknown handler %q", name)
}

// Router serves all endpoints plus /health and /metrics.
func (a *App) Router() *gin.Engine {
	if !a.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.InitMetrics()

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger.L()))
	r.Use(a.Pipeline.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	limiter := middleware.NewIPRateLimiter(a.Config.RateLimitRPS, a.Config.RateLimitBurst)
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(limiter, func(c *gin.Context) {
		a.Pipeline.Reject(c, service.KindRateLimited, fmt.Errorf("rate limit exceeded for %s", c.ClientIP()))
	}))
	a.Notifications.RegisterRoutes(api)
	a.Pictures.RegisterRoutes(api)
	a.Questions.RegisterRoutes(api)

	return r
}

func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.L().Warn("redis close failed", zap.Error(err))
		}
	}
	database.Close(a.gdb, a.pool)
}
