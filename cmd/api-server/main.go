package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"quillhub/database"
	"quillhub/internal/cache"
	"quillhub/internal/config"
	"quillhub/internal/http-api/handler"
	"quillhub/internal/http-api/middleware"
	"quillhub/internal/http-api/repository"
	"quillhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	pageCache := newPageCache(cfg, logger)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// Services
	enricher := service.NewEnrichService(userRepo, challengeRepo, likeRepo, logger)
	userSvc := service.NewUserService(userRepo, answerRepo, followRepo, logger)
	categorySvc := service.NewCategoryService(categoryRepo)
	challengeSvc := service.NewChallengeService(challengeRepo, categoryRepo)
	answerSvc := service.NewAnswerService(answerRepo, challengeRepo, enricher, logger)
	commentSvc := service.NewCommentService(commentRepo, answerRepo, userRepo, enricher, logger)
	likeSvc := service.NewLikeService(likeRepo, answerRepo, userRepo, logger)
	followSvc := service.NewFollowService(followRepo, userRepo)
	feedSvc := service.NewFeedService(answerRepo, enricher, pageCache, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.Identity(cfg.JWTSecret))

	handler.NewHealthHandler(db).RegisterRoutes(r)

	api := r.Group("/api/v1")
	handler.NewCategoryHandler(categorySvc, challengeSvc, cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(api.Group("/categories"))
	handler.NewChallengeHandler(challengeSvc, answerSvc, cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(api.Group("/challenges"))
	handler.NewAnswerHandler(answerSvc, likeSvc, commentSvc, cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(api.Group("/answers"))
	handler.NewCommentHandler(commentSvc).RegisterRoutes(api.Group("/comments"))
	handler.NewUserHandler(userSvc, answerSvc, followSvc, cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(api.Group("/users"))
	handler.NewFeedHandler(feedSvc, cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newPageCache wires the optional Redis skeleton cache. No REDIS_URL
// means a nil cache, which every caller treats as a pass-through.
func newPageCache(cfg *config.Config, logger *slog.Logger) *cache.RankingPageCache {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, caching disabled", "error", err)
		return nil
	}
	client := redis.NewClient(opts)
	logger.Info("ranking page cache enabled", "ttl", cfg.CacheTTL)
	return cache.NewRankingPageCache(client, cfg.CacheTTL)
}
