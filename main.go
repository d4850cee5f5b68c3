package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/formbridge/formbridge/handlers"
	"github.com/formbridge/formbridge/internal/catalog"
	"github.com/formbridge/formbridge/internal/config"
	"github.com/formbridge/formbridge/internal/database"
	"github.com/formbridge/formbridge/internal/submission/service"
	"github.com/formbridge/formbridge/internal/tokens"
	"github.com/formbridge/formbridge/pkg/logger"
	"github.com/formbridge/formbridge/pkg/metrics"
	"github.com/formbridge/formbridge/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v catalog=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Catalog.Path)

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global per-IP rate limiter (Redis-backed when available)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// The Mongo client is created lazily on the first datastore use, so the
	// catalog endpoint keeps working with an unreachable or unconfigured
	// datastore.
	db := database.NewManager(cfg.MongoDB)
	defer func() { _ = db.Close(context.Background()) }()
	subs := service.NewMongoService(db)
	cat := catalog.NewReader(cfg.Catalog.Path)

	if cfg.Admin.SecretKey == "change_this_in_production" {
		logger.Warn("SECRET_KEY is the placeholder value; set a secure value in production")
	}
	verifier := tokens.NewVerifier(cfg.Admin.SecretKey)

	handlers.NewFormHandler(subs).Register(r)
	handlers.NewAPIHandler(cat, subs).Register(r, verifier)
	handlers.RegisterSwagger(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: the catalog endpoint works regardless, but submissions need
	// a configured datastore
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"datastore": db.Configured(),
			"catalog":   cat.Exists(),
		}
		status := gin.H{"deps": deps, "uptime": time.Since(startTime).String()}
		if !db.Configured() {
			status["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["status"] = "ready"
		c.JSON(http.StatusOK, status)
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting formbridge on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
