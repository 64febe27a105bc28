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

	"github.com/ShreeanshSachan/Cant-think-of-a-name/handlers"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/auth"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/config"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/database"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/oidc"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/users"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/pkg/logger"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/pkg/metrics"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: oidc=%v mongo=%v", cfg.OIDC.IssuerURL != "", cfg.MongoDB.URI != "")

	ctx := context.Background()

	// Token verifier: real OIDC discovery, or the payload-only variant for
	// integration runs under explicit opt-in.
	var verifier auth.Verifier
	if cfg.OIDC.AllowInsecure {
		logger.Warn("enabling insecure token verifier (integration mode)")
		verifier = oidc.NewInsecureVerifier()
	} else {
		ver, err := oidc.NewVerifier(ctx, cfg.OIDC.IssuerURL, cfg.OIDC.ClientID)
		if err != nil {
			logger.Fatalf("failed to initialize OIDC verifier: %v", err)
		}
		verifier = ver
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races; the
	// user store is a hard dependency, so give up after the retries.
	const maxAttempts = 5
	backoff := time.Second
	client, errConn := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	for attempt := 2; errConn != nil && attempt <= maxAttempts; attempt++ {
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt-1, maxAttempts, errConn)
		time.Sleep(backoff)
		backoff *= 2
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	usersCol := client.Database(cfg.MongoDB.Database).Collection("users")
	userSvc := users.NewService(users.NewMongoUserRepository(usersCol))

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: the store and the verifier are both hard dependencies
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"verifier": verifier != nil}
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps["store"] = client.Ping(pingCtx, nil) == nil
		if !deps["store"] || !deps["verifier"] {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	h := handlers.NewGatewayHandler(verifier, userSvc)
	h.Register(r.Group("/"))

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting auth gateway on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
