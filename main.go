package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/guilhermerodrigues17/messages-backend/config"
	"github.com/guilhermerodrigues17/messages-backend/controllers"
	"github.com/guilhermerodrigues17/messages-backend/db"
	"github.com/guilhermerodrigues17/messages-backend/forms"
	"github.com/guilhermerodrigues17/messages-backend/hashing"
	"github.com/guilhermerodrigues17/messages-backend/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func SlogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rlog := logger.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"request_id", requestid.Get(c),
		)

		start := time.Now()
		rlog.Debug("request started")
		c.Next()
		duration := time.Since(start)
		rlog.Info("request completed", "status", c.Writer.Status(), "duration", duration)
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	if cfg.Env == "PRODUCTION" {
		gin.SetMode(gin.ReleaseMode)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	//Start the default gin server
	r := gin.Default()

	//Custom form validator
	binding.Validator = new(forms.DefaultValidator)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "Accept-Encoding", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))
	r.Use(requestid.New(requestid.WithCustomHeaderStrKey("X-Request-Id")))
	r.Use(SlogMiddleware(logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.NewMongo(ctx, cfg.DBURI, cfg.DBName)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	hasher := hashing.NewBcrypt()
	tokenService := service.NewTokenService(cfg)
	authService := service.NewAuthService(database, hasher, tokenService)
	userService := service.NewUserService(database, hasher, cfg.UploadDir)
	messageService := service.NewMessageService(database)

	health := controllers.NewHealthController()
	r.GET("/health", health.Health)

	auth := controllers.NewAuthController(authService)
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/refresh", auth.Refresh)

	user := controllers.NewUserController(userService)
	r.POST("/users", user.Register)

	users := r.Group("/users", auth.RequireAuth)
	users.GET("", user.List)
	users.GET("/:id", user.One)
	users.PATCH("/:id", user.Update)
	users.DELETE("/:id", user.Remove)
	users.POST("/picture", user.UploadPicture)

	msg := controllers.NewMessageController(messageService)
	msgs := r.Group("/messages", auth.RequireAuth)
	msgs.GET("", msg.List)
	msgs.GET("/:id", msg.One)
	msgs.POST("", msg.Send)
	msgs.PATCH("/:id", msg.Update)
	msgs.DELETE("/:id", msg.Remove)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "ssl", cfg.SSL)

	if cfg.SSL {
		err = r.RunTLS(":"+cfg.Port, cfg.CertFile, cfg.KeyFile)
	} else {
		err = r.Run(":" + cfg.Port)
	}
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
