package main

import (
	"log"

	"cipher-backend/config"
	"cipher-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	cipherHandler := handlers.NewCipherHandler(logger)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		vig := api.Group("/vigenere")
		{
			vig.POST("/encrypt", cipherHandler.Encrypt)
			vig.POST("/decrypt", cipherHandler.Decrypt)
			vig.POST("/transform", cipherHandler.Transform)
		}

		cae := api.Group("/caesar")
		{
			cae.POST("/encrypt", cipherHandler.CaesarEncrypt)
			cae.POST("/decrypt", cipherHandler.CaesarDecrypt)
		}
	}

	logger.Infow("server starting", "port", cfg.Port)
	logger.Info("API endpoints:")
	logger.Info("  POST /api/v1/vigenere/encrypt   - Encrypt a message with a Vigenère key")
	logger.Info("  POST /api/v1/vigenere/decrypt   - Decrypt a message with a Vigenère key")
	logger.Info("  POST /api/v1/vigenere/transform - Same cipher, explicit direction field")
	logger.Info("  POST /api/v1/caesar/encrypt     - Fixed-shift encryption")
	logger.Info("  POST /api/v1/caesar/decrypt     - Fixed-shift decryption")
	logger.Info("  GET  /api/v1/health             - Health check")

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalw("failed to start server", "error", err)
	}
}

// requestID tags every request so log lines and responses can be
// correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func newLogger(level, format string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if format != "json" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
