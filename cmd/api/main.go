package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/tasmimahana/cse470/internal/config"
	dbpkg "github.com/tasmimahana/cse470/internal/db"
	"github.com/tasmimahana/cse470/internal/logger"
	"github.com/tasmimahana/cse470/internal/mailer"
	"github.com/tasmimahana/cse470/internal/metrics"
	"github.com/tasmimahana/cse470/internal/routes"
	"github.com/tasmimahana/cse470/internal/storage"
)

func main() {

	cfg := config.Load()
	lg := logger.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg)

	metrics.MustRegister()

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Logger: lg,
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		deps.Redis = redis.NewClient(opts)
		defer deps.Redis.Close()
	}

	var mail mailer.Mailer
	if cfg.SMTPEnabled() {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.EmailUser,
			Pass: cfg.EmailPass,
			From: cfg.EmailFrom,
		})
	} else {
		lg.Warn("smtp not configured, verification mail is logged only")
		mail = mailer.NewLogMailer(lg)
	}
	deps.Mailer = mailer.NewAsync(mail, lg)

	if cfg.S3Enabled() {
		deps.Store = storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("shutdown", "error", err)
	}
	lg.Info("server stopped")
}
