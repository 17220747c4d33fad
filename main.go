package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"mutualaid_backend/internals/configs"
	database "mutualaid_backend/internals/databases"
	helper "mutualaid_backend/internals/helpers"
	"mutualaid_backend/internals/helpers/storage"
	"mutualaid_backend/internals/middlewares"
	routes "mutualaid_backend/internals/route"
)

func main() {
	cfg := configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		BodyLimit:             (cfg.MaxUploadSizeMB + 1) << 20,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg)

	if err := database.ConnectDB(cfg); err != nil {
		log.Fatalf("db connect: %v", err)
	}
	database.TunePool()
	database.WarmUpQueries()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(database.DB); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	store, err := storage.FromConfig(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	routes.SetupRoutes(app, database.DB, store, cfg)

	go func() {
		log.Infof("listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown, then close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	database.Close()
}
