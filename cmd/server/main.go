package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"franquicia/internal/branch"
	"franquicia/internal/config"
	"franquicia/internal/franchise"
	"franquicia/internal/infrastructure/logger"
	"franquicia/internal/infrastructure/mysql"
	"franquicia/internal/product"
	"franquicia/internal/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env es opcional; en despliegues reales las variables vienen del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	franchiseCtrl := franchise.NewModule(db, zapLogger)
	branchCtrl := branch.NewModule(db, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)

	router := server.NewRouter(franchiseCtrl, branchCtrl, productCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
