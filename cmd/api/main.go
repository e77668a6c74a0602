package main

import (
	"context"
	"time"

	"go-employees/internal/app"
	"go-employees/internal/bootstrap"
	"go-employees/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := app.LoadConfig()

	newLogger := zap.NewDevelopment
	if cfg.IsProduction() {
		newLogger = zap.NewProduction
		gin.SetMode(gin.ReleaseMode)
	}
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	// build dependency + routes
	if _, err := app.BuildApp(context.Background(), r, cfg, logger, auditLogger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
	if err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
