package app

import (
	"context"
	"fmt"

	"go-employees/internal/bootstrap"
	"go-employees/internal/seed"
	"go-employees/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp opens the database, wipes and reseeds it, then mounts every
// module on router. The reset runs on every start; existing data is lost.
func BuildApp(
	ctx context.Context,
	router *gin.Engine,
	cfg Config,
	logger *zap.Logger,
	auditLogger bootstrap.AuditLogger,
) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.L()
	}

	db, err := connection.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if cfg.SessionSecret == DefaultSessionSecret {
		logger.Warn("SESSION_SECRET not set, using insecure development secret")
	}

	if err := seed.Reset(ctx, db, logger); err != nil {
		return nil, fmt.Errorf("reset database: %w", err)
	}
	if auditLogger != nil {
		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  bootstrap.ActionDatabaseReset,
			Message: "Database dropped and reseeded",
			Meta: map[string]any{
				"driver": cfg.Database.Driver,
			},
		})
	}

	registerModules(router, db, cfg, logger)
	return db, nil
}
