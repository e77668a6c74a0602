package app

import (
	"net/http"

	"go-employees/internal/department"
	"go-employees/internal/employee"
	"go-employees/internal/middleware"
	"go-employees/internal/role"
	"go-employees/internal/salaryhistory"
	"go-employees/internal/shared/flash"
	"go-employees/internal/shared/response"
	"go-employees/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	cfg Config,
	logger *zap.Logger,
) {
	router.SetHTMLTemplate(web.MustTemplates())
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
	)
	router.NoRoute(func(c *gin.Context) {
		response.ErrorPage(c, http.StatusNotFound)
	})

	// --- Repositories ---
	departmentRepo := department.NewRepository(db)
	roleRepo := role.NewRepository(db)
	salaryRepo := salaryhistory.NewRepository(db)
	employeeRepo := employee.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, salaryRepo, departmentRepo, roleRepo, logger)

	// --- Handlers ---
	flashStore := flash.NewStore(cfg.SessionSecret)
	employeeHandler := employee.NewHandler(employeeService, flashStore, logger)

	// --- Routes Registration ---
	writeLimit := middleware.RateLimitByIP(rate.Limit(cfg.WriteRate), cfg.WriteBurst)
	employee.RegisterRoutes(router, employeeHandler, writeLimit)
}
