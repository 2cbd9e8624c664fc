package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/config"
	"github.com/shopfloor-inc/shopfloor/internal/interfaces/http/middleware"
	"github.com/shopfloor-inc/shopfloor/internal/interfaces/http/routes"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"

	_ "github.com/shopfloor-inc/shopfloor/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine   *gin.Engine
	handlers *allHandlers
	logger   logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gormDB *gorm.DB, log logger.Interface) (*Router, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	repos := newRepositories(gormDB)
	txMgr := db.NewTransactionManager(gormDB)
	ucs := newUseCases(repos, txMgr, log)

	return &Router{
		engine:   gin.New(),
		handlers: newHandlers(ucs, sqlDB, log),
		logger:   log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger.Named("http")))
	r.engine.Use(middleware.Recovery(r.logger.Named("http")))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.handlers.healthHandler.HealthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupMechanicRoutes(r.engine, &routes.MechanicRouteConfig{
		MechanicHandler: r.handlers.mechanicHandler,
	})
	routes.SetupServiceTicketRoutes(r.engine, &routes.ServiceTicketRouteConfig{
		ServiceTicketHandler: r.handlers.serviceTicketHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
