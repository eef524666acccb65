package router

import (
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/infrastructure/logger"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/handler"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config carries the handlers the router wires up. CORSAllowOrigins
// narrows the default wildcard policy when set.
type Config struct {
	Logger           *zap.Logger
	System           *handler.SystemHandler
	Customers        *handler.CustomerHandler
	Glasses          *handler.GlassHandler
	Installments     *handler.InstallmentHandler
	CORSAllowOrigins []string
}

// New builds the gin engine with the common middleware chain and the
// legacy route table. Routes live at the root, without an /api prefix,
// to preserve the original wire contract.
func New(cfg Config) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(middleware.Recovery(cfg.Logger))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/", cfg.System.Landing)

	engine.GET("/customers", cfg.Customers.List)
	engine.GET("/customer/:id", cfg.Customers.Get)
	engine.GET("/customer/:id/glasses", cfg.Glasses.ListForCustomer)
	engine.POST("/add-customer", cfg.Glasses.Create)
	engine.PUT("/edit-customer/:id/:glassId", cfg.Glasses.Update)
	engine.DELETE("/delete-customer/:id", cfg.Customers.Delete)

	engine.POST("/add-installment/:glassId", cfg.Installments.Add)
	engine.PUT("/edit-installment/:installmentId", cfg.Installments.Edit)
	engine.DELETE("/delete-latest-installment/:glassId", cfg.Installments.DeleteLatest)
	engine.DELETE("/delete-all", cfg.Customers.DeleteAll)

	return engine
}
