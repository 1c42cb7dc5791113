package api

import (
	"context"

	"github.com/monginis/export-api/config"
	"github.com/monginis/export-api/pkg/api/brochurelead"
	"github.com/monginis/export-api/pkg/api/health"
	"github.com/monginis/export-api/pkg/api/inquiry"
	"github.com/monginis/export-api/pkg/api/middleware"
	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/lumber"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Router represents the routes for the http server.
type Router struct {
	cfg                      *config.Config
	signalCtx                context.Context
	inquiryStore             core.InquiryStore
	brochureLeadStore        core.BrochureLeadStore
	emailNotificationManager core.EmailNotificationManager
	logger                   lumber.Logger
}

// New returns a New Router
func New(
	signalCtx context.Context,
	cfg *config.Config,
	dbStores *core.DBStores,
	emailNotificationManager core.EmailNotificationManager,
	logger lumber.Logger) Router {
	return Router{
		cfg:                      cfg,
		signalCtx:                signalCtx,
		inquiryStore:             dbStores.InquiryStore,
		brochureLeadStore:        dbStores.BrochureLeadStore,
		emailNotificationManager: emailNotificationManager,
		logger:                   logger,
	}
}

// Handler function will perform all route operations
func (r *Router) Handler() *gin.Engine {
	r.logger.Infof("Setting up routes")
	router := gin.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := configureValidator(v); err != nil {
			r.logger.Fatalf("failed to configure validator %v", err)
		}
	}
	// skip /api/health from logs as it is hit by probes
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api/health"))
	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.Recovery())
	// Only the allow-listed origins may call the API with credentials.
	// Requests without an Origin header (server-to-server) pass through.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = r.cfg.CorsAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization", "cache-control", "pragma")
	router.Use(cors.New(corsConfig))
	pprof.Register(router)

	apiRoutes := router.Group("/api")
	apiRoutes.GET("/health", health.Handler(r.signalCtx))

	inquiryRoutes := apiRoutes.Group("/inquiries")
	inquiryRoutes.POST("", inquiry.HandleCreate(r.inquiryStore, r.emailNotificationManager, r.logger))
	inquiryRoutes.GET("", middleware.HandleAdminAuth(r.cfg, r.logger),
		inquiry.HandleList(r.inquiryStore, r.logger))

	brochureLeadRoutes := apiRoutes.Group("/brochure-leads")
	brochureLeadRoutes.POST("", brochurelead.HandleCreate(r.brochureLeadStore, r.emailNotificationManager, r.logger))
	brochureLeadRoutes.GET("", middleware.HandleAdminAuth(r.cfg, r.logger),
		brochurelead.HandleList(r.brochureLeadStore, r.logger))

	return router
}
