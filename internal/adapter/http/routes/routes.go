package routes

import (
	"context"
	"net/http"
	"time"

	_ "staffing_service/docs"
	"staffing_service/internal/adapter/http/handlers"
	"staffing_service/internal/adapter/http/middleware"
	"staffing_service/internal/adapter/http/validation"
	"staffing_service/internal/infrastructure/catalog"
	"staffing_service/internal/infrastructure/config"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/internal/infrastructure/metrics"
	"staffing_service/internal/infrastructure/workflow"
	"staffing_service/internal/usecase"
	"staffing_service/internal/usecase/interfaces"
	"staffing_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// dependencies are the collaborators the router is built from.
type dependencies struct {
	storage  storage
	engine   interfaces.IWorkflowEngine
	catalog  interfaces.ICatalogNotifier
	registry *prometheus.Registry
}

// Run will start the server
func Run(cfg config.Config) {
	st, err := newStorage(context.Background(), cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("[routes] failed to initialise storage")
	}
	defer st.close()

	router, err := newRouter(cfg, dependencies{
		storage:  st,
		engine:   workflow.New(cfg),
		catalog:  catalog.New(cfg),
		registry: prometheus.NewRegistry(),
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("[routes] failed to build router")
	}

	logger.Log.WithField("port", cfg.HTTPPort).Info("[routes] listening")
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		logger.Log.WithError(err).Fatal("Failed to startup the application")
	}
}

func newRouter(cfg config.Config, deps dependencies) (*gin.Engine, error) {
	if err := validation.RegisterWithGin(); err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	deps.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{})))

	getRoutes(router, cfg, deps)
	return router, nil
}

func getRoutes(router *gin.Engine, cfg config.Config, deps dependencies) {
	st := deps.storage
	rec := metrics.NewRecorder(deps.registry)

	orderUseCase := usecase.NewServiceOrderUseCase(st.orders, st.extensions, st.substitutions, deps.catalog, rec)
	extensionUseCase := usecase.NewExtensionUseCase(st.orders, st.extensions, st.committer, deps.catalog, rec,
		usecase.ExtensionPolicy{MaxRemainingManDays: cfg.ExtensionMaxRemainingManDays})
	substitutionUseCase := usecase.NewSubstitutionUseCase(st.orders, st.substitutions, st.committer, deps.catalog, rec)
	requestUseCase := usecase.NewServiceRequestUseCase(st.requests, deps.engine, deps.catalog, rec)
	offerUseCase := usecase.NewServiceOfferUseCase(st.offers, st.requests, st.orders, deps.engine, deps.catalog, rec)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1,
		handlers.NewServiceOrderHandler(orderUseCase),
		handlers.NewExtensionHandler(extensionUseCase),
		handlers.NewSubstitutionHandler(substitutionUseCase),
	)
	addServiceRequestRoutes(v1,
		handlers.NewServiceRequestHandler(requestUseCase),
		handlers.NewServiceOfferHandler(offerUseCase),
	)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.WithField("panic", recovered).Error("Recovered from panic")
		internal := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(internal.HTTPStatus, internal.ToHTTPError())
	}))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
}
