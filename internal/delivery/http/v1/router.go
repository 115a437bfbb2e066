package v1

import (
	"time"

	"go-concurso-backend/config"
	"go-concurso-backend/internal/delivery/http/middleware"
	"go-concurso-backend/internal/domain"
	"go-concurso-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	ContestUC   domain.ContestUsecase
	MatchUC     domain.MatchUsecase
	HealthUC    domain.HealthUsecase
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Metrics))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	if deps.Config.MetricsEnabled && deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	v1.GET("/health", healthHandler(deps.HealthUC))
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	write := deps.RateLimiter.Middleware(middleware.WriteRateLimitConfig(deps.Config.RateLimitWriteThreshold, window))
	NewCandidateHandler(v1, write, deps.CandidateUC, deps.MatchUC)
	NewContestHandler(v1, write, deps.ContestUC, deps.MatchUC)

	return r
}
