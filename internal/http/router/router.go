package router

import (
	"net/http"

	"capyngen_lead_backend/internal/docs"
	"capyngen_lead_backend/internal/email"
	"capyngen_lead_backend/internal/leads"
	"capyngen_lead_backend/platform/config"
	"capyngen_lead_backend/platform/httpkit"
	"capyngen_lead_backend/platform/logger"
	"capyngen_lead_backend/platform/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// New wires the middleware stack and mounts all routes.
func New(cfg *config.Config, pool *pgxpool.Pool, sender email.Sender, val *validator.Validator, log *logger.Logger) (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		httpkit.Fail(c, http.StatusInternalServerError, "Internal server error", "")
	}))
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(cfg)))

	limiter := httpkit.NewIPRateLimiter(cfg.GetRateLimitPerMinute(), log)
	engine.Use(limiter.RateLimit())

	engine.GET("/", func(c *gin.Context) {
		httpkit.OK(c, "Capyngen Lead API running 🚀")
	})

	docsHandler, err := docs.New()
	if err != nil {
		return nil, err
	}
	docsHandler.RegisterRoutes(engine)

	leadsModule := leads.NewModule(pool, sender, val, log)
	leadsModule.RegisterRoutes(engine.Group("/api/lead"))

	return engine, nil
}

func corsConfig(cfg config.HTTPConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	return corsCfg
}
