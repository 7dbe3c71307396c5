package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const livenessMessage = "Job Quest is comming"

type RouterDeps struct {
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	UserUC        domain.UserUsecase
	HealthUC      domain.HealthUsecase
	Tokens        *auth.TokenService
	RateLimiter   *middleware.RateLimiter
	SecLog        *security.SecurityLogger
	Config        *config.Config
}

// securityEvent fills the request fields every handler-side security event carries.
func securityEvent(c *gin.Context, event security.EventType, email string, details map[string]interface{}) security.SecurityEvent {
	return security.SecurityEvent{
		Event:     event,
		Email:     email,
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
		Path:      c.FullPath(),
		Details:   details,
	}
}

// Guards are the per-route access checks handlers attach to gated routes.
type Guards struct {
	Auth  gin.HandlerFunc
	Admin gin.HandlerFunc
	Host  gin.HandlerFunc
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()
	cfg := deps.Config

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitWindow(), cfg.RateLimitGlobalThreshold)))
	r.Use(middleware.ErrorHandler(deps.SecLog))

	guards := Guards{
		Auth:  middleware.AuthMiddleware(deps.Tokens, deps.SecLog),
		Admin: middleware.RequireRole(deps.UserUC, domain.RoleAdmin, deps.SecLog),
		Host:  middleware.RequireRole(deps.UserUC, domain.RoleHost, deps.SecLog),
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, livenessMessage)
	})
	r.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, status)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sessionLimit := deps.RateLimiter.Middleware(middleware.SessionRateLimitConfig(cfg.RateLimitWindow(), cfg.RateLimitSessionThreshold))
	NewSessionHandler(r, deps.Tokens, deps.SecLog, cfg.IsProduction(), sessionLimit)
	NewJobHandler(r, deps.JobUC, guards, deps.SecLog)
	NewApplicationHandler(r, deps.ApplicationUC, guards)
	NewUserHandler(r, deps.UserUC, guards, deps.SecLog)

	return r
}
