package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/errors"
	"portfolio/internal/guard"
	"portfolio/internal/handler"
	"portfolio/internal/logging"
)

// ClaimsContextKey is where the JWT middleware stores *auth.Claims.
const ClaimsContextKey = "claims"

// TokenVerifier validates a session token, revocation included.
type TokenVerifier func(ctx context.Context, token string) (*auth.Claims, error)

// Handlers groups the HTTP handlers wired by Register.
type Handlers struct {
	Auth          *handler.AuthHandler
	Skill         *handler.SkillHandler
	Certification *handler.CertificationHandler
	Education     *handler.EducationHandler
	Project       *handler.ProjectHandler
	Message       *handler.MessageHandler
	Seed          *handler.SeedHandler
	Health        *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	l *zap.Logger,
	v echo.Validator,
	verify TokenVerifier,
	h Handlers,
) {
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(l)
	e.Validator = v
	e.IPExtractor = ipExtractor(cfg)

	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(l))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	e.GET("/healthz", h.Health.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	loginLimiter := rateLimiter(rate.Limit(cfg.LoginRateLimit), cfg.LoginRateBurst,
		"Trop de tentatives de connexion, réessayez plus tard")
	api.POST("/auth", h.Auth.Login, loginLimiter)
	api.POST("/auth/login", h.Auth.Login, loginLimiter)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/auth/session", h.Auth.Session)

	api.GET("/skills", h.Skill.List)
	api.GET("/certifications", h.Certification.List)
	api.GET("/education", h.Education.List)
	api.GET("/projects", h.Project.List)
	api.POST("/messages", h.Message.Create, rateLimiter(rate.Limit(cfg.LoginRateLimit), cfg.LoginRateBurst,
		"Trop de messages envoyés, réessayez plus tard"))

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return verify(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errors.Unauthorized("Authentification requise")
		},
	}))

	secured.POST("/skills", h.Skill.Create)
	secured.PUT("/skills/:id", h.Skill.UpdateSkill)
	secured.DELETE("/skills/:id", h.Skill.DeleteSkill)
	secured.PUT("/skills/categories/:id", h.Skill.UpdateCategory)
	secured.DELETE("/skills/categories/:id", h.Skill.DeleteCategory)

	secured.POST("/certifications", h.Certification.Create)
	secured.PUT("/certifications/:id", h.Certification.Update)
	secured.DELETE("/certifications/:id", h.Certification.Delete)

	secured.POST("/education", h.Education.Create)
	secured.PUT("/education/:id", h.Education.Update)
	secured.DELETE("/education/:id", h.Education.Delete)

	secured.POST("/projects", h.Project.Create)
	secured.PUT("/projects/:id", h.Project.Update)
	secured.DELETE("/projects/:id", h.Project.Delete)

	secured.GET("/messages", h.Message.List)
	secured.DELETE("/messages/:id", h.Message.Delete)

	secured.POST("/seed", h.Seed.Seed)

	// Replaces the secured group's catch-all, which sits behind the JWT check.
	api.RouteNotFound("", notFound)
	api.RouteNotFound("/*", notFound)

	// Admin views
	e.GET("/admin", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/admin/dashboard/")
	})
	admin := e.Group("/admin",
		guard.Middleware(guard.Config{
			Skipper: func(c echo.Context) bool {
				p := c.Request().URL.Path
				return strings.HasPrefix(p, guard.LoginPath) || strings.HasPrefix(p, "/admin/assets/")
			},
			Verify: h.Auth.VerifySession,
			Secure: cfg.IsProduction(),
		}),
		middleware.StaticWithConfig(middleware.StaticConfig{Root: cfg.AdminDir}),
	)
	admin.GET("/*", notFound)

	// Public site
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root: cfg.StaticDir,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/admin") ||
				strings.HasPrefix(p, "/swagger/") || p == "/healthz"
		},
	}))
}

// ipExtractor trusts X-Forwarded-For only when it comes from a configured proxy.
func ipExtractor(cfg *config.Config) echo.IPExtractor {
	ranges := cfg.TrustedProxyRanges()
	if len(ranges) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, r := range ranges {
		opts = append(opts, echo.TrustIPRange(r))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

func rateLimiter(limit rate.Limit, burst int, message string) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: 10 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Error: message,
				Code:  "RATE_LIMITED",
			})
		},
	})
}

func notFound(c echo.Context) error {
	return echo.ErrNotFound
}
