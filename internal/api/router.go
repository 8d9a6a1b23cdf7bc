package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/api/handler"
	"github.com/fixora/booking-api/internal/api/middleware"
	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

// Deps carries everything the router needs, constructed in main.
type Deps struct {
	Log     zerolog.Logger
	Tokens  ports.TokenService
	Limiter middleware.Limiter

	Auth     *handler.AuthHandler
	Bookings *handler.BookingHandler
	Services *handler.ServiceHandler
	Admin    *handler.AdminHandler
	Contact  *handler.ContactHandler
	Health   *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("fixora"))

	authRequired := middleware.Auth(d.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	rateLimited := middleware.RateLimit(d.Limiter, d.Log)

	// --- Public routes ---
	e.POST("/api/auth/register", d.Auth.Register, rateLimited)
	e.POST("/api/auth/login", d.Auth.Login, rateLimited)
	e.POST("/api/auth/logout", d.Auth.Logout)
	e.POST("/api/contact", d.Contact.Submit)

	// --- Session routes ---
	e.GET("/api/auth/me", d.Auth.Me, authRequired)

	services := e.Group("/api/services", authRequired)
	services.GET("", d.Services.List)
	services.GET("/:id", d.Services.Get)
	services.POST("", d.Services.Create, adminOnly)
	services.PUT("/:id", d.Services.Update, adminOnly)
	services.DELETE("/:id", d.Services.Delete, adminOnly)

	bookings := e.Group("/api/bookings", authRequired)
	bookings.GET("", d.Bookings.List)
	bookings.POST("", d.Bookings.Create)
	bookings.GET("/:id", d.Bookings.Get)
	bookings.PUT("/:id", d.Bookings.Update)
	bookings.DELETE("/:id", d.Bookings.Delete)

	admin := e.Group("/api/admin", authRequired, adminOnly)
	admin.GET("/users", d.Admin.Users)
	admin.GET("/bookings", d.Admin.Bookings)
	admin.GET("/analytics", d.Admin.Analytics)
	admin.GET("/contacts", d.Admin.Contacts)

	// --- Operational routes (no auth required) ---
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
