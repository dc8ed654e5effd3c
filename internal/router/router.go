// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/getaroag/getaroag-api/internal/handler"
	"github.com/getaroag/getaroag-api/internal/middleware"
)

// RegisterRoutes registers the routes that need no dependencies.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse endpoints:
// catalog search, car detail and reference data.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	e.GET("/v1/cars", p.SearchCars)
	e.GET("/v1/cars/:id", p.GetCar)
	e.GET("/v1/cities", p.GetCities)
	e.GET("/v1/brands", p.GetBrands)
	e.GET("/v1/brands/:brand/models", p.GetBrandModels)
}

// RegisterAuth registers the auth endpoints. Registration is two-step:
// /register provisions the account and /verify trades the verification
// code for a token pair.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/register", a.Register)
	g.POST("/verify", a.VerifyCode)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("USER"))
	auth.GET("/me", a.Me)
}

// RegisterProtected registers the endpoints behind JWT auth: listing
// submission, the owner profile and booking requests.
func RegisterProtected(e *echo.Echo, l *handler.ListingHandler, p *handler.ProfileHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("USER"))

	g.POST("/cars", l.CreateCar)
	g.POST("/cars/locate", l.LocateDraft)
	g.POST("/cars/:id/bookings", p.CreateBooking)

	g.GET("/profile/cars", p.MyCars)
	g.DELETE("/profile/cars/:id", p.DeleteCar)
	g.GET("/profile/requests", p.ListRequests)
	g.POST("/profile/requests/:id/approve", p.ApproveRequest)
	g.POST("/profile/requests/:id/reject", p.RejectRequest)
	g.GET("/profile/payout", p.GetPayout)
	g.PUT("/profile/payout", p.UpdatePayout)
}
