package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/handler"
	"github.com/rosabel/glambook/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.
// All routes require a valid JWT and the CUSTOMER role.  Customers
// place bookings, review completed ones and manage saved artists.
func RegisterCustomer(e *echo.Echo, b *handler.BookingHandler, rv *handler.ReviewHandler, sa *handler.SavedArtistHandler, jwtSecret string) {
	g := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)

	g.POST("/artists/:id/bookings", b.Create)
	g.GET("/my-bookings", b.ListMine)
	g.GET("/bookings/:id", b.Get)

	g.POST("/bookings/:id/review", rv.Submit)
	g.GET("/my-reviews", rv.ListMine)

	g.POST("/saved-artists/:id/toggle", sa.ToggleSave)
	g.GET("/saved-artists", sa.List)
}
