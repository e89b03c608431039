package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/handler"
	"github.com/rosabel/glambook/internal/middleware"
)

// RegisterArtist registers artist-scoped endpoints under /v1.  All
// routes require a valid JWT and the ARTIST role.  Artists manage
// their profile, portfolio images, availability calendar, incoming
// bookings and masterclasses.
func RegisterArtist(e *echo.Echo, a *handler.ArtistHandler, s *handler.ScheduleHandler, b *handler.BookingHandler, mc *handler.MasterclassHandler, jwtSecret string) {
	g := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ARTIST"),
	)

	g.GET("/artist/profile", a.GetProfile)
	g.PUT("/artist/profile", a.UpdateProfile)
	g.POST("/artist/profile-picture", a.UploadProfilePicture)
	g.POST("/artist/portfolio", a.AddPortfolioImage)

	g.GET("/schedule", s.GetSchedule)
	g.PUT("/schedule/:date", s.SetDay)
	g.DELETE("/schedule/:date", s.ClearDay)

	g.GET("/artist/bookings", b.ListForArtist)

	g.POST("/masterclasses", mc.Create)
}
