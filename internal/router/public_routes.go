package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints so
// guests can explore artists before creating an account.  The cache
// middleware, when configured, is applied to this group since these
// are the hot read paths.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rv *handler.ReviewHandler, b *handler.BookingHandler, mc *handler.MasterclassHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	// Artist directory and profile pages.
	g.GET("/artists", p.ListArtists)
	g.GET("/artists/:id", p.GetArtist)
	g.GET("/search/artists", p.SearchArtists)

	// Reviews shown on an artist's page, with the aggregate summary.
	g.GET("/artists/:id/reviews", rv.ListForArtist)

	// Bookable time slots for the booking form.
	g.GET("/slots", b.Slots)

	// Masterclass listings.
	g.GET("/masterclasses", mc.List)
	g.GET("/masterclasses/:id", mc.Get)
}
