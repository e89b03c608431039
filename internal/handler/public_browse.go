package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/repository"
	"github.com/rosabel/glambook/internal/service"
)

// PublicHandler serves unauthenticated browse endpoints: the artist
// directory, artist detail pages and directory search.
type PublicHandler struct {
	Artists *repository.ArtistRepo
	Reviews *repository.ReviewRepo
	Ledger  *service.AvailabilityLedger
}

func NewPublicHandler(a *repository.ArtistRepo, rv *repository.ReviewRepo, l *service.AvailabilityLedger) *PublicHandler {
	if a == nil || rv == nil || l == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Artists: a, Reviews: rv, Ledger: l}
}

// ListArtists returns a page of the artist directory with each row's
// review summary baked in.
func (h *PublicHandler) ListArtists(c echo.Context) error {
	return h.search(c, repository.ArtistSearchQuery{
		Page:     parsePage(c.QueryParam("page")),
		PageSize: parsePageSize(c.QueryParam("page_size")),
	})
}

// SearchArtists filters the directory by name, location and
// specialty.  All filters are case-insensitive substring matches.
func (h *PublicHandler) SearchArtists(c echo.Context) error {
	name := c.QueryParam("q")
	if name == "" {
		name = c.QueryParam("name")
	}
	return h.search(c, repository.ArtistSearchQuery{
		Name:      name,
		Location:  c.QueryParam("location"),
		Specialty: c.QueryParam("specialty"),
		Page:      parsePage(c.QueryParam("page")),
		PageSize:  parsePageSize(c.QueryParam("page_size")),
	})
}

func (h *PublicHandler) search(c echo.Context, q repository.ArtistSearchQuery) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, total, err := h.Artists.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"artists":   rows,
		"total":     total,
		"page":      q.Page,
		"page_size": q.PageSize,
	})
}

// GetArtist returns an artist's profile page: the profile itself, the
// aggregated review summary and the explicit availability markings
// the booking calendar greys out.
func (h *PublicHandler) GetArtist(c echo.Context) error {
	artistID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Artists.GetByID(ctx, artistID)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	ratings, err := h.Reviews.RatingsByArtist(ctx, artistID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	summary := service.AggregateRatings(ratings)

	entries, err := h.Ledger.ListEntries(ctx, artistID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"artist": a,
		"rating": echo.Map{
			"count":   summary.Count,
			"average": summary.Average,
			"label":   summary.Label(),
		},
		"availability": entries,
	})
}

func parsePage(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parsePageSize(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 20
	}
	if n > 100 {
		n = 100
	}
	return n
}
