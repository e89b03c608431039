package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/repository"
	"github.com/rosabel/glambook/internal/service"
)

// SavedArtistHandler serves the customer's favorites list and the
// save/unsave toggle.
type SavedArtistHandler struct {
	Toggle *service.SavedArtistToggle
	Saved  *repository.SavedArtistRepo
}

func NewSavedArtistHandler(t *service.SavedArtistToggle, s *repository.SavedArtistRepo) *SavedArtistHandler {
	if t == nil || s == nil {
		panic("nil dependency passed to NewSavedArtistHandler")
	}
	return &SavedArtistHandler{Toggle: t, Saved: s}
}

// ToggleSave flips the saved state for the artist in the path and
// reports the resulting state.
func (h *SavedArtistHandler) ToggleSave(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	artistID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	state, err := h.Toggle.Toggle(ctx, uid, artistID)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"artist_id": artistID, "state": state})
}

// List returns the caller's saved artists, most recently saved first.
func (h *SavedArtistHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	saved, err := h.Saved.ListByCustomer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"saved_artists": saved})
}
