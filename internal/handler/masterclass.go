package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/repository"
)

// MasterclassHandler serves masterclass creation for artists and the
// public listings.
type MasterclassHandler struct {
	Classes *repository.MasterclassRepo
}

func NewMasterclassHandler(m *repository.MasterclassRepo) *MasterclassHandler {
	if m == nil {
		panic("nil repository passed to NewMasterclassHandler")
	}
	return &MasterclassHandler{Classes: m}
}

type masterclassReq struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes uint32  `json:"duration" validate:"required,min=1"`
	EventDate       string  `json:"event_date" validate:"required"` // RFC 3339
	Location        string  `json:"location" validate:"required"`
	Image           string  `json:"image"`
}

// Create publishes a new masterclass hosted by the calling artist.
func (h *MasterclassHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req masterclassReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	when, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_date must be RFC 3339"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := model.Masterclass{
		ArtistID:        uid,
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		EventDate:       when.UTC(),
		Location:        req.Location,
		Image:           req.Image,
	}
	if err := h.Classes.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// List returns upcoming masterclasses, soonest first.
func (h *MasterclassHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ms, err := h.Classes.ListUpcoming(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"masterclasses": ms})
}

// Get returns one masterclass by ID.
func (h *MasterclassHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid masterclass id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Classes.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMasterclassNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "masterclass not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, m)
}
