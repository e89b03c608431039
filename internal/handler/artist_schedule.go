package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/repository"
	"github.com/rosabel/glambook/internal/service"
)

// ScheduleHandler exposes the artist's availability calendar.  Dates
// absent from the ledger are implicitly available, so the client only
// ever sees and edits explicit markings.
type ScheduleHandler struct {
	Ledger *service.AvailabilityLedger
}

func NewScheduleHandler(l *service.AvailabilityLedger) *ScheduleHandler {
	if l == nil {
		panic("nil ledger passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Ledger: l}
}

type dayStatusReq struct {
	Status string `json:"status" validate:"required"`
}

// GetSchedule lists the caller's explicit markings sorted by date.
func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Ledger.ListEntries(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": entries})
}

// SetDay marks one date available or unavailable.  A concurrent edit
// of the same calendar surfaces as a 409 so the client can re-fetch
// and retry.
func (h *ScheduleHandler) SetDay(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req dayStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status required"})
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be available or unavailable"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Ledger.SetStatus(ctx, uid, c.Param("date"), status); err != nil {
		switch err {
		case model.ErrInvalidDate:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		case repository.ErrVersionConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "schedule was modified concurrently, reload and retry"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"date": c.Param("date"), "status": status})
}

// ClearDay removes an explicit marking; the date reverts to the
// implicit available default.
func (h *ScheduleHandler) ClearDay(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Ledger.DeleteStatus(ctx, uid, c.Param("date")); err != nil {
		switch err {
		case model.ErrInvalidDate:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		case repository.ErrVersionConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "schedule was modified concurrently, reload and retry"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
