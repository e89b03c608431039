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

// BookingHandler wraps the booking coordinator and booking queries.
type BookingHandler struct {
	Coordinator *service.BookingCoordinator
	Bookings    *repository.BookingRepo
}

func NewBookingHandler(co *service.BookingCoordinator, b *repository.BookingRepo) *BookingHandler {
	if co == nil || b == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Coordinator: co, Bookings: b}
}

// bookingReq carries no validate tags: the coordinator owns the whole
// attempt pipeline, including presence checks, so partial selections
// reach it and come back as typed rejections.
type bookingReq struct {
	Date     string `json:"date"`
	TimeSlot string `json:"time"`
	Note     string `json:"note"`
}

// Create submits a booking attempt for the artist in the path.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	artistID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Coordinator.Create(ctx, service.BookingRequest{
		CustomerID: uid,
		ArtistID:   artistID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Note:       req.Note,
	})
	if err != nil {
		switch err {
		case service.ErrAuthRequired:
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "please log in to book"})
		case service.ErrIncompleteSelection:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "date and time slot are required"})
		case model.ErrInvalidDate:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		case service.ErrInvalidSlot:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown time slot"})
		case service.ErrDateUnavailable:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "artist is unavailable on the chosen date"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}
	return c.JSON(http.StatusCreated, b)
}

// ListMine returns the caller's bookings.  ?when=past flips the split;
// the default is upcoming bookings in chronological order.
func (h *BookingHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	upcoming := c.QueryParam("when") != "past"
	cutoff := time.Now().UTC().Format(model.DateLayout)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bs, err := h.Bookings.ListByCustomer(ctx, uid, cutoff, upcoming)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bs})
}

// Get returns one of the caller's bookings by ID.
func (h *BookingHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByIDForCustomer(ctx, id, uid)
	if err != nil {
		switch err {
		case repository.ErrBookingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your booking"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
	}
	return c.JSON(http.StatusOK, b)
}

// ListForArtist returns every booking placed with the calling artist,
// newest date first.
func (h *BookingHandler) ListForArtist(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bs, err := h.Bookings.ListByArtist(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bs})
}

// Slots lists the bookable time slots for the booking form.
func (h *BookingHandler) Slots(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"slots": model.TimeSlots})
}
