package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/queue"
	"github.com/rosabel/glambook/internal/repository"
	"github.com/rosabel/glambook/internal/service"
)

// ReviewHandler serves review submission and the aggregated listings.
type ReviewHandler struct {
	Reviews  *repository.ReviewRepo
	Bookings *repository.BookingRepo

	// publish emits the post-persist event.  Best effort; swapped
	// out in tests.
	publish func(ctx context.Context, ev queue.ReviewSubmittedEvent) error
}

func NewReviewHandler(rv *repository.ReviewRepo, b *repository.BookingRepo) *ReviewHandler {
	if rv == nil || b == nil {
		panic("nil repository passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: rv, Bookings: b, publish: queue.PublishReviewSubmitted}
}

type reviewReq struct {
	Rating     uint8  `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
}

// Submit stores a review for one of the caller's bookings.  A second
// review of the same booking is rejected with 409.
func (h *ReviewHandler) Submit(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "rating must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByIDForCustomer(ctx, bookingID, uid)
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

	rv := model.Review{
		ArtistID:   b.ArtistID,
		CustomerID: uid,
		BookingID:  b.ID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	if err := h.Reviews.Create(ctx, &rv); err != nil {
		if err == repository.ErrDuplicateReview {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking already reviewed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}

	if err := h.publish(ctx, queue.ReviewSubmittedEvent{
		ReviewID:   rv.ID,
		ArtistID:   rv.ArtistID,
		CustomerID: rv.CustomerID,
		BookingID:  rv.BookingID,
		Rating:     rv.Rating,
		CreatedAt:  rv.CreatedAt.Format(time.RFC3339),
	}); err != nil {
		log.Printf("review submit: publish failed: %v", err)
	}
	return c.JSON(http.StatusCreated, rv)
}

// ListForArtist returns an artist's reviews plus the aggregate rating
// summary used on profile pages.
func (h *ReviewHandler) ListForArtist(c echo.Context) error {
	artistID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.ListByArtist(ctx, artistID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	ratings := make([]uint8, 0, len(reviews))
	for _, rv := range reviews {
		ratings = append(ratings, rv.Rating)
	}
	summary := service.AggregateRatings(ratings)

	return c.JSON(http.StatusOK, echo.Map{
		"summary": echo.Map{
			"count":   summary.Count,
			"average": summary.Average,
			"label":   summary.Label(),
		},
		"reviews": reviews,
	})
}

// ListMine returns the reviews written by the caller.
func (h *ReviewHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.ListByCustomer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": reviews})
}
