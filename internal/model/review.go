package model

import "time"

// Review is a customer's rating of a completed booking.  At most one
// review exists per booking; the constraint lives on
// reviews.booking_id.  Rows are immutable after creation.
//
// Fields:
//  ID         – primary key identifier.
//  ArtistID   – artist being reviewed.
//  CustomerID – author of the review.
//  BookingID  – originating booking (unique).
//  Rating     – integer 1..5.
//  ReviewText – free-text comment.
//  CreatedAt  – creation timestamp (UTC).
type Review struct {
	ID         uint64    `json:"id"`          // reviews.id
	ArtistID   uint64    `json:"artist_id"`   // reviews.artist_id
	CustomerID uint64    `json:"customer_id"` // reviews.customer_id
	BookingID  uint64    `json:"booking_id"`  // reviews.booking_id
	Rating     uint8     `json:"rating"`      // reviews.rating
	ReviewText string    `json:"review_text"` // reviews.review_text
	CreatedAt  time.Time `json:"created_at"`  // reviews.created_at
}
