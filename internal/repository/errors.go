// Package repository defines sentinel error values reused across the
// data access layer.  Handlers translate them into HTTP statuses:
// ErrForbidden -> 403, ErrVersionConflict and ErrDuplicateReview ->
// 409, the not-found values -> 404.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by someone else, such as reading another customer's
// booking.
var ErrForbidden = errors.New("forbidden")

// ErrArtistNotFound is returned when a referenced artist profile does
// not exist.
var ErrArtistNotFound = errors.New("artist not found")

// ErrBookingNotFound is returned when a referenced booking does not
// exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrMasterclassNotFound is returned when a referenced masterclass
// does not exist.
var ErrMasterclassNotFound = errors.New("masterclass not found")

// ErrVersionConflict is returned when a whole-map availability write
// carries a stale version token, meaning another session replaced the
// ledger since this one read it.  The caller should re-fetch and
// retry.
var ErrVersionConflict = errors.New("availability version conflict")

// ErrDuplicateReview is returned when a second review is submitted
// for the same booking.
var ErrDuplicateReview = errors.New("booking already reviewed")

// ErrPortfolioFull is returned when an artist attempts to attach more
// than the allowed number of portfolio images.
var ErrPortfolioFull = errors.New("portfolio image limit reached")
