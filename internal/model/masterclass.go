package model

import "time"

// Masterclass is a group teaching event offered by an artist, listed
// publicly alongside the artist directory.
//
// Fields:
//  ID              – primary key identifier.
//  ArtistID        – hosting artist.
//  Title           – listing title.
//  Description     – what participants will learn.
//  Price           – ticket price.
//  DurationMinutes – session length in minutes.
//  EventDate       – scheduled start.
//  Location        – venue address.
//  Image           – optional image host URL for the listing.
type Masterclass struct {
	ID              uint64    `json:"id"`              // masterclasses.id
	ArtistID        uint64    `json:"artist_id"`       // masterclasses.artist_id
	Title           string    `json:"title"`           // masterclasses.title
	Description     string    `json:"description"`     // masterclasses.description
	Price           float64   `json:"price"`           // masterclasses.price
	DurationMinutes uint32    `json:"duration"`        // masterclasses.duration_minutes
	EventDate       time.Time `json:"event_date"`      // masterclasses.event_date
	Location        string    `json:"location"`        // masterclasses.location
	Image           string    `json:"image,omitempty"` // masterclasses.image
	CreatedAt       time.Time `json:"created_at"`      // masterclasses.created_at
}
