package model

import "time"

// SavedArtist is a customer's favorited artist.  Membership is keyed
// by the (customer_id, artist_id) pair; display fields are
// denormalized at save time so dashboards can render the list without
// joining the artists table.
type SavedArtist struct {
	CustomerID     uint64    `json:"customer_id"`               // saved_artists.customer_id
	ArtistID       uint64    `json:"artist_id"`                 // saved_artists.artist_id
	ArtistName     string    `json:"artist_name"`               // saved_artists.artist_name
	ProfilePicture string    `json:"profile_picture,omitempty"` // saved_artists.profile_picture
	Specialties    string    `json:"specialties"`               // saved_artists.specialties
	CreatedAt      time.Time `json:"created_at"`                // saved_artists.created_at
}
