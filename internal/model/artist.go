package model

import "time"

// MaxPortfolioImages caps the number of portfolio image references an
// artist may attach to their profile.
const MaxPortfolioImages = 5

// Artist is the public-facing service provider profile.  The row is
// keyed by the owning account's user ID, so artist identity and
// account identity are the same value.
//
// Fields:
//  UserID         – primary key, references users.id.
//  Name           – display name shown in listings and bookings.
//  Specialties    – free-text specialty (e.g. "Bridal", "Hair Stylist").
//  Experience     – free-text background blurb from signup.
//  Location       – free-text location used by search.
//  Rate           – optional per-session rate; nil when unset.
//  ProfilePicture – optional image host URL.
//  Portfolio      – up to MaxPortfolioImages image host URLs, in
//                   upload order.
//  Instagram, Facebook, TikTok – optional social links.
type Artist struct {
	UserID         uint64    `json:"id"`                        // artists.user_id
	Name           string    `json:"name"`                      // artists.name
	Specialties    string    `json:"specialties"`               // artists.specialties
	Experience     string    `json:"experience,omitempty"`      // artists.experience
	Location       string    `json:"location,omitempty"`        // artists.location
	Rate           *float64  `json:"rate,omitempty"`            // artists.rate (nullable)
	ProfilePicture string    `json:"profile_picture,omitempty"` // artists.profile_picture
	Portfolio      []string  `json:"portfolio"`                 // artists.portfolio (JSON array)
	Instagram      string    `json:"instagram,omitempty"`       // artists.instagram
	Facebook       string    `json:"facebook,omitempty"`        // artists.facebook
	TikTok         string    `json:"tiktok,omitempty"`          // artists.tiktok
	CreatedAt      time.Time `json:"created_at"`                // artists.created_at
	UpdatedAt      time.Time `json:"-"`                         // artists.updated_at
}

// UnknownArtistName is the placeholder shown when a referenced artist
// document has gone missing.
const UnknownArtistName = "Unknown Artist"
