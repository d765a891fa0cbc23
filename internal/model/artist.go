package model

import "time"

// Artist is a monitored rights holder.
type Artist struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	ContactPerson *string   `json:"contact_person"`
	Notes         *string   `json:"notes"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ArtistRequest is the create/update body for artists.
type ArtistRequest struct {
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}
