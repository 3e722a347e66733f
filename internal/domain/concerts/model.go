package concerts

import "time"

type Concert struct {
	ID uint `gorm:"primaryKey" json:"id"`

	City      string    `gorm:"size:255;not null" json:"city"`
	EventDate time.Time `gorm:"not null;index" json:"event_date"`

	// Venue and EventName are individually optional but never both empty,
	// enforced by the concert validator.
	Venue     *string `gorm:"size:255" json:"venue,omitempty"`
	EventName *string `gorm:"size:255" json:"event_name,omitempty"`

	EventURL string `gorm:"not null" json:"event_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
