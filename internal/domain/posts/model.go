package posts

import "time"

// PlaceholderImageURL is written at insert time and replaced within the same
// transaction once the real upload has succeeded.
const PlaceholderImageURL = "temp"

type Post struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TitleFr string `gorm:"size:255;not null" json:"title_fr"`
	TitleDe string `gorm:"size:255;not null" json:"title_de"`

	ContentFr string `gorm:"type:text;not null" json:"content_fr"`
	ContentDe string `gorm:"type:text;not null" json:"content_de"`

	ImageURL string `gorm:"not null;default:'temp'" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
