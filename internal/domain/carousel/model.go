package carousel

import "time"

// PlaceholderURL is the sentinel url a picture row carries between insert
// and the upload completing inside the same transaction.
const PlaceholderURL = "temp"

// SwapSentinelPosition sits outside the valid [0,100] position range and is
// used as a parking slot during the three-step position swap, so the unique
// index on position is never violated mid-transaction.
const SwapSentinelPosition = 1000

type Picture struct {
	ID uint `gorm:"primaryKey" json:"id"`

	URL      string `gorm:"uniqueIndex;not null" json:"url"`
	Position int    `gorm:"uniqueIndex;not null" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
