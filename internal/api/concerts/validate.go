package concerts

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"bandsite-api/internal/validation"
)

const maxFieldLength = 255

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseEventDate accepts the date formats the frontend sends.
func ParseEventDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isValidEventURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func SanitizeCreate(data CreateConcertRequest) CreateConcertRequest {
	data.City = strings.TrimSpace(data.City)
	data.EventDate = strings.TrimSpace(data.EventDate)
	data.Venue = strings.TrimSpace(data.Venue)
	data.EventName = strings.TrimSpace(data.EventName)
	data.EventURL = strings.TrimSpace(data.EventURL)
	return data
}

func SanitizeUpdate(data UpdateConcertRequest) UpdateConcertRequest {
	data.ID = strings.TrimSpace(data.ID)
	data.CreateConcertRequest = SanitizeCreate(data.CreateConcertRequest)
	return data
}

func ValidateCreate(data CreateConcertRequest) validation.Result {
	var errs []validation.FieldError

	if data.City == "" {
		errs = append(errs, validation.FieldError{Field: "city", Message: "City is required"})
	} else if len(data.City) > maxFieldLength {
		errs = append(errs, validation.FieldError{Field: "city", Message: "City must be less than 255 characters"})
	}

	if data.EventDate == "" {
		errs = append(errs, validation.FieldError{Field: "event_date", Message: "Event date is required"})
	} else if _, ok := ParseEventDate(data.EventDate); !ok {
		errs = append(errs, validation.FieldError{Field: "event_date", Message: "Event date must be a valid date"})
	}

	// A listing needs at least one of venue / event name to render.
	if data.Venue == "" && data.EventName == "" {
		errs = append(errs,
			validation.FieldError{Field: "venue", Message: "Either venue or event name is required"},
			validation.FieldError{Field: "event_name", Message: "Either venue or event name is required"},
		)
	}

	if len(data.Venue) > maxFieldLength {
		errs = append(errs, validation.FieldError{Field: "venue", Message: "Venue must be less than 255 characters"})
	}

	if len(data.EventName) > maxFieldLength {
		errs = append(errs, validation.FieldError{Field: "event_name", Message: "Event name must be less than 255 characters"})
	}

	if data.EventURL == "" {
		errs = append(errs, validation.FieldError{Field: "event_url", Message: "Event URL is required"})
	} else if !isValidEventURL(data.EventURL) {
		errs = append(errs, validation.FieldError{Field: "event_url", Message: "Event URL must be a valid URL"})
	}

	return validation.ResultOf(errs)
}

func ValidateUpdate(data UpdateConcertRequest) validation.Result {
	var errs []validation.FieldError

	if data.ID == "" {
		errs = append(errs, validation.FieldError{Field: "id", Message: "Concert ID is required"})
	} else if _, err := strconv.Atoi(data.ID); err != nil {
		errs = append(errs, validation.FieldError{Field: "id", Message: "Concert ID must be a valid number"})
	}

	errs = append(errs, ValidateCreate(data.CreateConcertRequest).Errors...)

	return validation.ResultOf(errs)
}
