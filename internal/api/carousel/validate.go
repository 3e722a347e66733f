package carousel

import (
	"strconv"
	"strings"

	"bandsite-api/internal/infra/imagestore"
	"bandsite-api/internal/validation"
)

func SanitizeCreate(data CreateCarouselRequest) CreateCarouselRequest {
	data.Picture64 = strings.TrimSpace(data.Picture64)
	return data
}

func SanitizeUpdate(data UpdateCarouselRequest) UpdateCarouselRequest {
	data.ID = strings.TrimSpace(data.ID)
	data.CreateCarouselRequest = SanitizeCreate(data.CreateCarouselRequest)
	return data
}

func ValidateCreate(data CreateCarouselRequest) validation.Result {
	var errs []validation.FieldError

	if data.Picture64 == "" {
		errs = append(errs, validation.FieldError{Field: "picture64", Message: "Picture data is required"})
	} else if !imagestore.IsValidImageData(data.Picture64) {
		errs = append(errs, validation.FieldError{Field: "picture64", Message: "Invalid image format. Only JPEG, PNG, GIF, and WebP are allowed"})
	}

	return validation.ResultOf(errs)
}

func ValidateUpdate(data UpdateCarouselRequest) validation.Result {
	var errs []validation.FieldError

	if data.ID == "" {
		errs = append(errs, validation.FieldError{Field: "id", Message: "Picture ID is required"})
	} else if _, err := strconv.Atoi(data.ID); err != nil {
		errs = append(errs, validation.FieldError{Field: "id", Message: "Picture ID must be a valid number"})
	}

	errs = append(errs, ValidateCreate(data.CreateCarouselRequest).Errors...)

	return validation.ResultOf(errs)
}

func ValidateSwitchPosition(data SwitchPositionRequest) validation.Result {
	var errs []validation.FieldError

	if data.Direction == "" {
		errs = append(errs, validation.FieldError{Field: "direction", Message: "Direction is required"})
	} else if data.Direction != "left" && data.Direction != "right" {
		errs = append(errs, validation.FieldError{Field: "direction", Message: `Direction must be either "left" or "right"`})
	}

	return validation.ResultOf(errs)
}
