package posts

import (
	"strconv"
	"strings"

	"bandsite-api/internal/infra/imagestore"
	"bandsite-api/internal/validation"
)

const maxTitleLength = 255

// SanitizeCreate trims surrounding whitespace from every string field.
// Callers run it before validation.
func SanitizeCreate(data CreatePostRequest) CreatePostRequest {
	data.TitleFr = strings.TrimSpace(data.TitleFr)
	data.TitleDe = strings.TrimSpace(data.TitleDe)
	data.ContentFr = strings.TrimSpace(data.ContentFr)
	data.ContentDe = strings.TrimSpace(data.ContentDe)
	data.Img64 = strings.TrimSpace(data.Img64)
	return data
}

func SanitizeUpdate(data UpdatePostRequest) UpdatePostRequest {
	data.ID = strings.TrimSpace(data.ID)
	data.CreatePostRequest = SanitizeCreate(data.CreatePostRequest)
	return data
}

func ValidateCreate(data CreatePostRequest) validation.Result {
	var errs []validation.FieldError

	if data.TitleFr == "" {
		errs = append(errs, validation.FieldError{Field: "title_fr", Message: "French title is required"})
	} else if len(data.TitleFr) > maxTitleLength {
		errs = append(errs, validation.FieldError{Field: "title_fr", Message: "French title must be less than 255 characters"})
	}

	if data.TitleDe == "" {
		errs = append(errs, validation.FieldError{Field: "title_de", Message: "German title is required"})
	} else if len(data.TitleDe) > maxTitleLength {
		errs = append(errs, validation.FieldError{Field: "title_de", Message: "German title must be less than 255 characters"})
	}

	if data.ContentFr == "" {
		errs = append(errs, validation.FieldError{Field: "content_fr", Message: "French content is required"})
	}

	if data.ContentDe == "" {
		errs = append(errs, validation.FieldError{Field: "content_de", Message: "German content is required"})
	}

	if data.Img64 != "" && !imagestore.IsValidImageData(data.Img64) {
		errs = append(errs, validation.FieldError{Field: "img64", Message: "Invalid image format. Only JPEG, PNG, GIF, and WebP are allowed"})
	}

	return validation.ResultOf(errs)
}

// ValidateUpdate checks the identifier and unions the create rules over the
// remaining fields.
func ValidateUpdate(data UpdatePostRequest) validation.Result {
	var errs []validation.FieldError

	if data.ID == "" {
		errs = append(errs, validation.FieldError{Field: "id", Message: "Post ID is required"})
	} else if _, err := strconv.Atoi(data.ID); err != nil {
		errs = append(errs, validation.FieldError{Field: "id", Message: "Post ID must be a valid number"})
	}

	errs = append(errs, ValidateCreate(data.CreatePostRequest).Errors...)

	return validation.ResultOf(errs)
}
