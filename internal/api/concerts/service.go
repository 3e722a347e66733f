package concerts

import (
	"errors"

	"bandsite-api/internal/apperrors"
	"bandsite-api/internal/domain/concerts"

	"gorm.io/gorm"
)

func List(db *gorm.DB) ([]concerts.Concert, error) {
	var out []concerts.Concert
	if err := db.Order("event_date DESC").Find(&out).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to fetch concerts", err)
	}
	return out, nil
}

func GetByID(db *gorm.DB, id uint) (*concerts.Concert, error) {
	var concert concerts.Concert
	err := db.First(&concert, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Concert")
	}
	if err != nil {
		return nil, apperrors.NewInternal("Failed to fetch concert", err)
	}
	return &concert, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Create(db *gorm.DB, data CreateConcertRequest) (*concerts.Concert, error) {
	eventDate, ok := ParseEventDate(data.EventDate)
	if !ok {
		return nil, apperrors.NewValidation("Event date must be a valid date")
	}

	concert := concerts.Concert{
		City:      data.City,
		EventDate: eventDate,
		Venue:     optional(data.Venue),
		EventName: optional(data.EventName),
		EventURL:  data.EventURL,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&concert).Error; err != nil {
			return apperrors.NewInternal("Failed to create concert", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &concert, nil
}

func Update(db *gorm.DB, id uint, data UpdateConcertRequest) (*concerts.Concert, error) {
	eventDate, ok := ParseEventDate(data.EventDate)
	if !ok {
		return nil, apperrors.NewValidation("Event date must be a valid date")
	}

	var concert concerts.Concert
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&concert, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Concert")
			}
			return apperrors.NewInternal("Failed to fetch concert", err)
		}

		updates := map[string]any{
			"city":       data.City,
			"event_date": eventDate,
			"venue":      optional(data.Venue),
			"event_name": optional(data.EventName),
			"event_url":  data.EventURL,
		}
		if err := tx.Model(&concert).Updates(updates).Error; err != nil {
			return apperrors.NewInternal("Failed to update concert", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &concert, nil
}

func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var concert concerts.Concert
		if err := tx.First(&concert, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Concert")
			}
			return apperrors.NewInternal("Failed to fetch concert", err)
		}
		if err := tx.Delete(&concert).Error; err != nil {
			return apperrors.NewInternal("Failed to delete concert", err)
		}
		return nil
	})
}
