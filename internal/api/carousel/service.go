package carousel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"bandsite-api/internal/apperrors"
	"bandsite-api/internal/domain/carousel"
	"bandsite-api/internal/infra/imagestore"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Policy carries the carousel bounds. Bounds are checked inside the same
// transaction as the writes they guard.
type Policy struct {
	MinPictures int
	MaxPictures int
}

func imageName(id uint) string {
	return fmt.Sprintf("carousel-%d.png", id)
}

func List(db *gorm.DB) ([]carousel.Picture, error) {
	var out []carousel.Picture
	if err := db.Order("position ASC").Find(&out).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to fetch pictures", err)
	}
	return out, nil
}

func GetByID(db *gorm.DB, id uint) (*carousel.Picture, error) {
	var picture carousel.Picture
	err := db.First(&picture, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Picture")
	}
	if err != nil {
		return nil, apperrors.NewInternal("Failed to fetch picture", err)
	}
	return &picture, nil
}

// withLock adds FOR UPDATE row locking. SQLite has no FOR UPDATE syntax;
// its single-connection test databases serialize writers on their own.
func withLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockedPictures reads every carousel row FOR UPDATE, ordered by position.
// Taking the locks up front serializes concurrent carousel mutators, so the
// count/max-position reads below stay valid for the rest of the
// transaction.
func lockedPictures(tx *gorm.DB) ([]carousel.Picture, error) {
	var pics []carousel.Picture
	err := withLock(tx).
		Order("position ASC").
		Find(&pics).Error
	if err != nil {
		return nil, apperrors.NewInternal("Failed to fetch pictures", err)
	}
	return pics, nil
}

// Add appends a picture at max(position)+1. The capacity guard, the
// position computation, the row insert and the upload all share one
// transaction: an upload failure leaves no row behind.
func Add(ctx context.Context, db *gorm.DB, store imagestore.Store, pol Policy, data CreateCarouselRequest) (*carousel.Picture, error) {
	var picture carousel.Picture

	err := db.Transaction(func(tx *gorm.DB) error {
		pics, err := lockedPictures(tx)
		if err != nil {
			return err
		}

		if len(pics) >= pol.MaxPictures {
			return apperrors.NewCapacity(fmt.Sprintf("You cannot add more than %d pictures", pol.MaxPictures))
		}

		nextPosition := 1
		if len(pics) > 0 {
			nextPosition = pics[len(pics)-1].Position + 1
		}

		picture = carousel.Picture{
			URL:      carousel.PlaceholderURL,
			Position: nextPosition,
		}
		if err := tx.Create(&picture).Error; err != nil {
			return apperrors.NewInternal("Failed to add picture", err)
		}

		name := imageName(picture.ID)
		if err := store.Upload(ctx, data.Picture64, name); err != nil {
			return apperrors.NewUpload(err.Error())
		}

		picture.URL = store.URLFor(name)
		if err := tx.Model(&picture).Update("url", picture.URL).Error; err != nil {
			return apperrors.NewInternal("Failed to update picture url", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &picture, nil
}

// UpdateImage re-uploads the image under the picture's deterministic
// name, overwriting the stored file. Position is never touched here.
func UpdateImage(ctx context.Context, db *gorm.DB, store imagestore.Store, id uint, data UpdateCarouselRequest) (*carousel.Picture, error) {
	var picture carousel.Picture

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&picture, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Picture")
			}
			return apperrors.NewInternal("Failed to fetch picture", err)
		}

		if err := store.Upload(ctx, data.Picture64, imageName(id)); err != nil {
			return apperrors.NewUpload(err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &picture, nil
}

// Remove removes the row and closes the gap it leaves: every row
// whose position was greater than the deleted one shifts down by exactly
// one, as a single bulk update in the same transaction. Pre-existing gaps
// from earlier failures are left alone. The stored image is deleted
// best-effort after commit.
func Remove(ctx context.Context, db *gorm.DB, store imagestore.Store, pol Policy, id uint) error {
	var picture carousel.Picture

	err := db.Transaction(func(tx *gorm.DB) error {
		pics, err := lockedPictures(tx)
		if err != nil {
			return err
		}

		if len(pics) <= pol.MinPictures {
			return apperrors.NewMinimumCount(fmt.Sprintf("You need at least %d pictures in the carousel", pol.MinPictures))
		}

		if err := tx.First(&picture, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Picture")
			}
			return apperrors.NewInternal("Failed to fetch picture", err)
		}

		if err := tx.Delete(&picture).Error; err != nil {
			return apperrors.NewInternal("Failed to delete picture", err)
		}

		err = tx.Model(&carousel.Picture{}).
			Where("position > ?", picture.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
		if err != nil {
			return apperrors.NewInternal("Failed to renumber pictures", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if picture.URL != "" && picture.URL != carousel.PlaceholderURL {
		if err := store.Delete(ctx, picture.URL); err != nil {
			slog.Warn("failed to delete carousel image", "picture_id", id, "url", picture.URL, "error", err)
		}
	}
	return nil
}

// Switch swaps a picture with its neighbour. The unique index on
// position forbids a direct two-row swap, so picture A parks on the
// sentinel position first, then B takes A's slot, then A takes B's old
// slot. Each step writes into a slot that is vacant at that moment.
func Switch(db *gorm.DB, id uint, data SwitchPositionRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var pictureA carousel.Picture
		err := withLock(tx).First(&pictureA, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Picture")
		}
		if err != nil {
			return apperrors.NewInternal("Failed to fetch picture", err)
		}

		positionA := pictureA.Position
		targetPosition := positionA + 1
		if data.Direction == "left" {
			targetPosition = positionA - 1
		}

		var pictureB carousel.Picture
		err = withLock(tx).
			Where("position = ?", targetPosition).
			First(&pictureB).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.AppError{
				Code:    "NO_ADJACENT_PICTURE",
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("Cannot move picture %s. No picture found at target position.", data.Direction),
			}
		}
		if err != nil {
			return apperrors.NewInternal("Failed to fetch adjacent picture", err)
		}

		positionB := pictureB.Position

		if err := tx.Model(&pictureA).Update("position", carousel.SwapSentinelPosition).Error; err != nil {
			return apperrors.NewInternal("Failed to switch positions", err)
		}
		if err := tx.Model(&pictureB).Update("position", positionA).Error; err != nil {
			return apperrors.NewInternal("Failed to switch positions", err)
		}
		if err := tx.Model(&pictureA).Update("position", positionB).Error; err != nil {
			return apperrors.NewInternal("Failed to switch positions", err)
		}
		return nil
	})
}
