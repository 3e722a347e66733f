package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bandsite-api/internal/apperrors"
	"bandsite-api/internal/domain/posts"
	"bandsite-api/internal/infra/imagestore"

	"gorm.io/gorm"
)

func imageName(id uint) string {
	return fmt.Sprintf("post-%d.png", id)
}

func List(db *gorm.DB) ([]posts.Post, error) {
	var out []posts.Post
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to fetch posts", err)
	}
	return out, nil
}

func GetByID(db *gorm.DB, id uint) (*posts.Post, error) {
	var post posts.Post
	err := db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Post")
	}
	if err != nil {
		return nil, apperrors.NewInternal("Failed to fetch post", err)
	}
	return &post, nil
}

// Create inserts the post with a placeholder image url and, when image data
// is present, uploads it inside the same transaction. An upload failure
// rolls back the insert: no post row survives without its image.
func Create(ctx context.Context, db *gorm.DB, store imagestore.Store, data CreatePostRequest) (*posts.Post, error) {
	var post posts.Post

	err := db.Transaction(func(tx *gorm.DB) error {
		post = posts.Post{
			TitleFr:   data.TitleFr,
			TitleDe:   data.TitleDe,
			ContentFr: data.ContentFr,
			ContentDe: data.ContentDe,
			ImageURL:  posts.PlaceholderImageURL,
		}
		if err := tx.Create(&post).Error; err != nil {
			return apperrors.NewInternal("Failed to create post", err)
		}

		if data.Img64 != "" {
			name := imageName(post.ID)
			if err := store.Upload(ctx, data.Img64, name); err != nil {
				return apperrors.NewUpload(err.Error())
			}
			post.ImageURL = store.URLFor(name)
			if err := tx.Model(&post).Update("image_url", post.ImageURL).Error; err != nil {
				return apperrors.NewInternal("Failed to update post image", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func Update(ctx context.Context, db *gorm.DB, store imagestore.Store, id uint, data UpdatePostRequest) (*posts.Post, error) {
	var post posts.Post

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Post")
			}
			return apperrors.NewInternal("Failed to fetch post", err)
		}

		imageURL := post.ImageURL
		if data.Img64 != "" {
			name := imageName(id)
			if err := store.Upload(ctx, data.Img64, name); err != nil {
				return apperrors.NewUpload(err.Error())
			}
			imageURL = store.URLFor(name)
		}

		updates := map[string]any{
			"title_fr":   data.TitleFr,
			"title_de":   data.TitleDe,
			"content_fr": data.ContentFr,
			"content_de": data.ContentDe,
			"image_url":  imageURL,
		}
		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			return apperrors.NewInternal("Failed to update post", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the row, then best-effort deletes the stored image. The
// image deletion happens after commit and its failure is logged, never
// surfaced: the row deletion is the authoritative part.
func Delete(ctx context.Context, db *gorm.DB, store imagestore.Store, id uint) error {
	var post posts.Post

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Post")
			}
			return apperrors.NewInternal("Failed to fetch post", err)
		}
		if err := tx.Delete(&post).Error; err != nil {
			return apperrors.NewInternal("Failed to delete post", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if post.ImageURL != "" && post.ImageURL != posts.PlaceholderImageURL {
		if err := store.Delete(ctx, post.ImageURL); err != nil {
			slog.Warn("failed to delete post image", "post_id", id, "url", post.ImageURL, "error", err)
		}
	}
	return nil
}
