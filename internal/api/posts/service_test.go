package posts

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"bandsite-api/database"
	"bandsite-api/internal/domain/posts"
	"bandsite-api/internal/infra/imagestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func validCreateRequest() CreatePostRequest {
	return CreatePostRequest{
		TitleFr:   "Titre",
		TitleDe:   "Titel",
		ContentFr: "Contenu",
		ContentDe: "Inhalt",
	}
}

func TestCreateWithoutImageKeepsPlaceholder(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	post, err := Create(context.Background(), db, store, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, posts.PlaceholderImageURL, post.ImageURL)
}

func TestCreateWithImageUploadsAndSetsURL(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	req := validCreateRequest()
	req.Img64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("img"))

	post, err := Create(context.Background(), db, store, req)
	require.NoError(t, err)

	name := fmt.Sprintf("post-%d.png", post.ID)
	assert.Equal(t, "/images/"+name, post.ImageURL)
	assert.True(t, store.Has(name))
}

func TestCreateUploadFailureLeavesNoRow(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	req := validCreateRequest()
	req.Img64 = "data:image/png;base64" // no comma separator

	_, err := Create(context.Background(), db, store, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image data format")

	var count int64
	require.NoError(t, db.Model(&posts.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	_, err := Update(context.Background(), db, store, 42, UpdatePostRequest{
		ID:                "42",
		CreatePostRequest: validCreateRequest(),
	})
	require.Error(t, err)
	assert.Equal(t, "Post not found", err.Error())
}

func TestUpdateReplacesFieldsAndImage(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	created, err := Create(context.Background(), db, store, validCreateRequest())
	require.NoError(t, err)

	req := UpdatePostRequest{ID: fmt.Sprint(created.ID), CreatePostRequest: validCreateRequest()}
	req.TitleFr = "Nouveau titre"
	req.Img64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("img"))

	updated, err := Update(context.Background(), db, store, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "Nouveau titre", updated.TitleFr)
	assert.Equal(t, fmt.Sprintf("/images/post-%d.png", created.ID), updated.ImageURL)
}

func TestDeleteRemovesRowAndImage(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	req := validCreateRequest()
	req.Img64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("img"))
	post, err := Create(context.Background(), db, store, req)
	require.NoError(t, err)

	require.NoError(t, Delete(context.Background(), db, store, post.ID))

	var count int64
	require.NoError(t, db.Model(&posts.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	assert.False(t, store.Has(fmt.Sprintf("post-%d.png", post.ID)))
}

func TestDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	err := Delete(context.Background(), db, store, 7)
	require.Error(t, err)
	assert.Equal(t, "Post not found", err.Error())
}

func TestListOrdersByNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		p := posts.Post{
			TitleFr:   fmt.Sprintf("fr-%d", i),
			TitleDe:   fmt.Sprintf("de-%d", i),
			ContentFr: "c",
			ContentDe: "c",
			ImageURL:  posts.PlaceholderImageURL,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&p).Error)
	}

	out, err := List(db)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "fr-2", out[0].TitleFr)
	assert.Equal(t, "fr-0", out[2].TitleFr)
}
