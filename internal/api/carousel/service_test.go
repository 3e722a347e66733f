package carousel

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"bandsite-api/database"
	"bandsite-api/internal/apperrors"
	"bandsite-api/internal/domain/carousel"
	"bandsite-api/internal/infra/imagestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testPolicy = Policy{MinPictures: 3, MaxPictures: 100}

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

func pngDataURI(t *testing.T) string {
	t.Helper()
	payload := base64.StdEncoding.EncodeToString([]byte("not-a-real-png"))
	return "data:image/png;base64," + payload
}

// seedPictures inserts n pictures at positions 1..n.
func seedPictures(t *testing.T, db *gorm.DB, n int) []carousel.Picture {
	t.Helper()
	out := make([]carousel.Picture, 0, n)
	for i := 1; i <= n; i++ {
		p := carousel.Picture{
			URL:      fmt.Sprintf("/images/carousel-%d.png", i),
			Position: i,
		}
		require.NoError(t, db.Create(&p).Error)
		out = append(out, p)
	}
	return out
}

func positionsByID(t *testing.T, db *gorm.DB) map[uint]int {
	t.Helper()
	var pics []carousel.Picture
	require.NoError(t, db.Find(&pics).Error)
	out := make(map[uint]int, len(pics))
	for _, p := range pics {
		out[p.ID] = p.Position
	}
	return out
}

func assertUniquePositions(t *testing.T, db *gorm.DB) {
	t.Helper()
	seen := make(map[int]uint)
	for id, pos := range positionsByID(t, db) {
		if other, dup := seen[pos]; dup {
			t.Fatalf("position %d shared by pictures %d and %d", pos, other, id)
		}
		seen[pos] = id
	}
}

func TestAddAssignsNextPosition(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	seedPictures(t, db, 3)

	picture, err := Add(context.Background(), db, store, testPolicy, CreateCarouselRequest{Picture64: pngDataURI(t)})
	require.NoError(t, err)

	assert.Equal(t, 4, picture.Position)
	assert.Equal(t, fmt.Sprintf("/images/carousel-%d.png", picture.ID), picture.URL)
	assert.True(t, store.Has(fmt.Sprintf("carousel-%d.png", picture.ID)))
	assertUniquePositions(t, db)
}

func TestAddOnEmptyCarouselStartsAtOne(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	picture, err := Add(context.Background(), db, store, testPolicy, CreateCarouselRequest{Picture64: pngDataURI(t)})
	require.NoError(t, err)
	assert.Equal(t, 1, picture.Position)
}

func TestAddSkipsExistingGaps(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()

	// A prior failed delete left a hole at position 2; new pictures still
	// go after the maximum, the gap is not reused.
	for _, pos := range []int{1, 3, 4} {
		require.NoError(t, db.Create(&carousel.Picture{
			URL:      fmt.Sprintf("/images/carousel-%d.png", pos),
			Position: pos,
		}).Error)
	}

	picture, err := Add(context.Background(), db, store, testPolicy, CreateCarouselRequest{Picture64: pngDataURI(t)})
	require.NoError(t, err)
	assert.Equal(t, 5, picture.Position)
}

func TestAddRefusedAtCapacity(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	pol := Policy{MinPictures: 3, MaxPictures: 5}
	seedPictures(t, db, 5)

	_, err := Add(context.Background(), db, store, pol, CreateCarouselRequest{Picture64: pngDataURI(t)})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "CAPACITY_EXCEEDED", appErr.Code)
	assert.Contains(t, appErr.Message, "cannot add more than 5")

	var count int64
	require.NoError(t, db.Model(&carousel.Picture{}).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}

func TestAddUploadFailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	seedPictures(t, db, 3)

	// No comma separator: the store rejects it before writing anything.
	_, err := Add(context.Background(), db, store, testPolicy, CreateCarouselRequest{Picture64: "data:image/png;base64"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image data format")

	var count int64
	require.NoError(t, db.Model(&carousel.Picture{}).Count(&count).Error)
	assert.EqualValues(t, 3, count, "failed upload must not leave a row behind")
}

func TestRemoveRenumbersFollowingPictures(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	pics := seedPictures(t, db, 6)

	// Delete the picture at position 3.
	require.NoError(t, Remove(context.Background(), db, store, testPolicy, pics[2].ID))

	got := positionsByID(t, db)
	assert.Len(t, got, 5)
	assert.Equal(t, 1, got[pics[0].ID])
	assert.Equal(t, 2, got[pics[1].ID])
	assert.Equal(t, 3, got[pics[3].ID], "old position 4 shifts to 3")
	assert.Equal(t, 4, got[pics[4].ID], "old position 5 shifts to 4")
	assert.Equal(t, 5, got[pics[5].ID], "old position 6 shifts to 5")
	assertUniquePositions(t, db)
}

func TestRemoveRefusedAtMinimumCount(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	pics := seedPictures(t, db, 3)

	for _, p := range pics {
		err := Remove(context.Background(), db, store, testPolicy, p.ID)
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "MINIMUM_COUNT", appErr.Code)
		assert.Contains(t, appErr.Message, "at least 3 pictures")
	}

	got := positionsByID(t, db)
	assert.Len(t, got, 3, "table must be unchanged")
	for i, p := range pics {
		assert.Equal(t, i+1, got[p.ID])
	}
}

func TestRemoveNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	seedPictures(t, db, 4)

	err := Remove(context.Background(), db, store, testPolicy, 999)
	require.Error(t, err)
	assert.Equal(t, "Picture not found", err.Error())
}

func TestRemoveDeletesStoredImage(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	pics := seedPictures(t, db, 4)

	name := fmt.Sprintf("carousel-%d.png", pics[3].ID)
	require.NoError(t, store.Upload(context.Background(), pngDataURI(t), name))

	require.NoError(t, Remove(context.Background(), db, store, testPolicy, pics[3].ID))
	assert.False(t, store.Has(name))
}

func TestSwitchSwapsAdjacentPictures(t *testing.T) {
	db := setupTestDB(t)
	pics := seedPictures(t, db, 4)

	require.NoError(t, Switch(db, pics[1].ID, SwitchPositionRequest{Direction: "right"}))

	got := positionsByID(t, db)
	assert.Equal(t, 3, got[pics[1].ID])
	assert.Equal(t, 2, got[pics[2].ID])
	assert.Equal(t, 1, got[pics[0].ID])
	assert.Equal(t, 4, got[pics[3].ID])
	assertUniquePositions(t, db)
}

func TestSwitchLeftThenRightIsIdentity(t *testing.T) {
	db := setupTestDB(t)
	pics := seedPictures(t, db, 5)
	before := positionsByID(t, db)

	require.NoError(t, Switch(db, pics[2].ID, SwitchPositionRequest{Direction: "left"}))
	require.NoError(t, Switch(db, pics[2].ID, SwitchPositionRequest{Direction: "right"}))

	assert.Equal(t, before, positionsByID(t, db))
	assertUniquePositions(t, db)
}

func TestSwitchAtEdgesFails(t *testing.T) {
	db := setupTestDB(t)
	pics := seedPictures(t, db, 3)
	before := positionsByID(t, db)

	err := Switch(db, pics[0].ID, SwitchPositionRequest{Direction: "left"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot move picture left")

	err = Switch(db, pics[2].ID, SwitchPositionRequest{Direction: "right"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot move picture right")

	assert.Equal(t, before, positionsByID(t, db), "failed switches must not move anything")
}

func TestSwitchNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedPictures(t, db, 3)

	err := Switch(db, 999, SwitchPositionRequest{Direction: "left"})
	require.Error(t, err)
	assert.Equal(t, "Picture not found", err.Error())
}

func TestUpdateImageKeepsPosition(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	pics := seedPictures(t, db, 3)

	picture, err := UpdateImage(context.Background(), db, store, pics[1].ID, UpdateCarouselRequest{
		CreateCarouselRequest: CreateCarouselRequest{Picture64: pngDataURI(t)},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, picture.Position)
	assert.True(t, store.Has(fmt.Sprintf("carousel-%d.png", pics[1].ID)))
}

func TestUpdateImageNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := imagestore.NewFake()
	seedPictures(t, db, 3)

	_, err := UpdateImage(context.Background(), db, store, 999, UpdateCarouselRequest{
		CreateCarouselRequest: CreateCarouselRequest{Picture64: pngDataURI(t)},
	})
	require.Error(t, err)
	assert.Equal(t, "Picture not found", err.Error())
}

func TestListOrdersByPosition(t *testing.T) {
	db := setupTestDB(t)

	for _, pos := range []int{4, 1, 3, 2} {
		require.NoError(t, db.Create(&carousel.Picture{
			URL:      fmt.Sprintf("/images/carousel-%d.png", pos),
			Position: pos,
		}).Error)
	}

	pics, err := List(db)
	require.NoError(t, err)
	require.Len(t, pics, 4)
	for i, p := range pics {
		assert.Equal(t, i+1, p.Position)
	}
}
