package imagestore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectClient struct {
	mock.Mock
}

func (m *mockObjectClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockObjectClient) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

func TestS3UploadPutsObjectUnderImagesPrefix(t *testing.T) {
	client := new(mockObjectClient)
	client.On("PutObject", mock.Anything, "band-images", "images/post-7.png",
		mock.Anything, int64(9), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "image/png"
		})).Return(minio.UploadInfo{}, nil)

	store := NewS3WithClient(client, "band-images", 1024)
	require.NoError(t, store.Upload(context.Background(), dataURI([]byte("img-bytes")), "post-7.png"))
	client.AssertExpectations(t)
}

func TestS3UploadRejectsInvalidDataBeforeCallingClient(t *testing.T) {
	client := new(mockObjectClient)
	store := NewS3WithClient(client, "band-images", 1024)

	err := store.Upload(context.Background(), "not-a-data-uri", "x.png")
	require.Error(t, err)
	assert.Equal(t, "Invalid image data format", err.Error())
	client.AssertNotCalled(t, "PutObject")
}

func TestS3UploadWrapsClientError(t *testing.T) {
	client := new(mockObjectClient)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("connection refused"))

	store := NewS3WithClient(client, "band-images", 1024)
	err := store.Upload(context.Background(), dataURI([]byte("img")), "x.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload image")
}

func TestS3DeleteStripsURLToObjectName(t *testing.T) {
	client := new(mockObjectClient)
	client.On("RemoveObject", mock.Anything, "band-images", "images/carousel-3.png",
		mock.Anything).Return(nil)

	store := NewS3WithClient(client, "band-images", 1024)
	require.NoError(t, store.Delete(context.Background(), "/images/carousel-3.png"))
	client.AssertExpectations(t)
}
