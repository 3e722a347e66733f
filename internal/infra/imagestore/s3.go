package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectClient is the slice of the minio client the S3 store needs; tests
// substitute a mock.
type ObjectClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// S3 stores images as objects under the images/ prefix of a bucket.
type S3 struct {
	bucket  string
	maxSize int64
	client  ObjectClient
}

func NewS3(endpoint, accessKey, secretKey, bucket string, useSSL bool, maxSize int64) (*S3, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return &S3{bucket: bucket, maxSize: maxSize, client: client}, nil
}

// NewS3WithClient wires a pre-built client, used by tests.
func NewS3WithClient(client ObjectClient, bucket string, maxSize int64) *S3 {
	return &S3{bucket: bucket, maxSize: maxSize, client: client}
}

func (s *S3) Upload(ctx context.Context, imageData, name string) error {
	raw, err := decodeDataURI(imageData, s.maxSize)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, "images/"+name,
		bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: contentTypeOf(imageData)})
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}
	return nil
}

func (s *S3) Delete(ctx context.Context, urlOrName string) error {
	name := path.Base(urlOrName)
	return s.client.RemoveObject(ctx, s.bucket, "images/"+name, minio.RemoveObjectOptions{})
}

func (s *S3) URLFor(name string) string {
	return "/images/" + name
}

func contentTypeOf(imageData string) string {
	for _, prefix := range validDataPrefixes {
		if strings.HasPrefix(imageData, prefix) {
			return strings.TrimSuffix(strings.TrimPrefix(prefix, "data:"), ";base64,")
		}
	}
	return "application/octet-stream"
}
