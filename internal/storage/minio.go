package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// mimeExt is the allow-list of uploadable image types.
var mimeExt = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

// ExtForContentType returns the file extension for an allowed content type.
func ExtForContentType(contentType string) (string, bool) {
	ext, ok := mimeExt[contentType]
	return ext, ok
}

// Uploader stores image bytes remotely and hands back a public URL plus the
// object key needed for later removal.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (url, key string, err error)
	Remove(ctx context.Context, key string) error
}

type Options struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	Bucket       string
	AssetBaseURL string
}

// ImageStore uploads images to a MinIO/S3 bucket.
type ImageStore struct {
	client       *minio.Client
	bucket       string
	assetBaseURL string
}

// NewImageStore connects to MinIO and ensures the bucket exists.
func NewImageStore(opts Options) (*ImageStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio bucket create: %w", err)
		}
	}

	return &ImageStore{
		client:       client,
		bucket:       opts.Bucket,
		assetBaseURL: opts.AssetBaseURL,
	}, nil
}

func (s *ImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, string, error) {
	ext, ok := ExtForContentType(contentType)
	if !ok {
		return "", "", httperr.UnsupportedMedia("Could not read image, unsupported media file")
	}

	key := uuid.New().String() + "." + ext

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", "", httperr.Upstream(err, "Uploading image failed, please try again")
	}

	return s.assetBaseURL + "/" + key, key, nil
}

func (s *ImageStore) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
