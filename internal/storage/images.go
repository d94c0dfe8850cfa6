// Package storage uploads image assets to S3 under the paths the HTML
// renderer links to.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/render"
)

// KeyPrefix is the directory images are stored under in the bucket
const KeyPrefix = "img/"

// PutObjectAPI is the part of the S3 client the store needs
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageStore writes JPEG images named after catalog entries
type ImageStore struct {
	client PutObjectAPI
	bucket string
}

// NewImageStore creates a store for the configured bucket
func NewImageStore(cfg *config.S3Config) *ImageStore {
	return &ImageStore{client: cfg.Client, bucket: cfg.BucketName}
}

// NewImageStoreWithClient creates a store around an existing client
func NewImageStoreWithClient(client PutObjectAPI, bucket string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket}
}

// ImageKey returns the object key for the image of the entry called name
func ImageKey(name string) string {
	return KeyPrefix + render.Slug(name) + ".jpg"
}

// UploadJPEG stores data as the image for name and returns the object key
func (s *ImageStore) UploadJPEG(ctx context.Context, name string, data []byte) (string, error) {
	if render.Slug(name) == "" {
		return "", apperr.Validation("Name does not produce a usable image path")
	}

	key := ImageKey(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("failed to upload to S3: %w", err))
	}
	return key, nil
}
