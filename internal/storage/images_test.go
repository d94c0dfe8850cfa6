package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestUploadJPEG(t *testing.T) {
	client := &fakeS3{}
	store := NewImageStoreWithClient(client, "assets")

	key, err := store.UploadJPEG(context.Background(), "Chicken Pot Pie", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "img/chicken-pot-pie.jpg", key)
	assert.Equal(t, "assets", aws.ToString(client.input.Bucket))
	assert.Equal(t, key, aws.ToString(client.input.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(client.input.ContentType))
	assert.Equal(t, []byte("jpeg-bytes"), client.body)
}

func TestUploadJPEGErrors(t *testing.T) {
	store := NewImageStoreWithClient(&fakeS3{}, "assets")
	_, err := store.UploadJPEG(context.Background(), "!!!", []byte("x"))
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	failing := NewImageStoreWithClient(&fakeS3{err: errors.New("boom")}, "assets")
	_, err = failing.UploadJPEG(context.Background(), "Toast", []byte("x"))
	assert.True(t, apperr.Is(err, apperr.CodeInternal))
}
