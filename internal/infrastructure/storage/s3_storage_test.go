package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"confeccao_os/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Storage_Upload(t *testing.T) {
	fake := &fakePutter{}
	s := &S3Storage{client: fake, bucket: "anexos"}

	err := s.Upload(context.Background(), "orcamentos/abc.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "anexos", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "orcamentos/abc.png", aws.ToString(fake.in.Key))
	assert.Equal(t, "image/png", aws.ToString(fake.in.ContentType))
	assert.Equal(t, int64(9), aws.ToInt64(fake.in.ContentLength))
	assert.Equal(t, "png-bytes", string(fake.body))
}

func TestS3Storage_UploadError(t *testing.T) {
	boom := errors.New("access denied")
	s := &S3Storage{client: &fakePutter{err: boom}, bucket: "anexos"}

	err := s.Upload(context.Background(), "orcamentos/abc.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, boom)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "explicit base wins",
			cfg:  config.Config{StoragePublicBaseURL: "https://cdn.example.com/", S3Endpoint: "http://localhost:4566", StorageBucket: "anexos"},
			want: "https://cdn.example.com",
		},
		{
			name: "emulator path style",
			cfg:  config.Config{S3Endpoint: "http://localhost:4566/", StorageBucket: "anexos"},
			want: "http://localhost:4566/anexos",
		},
		{
			name: "aws regional",
			cfg:  config.Config{StorageBucket: "anexos", AWSRegion: "sa-east-1"},
			want: "https://anexos.s3.sa-east-1.amazonaws.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(&tt.cfg))
		})
	}
}

func TestS3Storage_PublicURL(t *testing.T) {
	s := &S3Storage{baseURL: "http://localhost:4566/anexos"}
	assert.Equal(t, "http://localhost:4566/anexos/orcamentos/x.jpg", s.PublicURL("/orcamentos/x.jpg"))
}
