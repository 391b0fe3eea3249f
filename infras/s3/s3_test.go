package s3_test

import (
	"context"
	"strings"
	"testing"

	"dinedesk/config"
	"dinedesk/infras/otel/mocks"
	"dinedesk/infras/s3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsObjectKey(t *testing.T) {
	assert.True(t, s3.IsObjectKey("recordings/r1/c1.mp3"))
	assert.False(t, s3.IsObjectKey("https://cdn.example.com/c1.mp3"))
	assert.False(t, s3.IsObjectKey("http://cdn.example.com/c1.mp3"))
	assert.False(t, s3.IsObjectKey("  "))
}

func TestPresignGetObject(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "calls"
	cfg.External.S3.APIEndpoint = "https://storage.example.com"
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"
	cfg.External.S3.PresignMinutes = 5

	url, err := s3.New(cfg, mocks.NewOtel()).PresignGetObject(context.Background(), "/recordings/c1.mp3")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://storage.example.com/calls/recordings/c1.mp3?"))
	assert.Contains(t, url, "X-Amz-Expires=300")
}
