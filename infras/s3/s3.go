package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dinedesk/config"
	"dinedesk/infras/otel"
	"dinedesk/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

// S3 hands out time-limited links to call recordings kept in object storage.
type S3 interface {
	PresignGetObject(ctx context.Context, objectKey string) (url string, err error)
}

type s3Impl struct {
	presigner *s3.PresignClient
	bucket    string
	expires   time.Duration
	otel      otel.Otel
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	region := config.External.S3.Region
	if region == "" {
		region = defaultRegion
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = region
	})

	expires := time.Duration(config.External.S3.PresignMinutes) * time.Minute
	if expires <= 0 {
		expires = 15 * time.Minute
	}

	return &s3Impl{
		presigner: s3.NewPresignClient(client),
		bucket:    config.External.S3.BucketName,
		expires:   expires,
		otel:      otel,
	}
}

func (svc *s3Impl) PresignGetObject(ctx context.Context, objectKey string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PresignGetObject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	req, err := svc.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(strings.TrimLeft(objectKey, "/")),
	}, s3.WithPresignExpires(svc.expires))
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to presign object")

		return constant.Empty, fmt.Errorf("failed to presign object: %w", err)
	}

	return req.URL, nil
}

// IsObjectKey reports whether ref points into the bucket rather than at a public URL.
func IsObjectKey(ref string) bool {
	ref = strings.TrimSpace(ref)

	return ref != "" && !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://")
}
