package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resort/config"
	"resort/infras/otel"
	"resort/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
)

// S3 stores public images in the configured bucket. Objects are addressed
// by key and served from the public domain.
type S3 interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (url string, err error)
	Delete(ctx context.Context, keys ...string) error
	KeyFromURL(url string) string
}

type s3Impl struct {
	client *s3.Client
	bucket string
	public string
	api    string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	s3Cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, "")),
		awsConfig.WithRegion("auto"),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		}
		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		bucket: s3Cfg.BucketName,
		public: strings.TrimSuffix(s3Cfg.PublicDomain, "/"),
		api:    strings.TrimSuffix(s3Cfg.APIEndpoint, "/"),
		otel:   otel,
	}
}

func (svc *s3Impl) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"bucket": svc.bucket,
		"key":    key,
		"size":   size,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to put %s: %w", key, err)
	}

	return svc.public + "/" + key, nil
}

// Delete removes keys in one batch. Keys that fail are reported together.
func (svc *s3Impl) Delete(ctx context.Context, keys ...string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(keys) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, len(keys))
	for i, key := range keys {
		objects[i] = types.ObjectIdentifier{Key: aws.String(key)}
	}

	scope.SetAttributes(map[string]any{"bucket": svc.bucket, "keys": keys})

	out, err := svc.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(svc.bucket),
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to delete %d objects: %w", len(keys), err)
	}

	if len(out.Errors) > 0 {
		failed := make([]string, len(out.Errors))
		for i, e := range out.Errors {
			failed[i] = aws.ToString(e.Key) + ": " + aws.ToString(e.Message)
		}

		return fmt.Errorf("failed to delete %d of %d objects: %s", len(failed), len(keys), strings.Join(failed, "; "))
	}

	return nil
}

// KeyFromURL returns the object key behind a URL produced by Put, or the
// path-style API URL of the bucket. Foreign URLs give "".
func (svc *s3Impl) KeyFromURL(url string) string {
	var prefixes []string
	if svc.public != constant.Empty {
		prefixes = append(prefixes, svc.public+"/")
	}
	if svc.api != constant.Empty {
		prefixes = append(prefixes, svc.api+"/"+svc.bucket+"/")
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
