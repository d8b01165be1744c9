package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"resort/config"
	"resort/infras/otel"
	"resort/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName    = "s3"
	otelAttrObject   = "s3.object"
	otelAttrBucket   = "s3.bucket"
	defaultRegion    = "auto"
	fallbackMimeType = "application/octet-stream"
)

// S3 stores catalog images in an S3 compatible bucket.
type S3 interface {
	UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	// GetObjectNameFromURL returns the object name under directory that url points
	// at, or an empty string when url was not served from this bucket.
	GetObjectNameFromURL(directory, url string) (objectName string)
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) S3 {
	storage := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(storage.AccessKeyID, storage.SecretAccessKey, "")),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load object storage configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if storage.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(storage.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		Client: client,
		Config: cfg,
		otel:   ot,
	}
}

func (svc *s3Impl) bucket(name string) string {
	if name == constant.Empty {
		return svc.Config.External.S3.BucketName
	}

	return name
}

func (svc *s3Impl) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, otelScopeName, otelScopeName+".UploadFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName = svc.bucket(bucketName)
	key := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObject: key,
		otelAttrBucket: bucketName,
	})

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)
	if contentType == constant.Empty {
		contentType = fallbackMimeType
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return constant.Empty, fmt.Errorf("failed to rewind upload: %w", err)
	}

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileHeader.Size),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Debug().Str("bucket", bucketName).Str("key", key).Int64("size", fileHeader.Size).Msg("object uploaded")

	return strings.TrimSuffix(svc.Config.External.S3.PublicDomain, "/") + "/" + key, nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, otelScopeName, otelScopeName+".DeleteFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName = svc.bucket(bucketName)
	key := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrObject: key,
		otelAttrBucket: bucketName,
	})

	if _, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (svc *s3Impl) GetObjectNameFromURL(directory, url string) string {
	storage := svc.Config.External.S3
	bases := []string{
		strings.TrimSuffix(storage.PublicDomain, "/"),
		strings.TrimSuffix(storage.APIEndpoint, "/") + "/" + storage.BucketName,
	}

	for _, base := range bases {
		if base == constant.Empty || strings.HasPrefix(base, "/") {
			continue
		}

		if name, ok := strings.CutPrefix(url, base+"/"+directory+"/"); ok && name != constant.Empty {
			return name
		}
	}

	return constant.Empty
}
