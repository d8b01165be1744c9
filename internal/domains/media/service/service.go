package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/s3"
	"resort/internal/domains/media/model/dto"
	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrNothingUploaded = errors.New("failed to upload files")

type Media interface {
	// Upload stores every image it can and returns their public URLs. It fails only
	// when no file could be stored.
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
	Delete(ctx context.Context, req dto.DeleteRequest) error
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) Media {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := s.cfg.External.S3.BucketName
	res.URLs = make([]string, 0, len(req.Files))

	for _, header := range req.Files {
		file, err := header.Open()
		if err != nil {
			log.Error().Err(err).Str("file", header.Filename).Msg("failed to open uploaded file")

			continue
		}

		objectName := uuid.NewString() + filepath.Ext(header.Filename)

		url, err := s.s3.UploadFile(ctx, bucketName, dto.Directory, file, header, objectName)

		file.Close()

		if err != nil {
			log.Error().Err(err).Str("file", header.Filename).Msg("failed to upload file to S3")

			continue
		}

		res.URLs = append(res.URLs, url)
	}

	if len(res.URLs) == 0 {
		return res, ErrNothingUploaded
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, url := range req.URLs {
		objectName := s.s3.GetObjectNameFromURL(dto.Directory, url)
		if objectName == constant.Empty {
			return failure.BadRequestFromString("url does not belong to the media bucket: " + url) // nolint:wrapcheck
		}

		if err := s.s3.DeleteFile(ctx, bucketName, dto.Directory, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("failed to delete %d files: %w", len(deleteErrors), errors.Join(deleteErrors...))
	}

	return nil
}
