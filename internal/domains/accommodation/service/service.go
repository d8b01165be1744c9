package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/s3"
	"resort/internal/domains/accommodation/model"
	"resort/internal/domains/accommodation/model/dto"
	"resort/internal/domains/accommodation/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAccommodation    = "accommodation:get"
	cacheGetAllAccommodation = "accommodation:gets"
	cacheCountAccommodation  = "accommodation:count"
)

type Accommodation interface {
	Create(ctx context.Context, req dto.CreateAccommodationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAccommodationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AccommodationResponse, error)
	Update(ctx context.Context, req dto.UpdateAccommodationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Accommodation
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Accommodation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Accommodation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAccommodationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserID(ctx)

	imageURL, objectName, err := s.uploadImage(ctx, req.Image, req.ImageFile)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		log.Error().Err(err).Msg("failed to create accommodation")

		s.removeImage(ctx, objectName)

		return fmt.Errorf("failed to create accommodation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAccommodation)
		shared.InvalidateCaches(c, s.cache, cacheCountAccommodation)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAccommodationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAccommodation, req, filter)

	if !shared.CacheBypassed(ctx) {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodations")

			return res, nil
		}
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count accommodations")

		return res, fmt.Errorf("failed to count accommodations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodations")

		return res, fmt.Errorf("failed to get accommodations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAccommodation, req, filter)

	if !shared.CacheBypassed(ctx) {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			return res, nil
		}
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count accommodations")

		return res, fmt.Errorf("failed to count accommodations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAccommodation, id)

	if !shared.CacheBypassed(ctx) {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodation")

			return res, nil
		}
	}

	accommodation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return res, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty {
		return res, failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	res.FromModel(accommodation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAccommodationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.UserID(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return fmt.Errorf("failed to get accommodation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	imageURL, objectName, err := s.uploadImage(ctx, req.Image, req.ImageFile)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImageURL] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update accommodation")

		s.removeImage(ctx, objectName)

		return fmt.Errorf("failed to update accommodation: %w", err)
	}

	if imageURL != constant.Empty && current.ImageURL != constant.Empty {
		s.removeImage(ctx, s.s3.GetObjectNameFromURL(model.EntityName, current.ImageURL))
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if accommodation exists")

		return fmt.Errorf("failed to check if accommodation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	user := shared.UserID(ctx)

	// bookings keep referencing the row, so it is only deactivated
	deactivate := map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, deactivate, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate accommodation")

		return fmt.Errorf("failed to deactivate accommodation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, header *multipart.FileHeader, file multipart.File) (url, objectName string, err error) {
	if header == nil {
		return constant.Empty, constant.Empty, nil
	}

	objectName = uuid.NewString() + filepath.Ext(header.Filename)

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, header, objectName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload accommodation image")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, objectName, nil
}

func (s *serviceImpl) removeImage(ctx context.Context, objectName string) {
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to remove accommodation image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAccommodation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete accommodation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAccommodation)
		shared.InvalidateCaches(c, s.cache, cacheCountAccommodation)
	}()
}
