package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/booking/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
}

type bookings struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, tracer otel.Otel) Booking {
	return &bookings{gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, tracer)}
}

// NotDeleted narrows filter to bookings without a deleted_at stamp.
func NotDeleted(filter gDto.FilterGroup) gDto.FilterGroup {
	return gDto.All(filter, gDto.Where(model.TableName, model.FieldDeletedAt, gDto.FilterIsNull, nil))
}

func ByOfflineID(offlineID string) gDto.FilterGroup {
	return gDto.All(gDto.Where(model.TableName, model.FieldOfflineID, gDto.FilterOperatorEq, offlineID))
}

// CreatedWithinMonth matches every booking of the accommodation created between
// start and end inclusive, soft deleted rows included.
func CreatedWithinMonth(accommodationID string, start, end time.Time) gDto.FilterGroup {
	return gDto.All(
		gDto.Where(model.TableName, model.FieldAccommodationID, gDto.FilterOperatorEq, accommodationID),
		gDto.Where(model.TableName, model.FieldCreatedAt, gDto.FilterOperatorGreaterEq, start),
		gDto.Where(model.TableName, model.FieldCreatedAt, gDto.FilterOperatorLessEq, end),
	)
}

// ReferencesWithPrefix matches every booking whose reference starts with prefix,
// soft deleted rows included.
func ReferencesWithPrefix(prefix string) gDto.FilterGroup {
	return gDto.All(gDto.Where(model.TableName, model.FieldBookingReference, gDto.FilterOperatorPrefix, prefix))
}
