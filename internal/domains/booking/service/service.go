package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel"
	accommodationModel "resort/internal/domains/accommodation/model"
	accommodationRepo "resort/internal/domains/accommodation/repository"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/repository"
	packageModel "resort/internal/domains/packages/model"
	packageRepo "resort/internal/domains/packages/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gRepo "resort/shared/repository"
	"resort/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	// Create stores a new booking. When the request carries an offline id that is
	// already stored, the existing booking is returned and created is false.
	Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, created bool, err error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo              repository.Booking
	accommodationRepo accommodationRepo.Accommodation
	packageRepo       packageRepo.Package
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
	publisher         kafka.Publisher
}

func New(
	repo repository.Booking,
	accommodationRepo accommodationRepo.Accommodation,
	packageRepo packageRepo.Package,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Publisher,
) Booking {
	return &serviceImpl{
		repo:              repo,
		accommodationRepo: accommodationRepo,
		packageRepo:       packageRepo,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
		publisher:         publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, false, failure.BadRequest(err) // nolint:wrapcheck
	}

	if req.OfflineID != nil {
		existing, err := s.findByOfflineID(ctx, *req.OfflineID)
		if err != nil {
			return res, false, err
		}

		if existing.ID != constant.Empty {
			log.Info().Str("offline_id", *req.OfflineID).Str("reference", existing.BookingReference).Msg("offline booking already stored")

			res.FromModel(existing)

			return res, false, nil
		}
	}

	accommodation, err := s.accommodationRepo.Get(ctx, accommodationRepo.Bookable(shared.FilterByID(req.AccommodationID, accommodationModel.FieldID, accommodationModel.TableName)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return res, false, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty {
		return res, false, failure.BadRequestFromString("accommodation does not exist or is inactive") // nolint:wrapcheck
	}

	pkg, err := s.bookedPackage(ctx, &req)
	if err != nil {
		return res, false, err
	}

	computed := accommodation.PricePerNight*float64(model.Nights(checkIn, checkOut)) + pkg.Price
	total, original := dto.Pricing(computed, req.TotalAmount)

	user := shared.Actor(ctx)

	booking := req.ToModel(user, constant.Empty, checkIn, checkOut, total, original)

	existing, err := s.insertWithReference(ctx, &booking, accommodation.Type, pkg.Code)
	if err != nil {
		return res, false, err
	}

	if existing != nil {
		res.FromModel(*existing)

		return res, false, nil
	}

	booking.AccommodationName = accommodation.Name
	booking.AccommodationType = accommodation.Type

	if pkg.ID != constant.Empty {
		booking.PackageName = &pkg.Name
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.publishCreated(c, booking)
	}()

	return res, true, nil
}

// insertWithReference inserts booking under the next monthly reference. When the
// reference is already taken, by a concurrent insert or by another accommodation
// sharing the same codes, it moves past the highest sequence stored under the prefix.
// A lost race on the offline id returns the booking stored by the winner.
func (s *serviceImpl) insertWithReference(ctx context.Context, booking *model.Booking, accommodationType, packageCode string) (*model.Booking, error) {
	attempts := max(s.cfg.Booking.ReferenceMaxAttempts, 1)

	parts, err := s.firstReference(ctx, booking.AccommodationID, accommodationType, packageCode)
	if err != nil {
		return nil, err
	}

	for attempt := range attempts {
		booking.BookingReference = parts.String()

		err = s.repo.Insert(ctx, *booking)
		if err == nil {
			return nil, nil
		}

		switch {
		case gRepo.IsUniqueViolation(err, model.ConstraintReferenceUnique):
			last, err := s.lastSequence(ctx, parts.Prefix())
			if err != nil {
				return nil, err
			}

			log.Warn().Str("reference", booking.BookingReference).Int("attempt", attempt+1).Int("last", last).Msg("booking reference taken, retrying after the last stored sequence")

			parts.Sequence = max(parts.Sequence, last) + 1
		case booking.OfflineID != nil && gRepo.IsUniqueViolation(err, model.ConstraintOfflineIDUnique):
			existing, findErr := s.findByOfflineID(ctx, *booking.OfflineID)
			if findErr != nil {
				return nil, findErr
			}

			return &existing, nil
		default:
			log.Error().Err(err).Msg("failed to create booking")

			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
	}

	log.Error().Int("attempts", attempts).Str("accommodation_id", booking.AccommodationID).Msg("could not allocate a booking reference")

	return nil, failure.Conflict("could not allocate a booking reference, please retry") // nolint:wrapcheck
}

// bookedPackage resolves the package of req. A package that no longer exists is
// dropped from the booking and a soft deleted one is kept without price or code, so
// a booking queued before the package went away is still accepted.
func (s *serviceImpl) bookedPackage(ctx context.Context, req *dto.CreateBookingRequest) (packageModel.Package, error) {
	if req.PackageID == nil {
		return packageModel.Package{}, nil
	}

	pkg, err := s.packageRepo.Get(ctx, shared.FilterByID(*req.PackageID, packageModel.FieldID, packageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get package")

		return pkg, fmt.Errorf("failed to get package: %w", err)
	}

	switch {
	case pkg.ID == constant.Empty:
		log.Warn().Str("package_id", *req.PackageID).Msg("booked package not found, booking without package")

		req.PackageID = nil
	case pkg.DeletedAt != nil:
		log.Warn().Str("package_id", pkg.ID).Msg("booked package was deleted, booking at the standard rate")

		return packageModel.Package{ID: pkg.ID, Name: pkg.Name}, nil
	}

	return pkg, nil
}

func (s *serviceImpl) findByOfflineID(ctx context.Context, offlineID string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, repository.ByOfflineID(offlineID))
	if err != nil {
		log.Error().Err(err).Str("offline_id", offlineID).Msg("failed to look up booking by offline id")

		return booking, fmt.Errorf("failed to look up booking by offline id: %w", err)
	}

	return booking, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking model.Booking) {
	var event dto.CreatedEvent
	event.FromModel(booking)

	message := kafka.Message{Key: booking.AccommodationID, Value: event}

	if err := s.publisher.Publish(ctx, s.cfg.Kafka.Topics.BookingCreated, message); err != nil {
		log.Error().Err(err).Str("reference", booking.BookingReference).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = repository.NotDeleted(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if !shared.CacheBypassed(ctx) {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

			return res, nil
		}
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.count(ctx, req, repository.NotDeleted(filter))
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if !shared.CacheBypassed(ctx) {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			return res, nil
		}
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if !shared.CacheBypassed(ctx) {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

			return res, nil
		}
	}

	booking, err := s.repo.Get(ctx, repository.NotDeleted(shared.FilterByID(id, model.FieldID, model.TableName)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update applies an admin edit. A total amount override keeps the amount it
// replaces as original_amount, and an override matching it clears the audit.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := shared.UserID(ctx)
	filter := repository.NotDeleted(shared.FilterByID(id, model.FieldID, model.TableName))

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.CheckInDate != constant.Empty || req.CheckOutDate != constant.Empty {
		checkIn := current.CheckInDate.Format(constant.DateOnlyFormat)
		if req.CheckInDate != constant.Empty {
			checkIn = req.CheckInDate
		}

		checkOut := current.CheckOutDate.Format(constant.DateOnlyFormat)
		if req.CheckOutDate != constant.Empty {
			checkOut = req.CheckOutDate
		}

		in, out, err := dto.ParseStay(checkIn, checkOut)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckInDate] = in
		updatedFields[model.FieldCheckOutDate] = out
	}

	if req.TotalAmount != nil {
		base := current.TotalAmount
		if current.OriginalAmount != nil {
			base = *current.OriginalAmount
		}

		total, original := dto.Pricing(base, req.TotalAmount)

		updatedFields[model.FieldTotalAmount] = total
		updatedFields[model.FieldOriginalAmount] = original
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete cancels the booking and hides it from listings. The row stays so the
// monthly reference sequence never reuses its number.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.NotDeleted(shared.FilterByID(id, model.FieldID, model.TableName))

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user := shared.UserID(ctx)
	now := timezone.Now()

	softDelete := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		model.FieldDeletedAt:     now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, softDelete, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
