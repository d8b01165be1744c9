//go:build wireinject
// +build wireinject

package di

import (
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/infras/redis"
	"resort/infras/s3"
	"resort/permissions"
	"resort/shared/cache"
	"resort/transport/http"
	"resort/transport/http/middleware"
	"resort/transport/http/router"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	accommodationRepository "resort/internal/domains/accommodation/repository"
	accommodationService "resort/internal/domains/accommodation/service"
	amenityRepository "resort/internal/domains/amenity/repository"
	amenityService "resort/internal/domains/amenity/service"
	authService "resort/internal/domains/auth/service"
	bookingRepository "resort/internal/domains/booking/repository"
	bookingService "resort/internal/domains/booking/service"
	financeRepository "resort/internal/domains/finance/repository"
	financeService "resort/internal/domains/finance/service"
	materialOrderRepository "resort/internal/domains/materialorder/repository"
	materialOrderService "resort/internal/domains/materialorder/service"
	mediaService "resort/internal/domains/media/service"
	packageRepository "resort/internal/domains/packages/repository"
	packageService "resort/internal/domains/packages/service"
	userRepository "resort/internal/domains/user/repository"
	userService "resort/internal/domains/user/service"
	accommodationHandler "resort/internal/handlers/accommodation"
	amenityHandler "resort/internal/handlers/amenity"
	authHandler "resort/internal/handlers/auth"
	bookingHandler "resort/internal/handlers/booking"
	financeHandler "resort/internal/handlers/finance"
	materialOrderHandler "resort/internal/handlers/materialorder"
	mediaHandler "resort/internal/handlers/media"
	packageHandler "resort/internal/handlers/packages"
	userHandler "resort/internal/handlers/user"

	"resort/internal/offline/agent"
	"resort/internal/offline/client"
	"resort/internal/offline/connectivity"
	"resort/internal/offline/queue"
	"resort/internal/offline/refcache"
	"resort/internal/offline/submitter"
	"resort/internal/offline/syncer"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	provideHTTPMetrics,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var accommodationDomain = wire.NewSet(
	accommodationRepository.New,
	accommodationService.New,
)

var packageDomain = wire.NewSet(
	packageRepository.New,
	packageService.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var materialOrderDomain = wire.NewSet(
	materialOrderRepository.New,
	materialOrderService.New,
)

var financeDomain = wire.NewSet(
	financeRepository.NewIncome,
	financeRepository.NewExpense,
	financeService.New,
)

var mediaDomain = wire.NewSet(
	mediaService.New,
)

var domains = wire.NewSet(
	authDomain,
	accommodationDomain,
	packageDomain,
	amenityDomain,
	bookingDomain,
	materialOrderDomain,
	financeDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	accommodationHandler.New,
	packageHandler.New,
	amenityHandler.New,
	bookingHandler.New,
	materialOrderHandler.New,
	financeHandler.New,
	mediaHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

var offlineStorage = wire.NewSet(
	provideStore,
	provideClock,
	provideRandom,
	queue.New,
	syncer.NewRegistrations,
	wire.Bind(new(submitter.Registrar), new(syncer.Registrations)),
)

var offlineNetwork = wire.NewSet(
	client.New,
	provideNotifier,
	wire.Bind(new(syncer.Connectivity), new(*connectivity.Notifier)),
	wire.Bind(new(submitter.Connectivity), new(*connectivity.Notifier)),
)

var offlineSync = wire.NewSet(
	prometheus.NewRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	syncer.NewMetrics,
	syncer.NewCoordinator,
	provideWorker,
)

func InitializeAgent() (*agent.Agent, func(), error) {
	wire.Build(
		wire.Struct(new(agent.Agent), "*"),
		config.Get,
		offlineStorage,
		offlineNetwork,
		offlineSync,
		submitter.New,
		refcache.New,
	)

	return nil, nil, nil
}
