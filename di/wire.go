//go:build wireinject
// +build wireinject

package di

import (
	"seatsafe/config"
	"seatsafe/infras/jwt"
	"seatsafe/infras/kafka"
	"seatsafe/infras/otel"
	"seatsafe/infras/postgres"
	"seatsafe/infras/redis"
	"seatsafe/permissions"
	"seatsafe/shared/cache"
	"seatsafe/transport/http"
	"seatsafe/transport/http/middleware"
	"seatsafe/transport/http/router"

	auditlogRepository "seatsafe/internal/domains/auditlog/repository"
	auditlogService "seatsafe/internal/domains/auditlog/service"
	bookingRepository "seatsafe/internal/domains/booking/repository"
	bookingService "seatsafe/internal/domains/booking/service"
	catalogRepository "seatsafe/internal/domains/catalog/repository"
	"seatsafe/internal/domains/notification"
	organizationRepository "seatsafe/internal/domains/organization/repository"
	payoutRepository "seatsafe/internal/domains/payout/repository"
	payoutService "seatsafe/internal/domains/payout/service"
	bookingHandler "seatsafe/internal/handlers/booking"
	payoutHandler "seatsafe/internal/handlers/payout"

	"github.com/google/wire"
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
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	catalogRepository.New,
	organizationRepository.New,
	bookingService.New,
)

var auditlogDomain = wire.NewSet(
	auditlogRepository.New,
	auditlogService.New,
)

var payoutDomain = wire.NewSet(
	payoutRepository.New,
	payoutService.New,
)

var notifications = wire.NewSet(
	notification.NewKafkaSink,
)

var domains = wire.NewSet(
	bookingDomain,
	auditlogDomain,
	payoutDomain,
	notifications,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	payoutHandler.New,
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
