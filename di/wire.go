//go:build wireinject
// +build wireinject

package di

import (
	"cowork/config"
	"cowork/infras/jwt"
	"cowork/infras/kafka"
	"cowork/infras/metrics"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/infras/redis"
	"cowork/infras/s3"
	"cowork/permissions"
	"cowork/shared/cache"
	"cowork/shared/timezone"
	"cowork/transport/http"
	"cowork/transport/http/middleware"
	"cowork/transport/http/router"

	billingService "cowork/internal/domains/billing/service"
	bookingRepository "cowork/internal/domains/booking/repository"
	bookingService "cowork/internal/domains/booking/service"
	ledgerRepository "cowork/internal/domains/ledger/repository"
	ledgerService "cowork/internal/domains/ledger/service"
	memberRepository "cowork/internal/domains/member/repository"
	memberService "cowork/internal/domains/member/service"
	organizationRepository "cowork/internal/domains/organization/repository"
	roomRepository "cowork/internal/domains/room/repository"
	roomService "cowork/internal/domains/room/service"
	bookingHandler "cowork/internal/handlers/booking"
	creditHandler "cowork/internal/handlers/credit"
	roomHandler "cowork/internal/handlers/room"

	"github.com/google/wire"
	goRedis "github.com/redis/go-redis/v9"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var memberDomain = wire.NewSet(
	memberRepository.New,
	memberService.New,
	organizationRepository.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.New,
	ledgerService.New,
)

var bookingDomain = wire.NewSet(
	billingService.New,
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	memberDomain,
	ledgerDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	creditHandler.New,
	router.New,
)

// shutdownHooks lists what the server releases on exit: pending events first,
// then the stores they may still reference.
func shutdownHooks(events kafka.Client, client *goRedis.Client, db *postgres.Connection) http.Closers {
	return http.Closers{events, client, db}
}

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		shutdownHooks,
		http.New,
	)

	return &http.HTTP{}
}
