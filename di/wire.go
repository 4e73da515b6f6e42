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
	bookingConsumer "resort/internal/consumers/booking"
	"resort/permissions"
	"resort/shared/cache"
	"resort/transport/http"
	"resort/transport/http/middleware"
	"resort/transport/http/router"

	activityRepository "resort/internal/domains/activity/repository"
	activityService "resort/internal/domains/activity/service"
	packageRepository "resort/internal/domains/activitypackage/repository"
	packageService "resort/internal/domains/activitypackage/service"
	amenityRepository "resort/internal/domains/amenity/repository"
	amenityService "resort/internal/domains/amenity/service"
	authService "resort/internal/domains/auth/service"
	blogRepository "resort/internal/domains/blog/repository"
	blogService "resort/internal/domains/blog/service"
	bookingRepository "resort/internal/domains/booking/repository"
	bookingService "resort/internal/domains/booking/service"
	hotelRepository "resort/internal/domains/hotel/repository"
	hotelService "resort/internal/domains/hotel/service"
	itineraryRepository "resort/internal/domains/itinerary/repository"
	itineraryService "resort/internal/domains/itinerary/service"
	mediaService "resort/internal/domains/media/service"
	policyRepository "resort/internal/domains/policy/repository"
	policyService "resort/internal/domains/policy/service"
	roomRepository "resort/internal/domains/room/repository"
	roomService "resort/internal/domains/room/service"
	roomPlanRepository "resort/internal/domains/roomplan/repository"
	roomPlanService "resort/internal/domains/roomplan/service"
	safetyRepository "resort/internal/domains/safetyfeature/repository"
	safetyService "resort/internal/domains/safetyfeature/service"
	userRepository "resort/internal/domains/user/repository"
	userService "resort/internal/domains/user/service"

	activityHandler "resort/internal/handlers/activity"
	packageHandler "resort/internal/handlers/activitypackage"
	amenityHandler "resort/internal/handlers/amenity"
	authHandler "resort/internal/handlers/auth"
	blogHandler "resort/internal/handlers/blog"
	bookingHandler "resort/internal/handlers/booking"
	cacheHandler "resort/internal/handlers/cache"
	hotelHandler "resort/internal/handlers/hotel"
	itineraryHandler "resort/internal/handlers/itinerary"
	mediaHandler "resort/internal/handlers/media"
	policyHandler "resort/internal/handlers/policy"
	roomHandler "resort/internal/handlers/room"
	roomPlanHandler "resort/internal/handlers/roomplan"
	safetyHandler "resort/internal/handlers/safetyfeature"
	userHandler "resort/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	hotelRepository.New,
	roomRepository.New,
	roomPlanRepository.New,
	activityRepository.New,
	packageRepository.New,
	itineraryRepository.New,
	policyRepository.New,
	amenityRepository.New,
	amenityRepository.NewHotelAmenity,
	safetyRepository.New,
	safetyRepository.NewHotelSafetyFeature,
	bookingRepository.New,
	blogRepository.New,
)

var domains = wire.NewSet(
	mediaService.New,
	userService.New,
	authService.New,
	policyService.New,
	amenityService.New,
	safetyService.New,
	roomService.New,
	roomPlanService.New,
	hotelService.New,
	packageService.New,
	itineraryService.New,
	activityService.New,
	bookingService.New,
	blogService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	roomPlanHandler.New,
	activityHandler.New,
	packageHandler.New,
	itineraryHandler.New,
	policyHandler.New,
	amenityHandler.New,
	safetyHandler.New,
	bookingHandler.New,
	blogHandler.New,
	mediaHandler.New,
	cacheHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		provideClosers,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *bookingConsumer.Consumer {
	wire.Build(
		config.Get,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		bookingConsumer.New,
	)

	return &bookingConsumer.Consumer{}
}
