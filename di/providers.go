package di

import (
	"safari/config"
	"safari/infras/jwt"
	"safari/infras/kafka"
	"safari/infras/mail"
	"safari/infras/nats"
	"safari/infras/otel"
	"safari/infras/postgres"
	"safari/infras/redis"
	"safari/infras/s3"
	"safari/permissions"
	"safari/shared/cache"
	"safari/shared/event"
	"safari/transport/http/middleware"
	"safari/transport/http/router"

	"github.com/google/wire"

	activityRepository "safari/internal/domains/activity/repository"
	activityService "safari/internal/domains/activity/service"
	authService "safari/internal/domains/auth/service"
	availabilityRepository "safari/internal/domains/availability/repository"
	availabilityService "safari/internal/domains/availability/service"
	bookingRepository "safari/internal/domains/booking/repository"
	bookingService "safari/internal/domains/booking/service"
	checkInOutRepository "safari/internal/domains/checkinout/repository"
	checkInOutService "safari/internal/domains/checkinout/service"
	inquiryRepository "safari/internal/domains/inquiry/repository"
	inquiryService "safari/internal/domains/inquiry/service"
	instructorRepository "safari/internal/domains/instructor/repository"
	instructorService "safari/internal/domains/instructor/service"
	maintenanceRepository "safari/internal/domains/maintenance/repository"
	maintenanceService "safari/internal/domains/maintenance/service"
	quotationRepository "safari/internal/domains/quotation/repository"
	quotationService "safari/internal/domains/quotation/service"
	reservationRepository "safari/internal/domains/reservation/repository"
	reservationService "safari/internal/domains/reservation/service"
	roomRepository "safari/internal/domains/room/repository"
	roomService "safari/internal/domains/room/service"
	userRepository "safari/internal/domains/user/repository"
	userService "safari/internal/domains/user/service"

	activityHandler "safari/internal/handlers/activity"
	authHandler "safari/internal/handlers/auth"
	availabilityHandler "safari/internal/handlers/availability"
	bookingHandler "safari/internal/handlers/booking"
	checkInOutHandler "safari/internal/handlers/checkinout"
	inquiryHandler "safari/internal/handlers/inquiry"
	instructorHandler "safari/internal/handlers/instructor"
	maintenanceHandler "safari/internal/handlers/maintenance"
	quotationHandler "safari/internal/handlers/quotation"
	reservationHandler "safari/internal/handlers/reservation"
	roomHandler "safari/internal/handlers/room"
	userHandler "safari/internal/handlers/user"
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
	mail.New,
	kafka.New,
	nats.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var activityDomain = wire.NewSet(
	activityRepository.New,
	activityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var checkInOutDomain = wire.NewSet(
	checkInOutRepository.NewCheckIn,
	checkInOutRepository.NewCheckout,
	checkInOutService.New,
)

var instructorDomain = wire.NewSet(
	instructorRepository.NewActivityLevel,
	instructorRepository.NewRate,
	instructorRepository.NewAssignment,
	instructorService.New,
)

var quotationDomain = wire.NewSet(
	quotationRepository.New,
	quotationService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	availabilityDomain,
	bookingDomain,
	maintenanceDomain,
	activityDomain,
	reservationDomain,
	checkInOutDomain,
	instructorDomain,
	quotationDomain,
	inquiryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	maintenanceHandler.New,
	activityHandler.New,
	reservationHandler.New,
	checkInOutHandler.New,
	instructorHandler.New,
	quotationHandler.New,
	inquiryHandler.New,
	router.New,
)
