package router

import (
	"safari/internal/handlers/activity"
	"safari/internal/handlers/auth"
	"safari/internal/handlers/availability"
	"safari/internal/handlers/booking"
	"safari/internal/handlers/checkinout"
	"safari/internal/handlers/inquiry"
	"safari/internal/handlers/instructor"
	"safari/internal/handlers/maintenance"
	"safari/internal/handlers/quotation"
	"safari/internal/handlers/reservation"
	"safari/internal/handlers/room"
	"safari/internal/handlers/user"
	"safari/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Maintenance  maintenance.Handler
	Activity     activity.Handler
	Reservation  reservation.Handler
	CheckInOut   checkinout.Handler
	Instructor   instructor.Handler
	Quotation    quotation.Handler
	Inquiry      inquiry.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	authRole       middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1 behind API key, JWT and role checks.
// Middlewares are attached through a group so route lookups inside them see the root tree.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(group chi.Router) {
		group.Use(r.authRole.APIKey, r.authRole.Auth, r.authRole.RBAC)

		group.Route("/v1", func(routerGroup chi.Router) {
			r.DomainHandlers.Auth.Router(routerGroup)
			r.DomainHandlers.User.Router(routerGroup)
			r.DomainHandlers.Room.Router(routerGroup)
			r.DomainHandlers.Availability.Router(routerGroup)
			r.DomainHandlers.Booking.Router(routerGroup)
			r.DomainHandlers.Maintenance.Router(routerGroup)
			r.DomainHandlers.Activity.Router(routerGroup)
			r.DomainHandlers.Reservation.Router(routerGroup)
			r.DomainHandlers.CheckInOut.Router(routerGroup)
			r.DomainHandlers.Instructor.Router(routerGroup)
			r.DomainHandlers.Quotation.Router(routerGroup)
			r.DomainHandlers.Inquiry.Router(routerGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		authRole:       authRole,
	}
}
