package router

import (
	"github.com/go-chi/chi/v5"

	"hms/internal/handlers/auth"
	"hms/internal/handlers/booking"
	"hms/internal/handlers/guest"
	"hms/internal/handlers/payment"
	"hms/internal/handlers/report"
	"hms/internal/handlers/room"
	"hms/internal/handlers/user"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Payment payment.Handler
	User    user.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
