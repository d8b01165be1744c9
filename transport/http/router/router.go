package router

import (
	"resort/internal/handlers/accommodation"
	"resort/internal/handlers/amenity"
	"resort/internal/handlers/auth"
	"resort/internal/handlers/booking"
	"resort/internal/handlers/finance"
	"resort/internal/handlers/materialorder"
	"resort/internal/handlers/media"
	"resort/internal/handlers/packages"
	"resort/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Accommodation accommodation.Handler
	Package       packages.Handler
	Amenity       amenity.Handler
	Booking       booking.Handler
	MaterialOrder materialorder.Handler
	Finance       finance.Handler
	Media         media.Handler
	User          user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Accommodation.Router(routerGroup)
		r.DomainHandlers.Package.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.MaterialOrder.Router(routerGroup)
		r.DomainHandlers.Finance.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
