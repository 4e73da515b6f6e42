package router

import (
	"resort/internal/handlers/activity"
	"resort/internal/handlers/activitypackage"
	"resort/internal/handlers/amenity"
	"resort/internal/handlers/auth"
	"resort/internal/handlers/blog"
	"resort/internal/handlers/booking"
	"resort/internal/handlers/cache"
	"resort/internal/handlers/hotel"
	"resort/internal/handlers/itinerary"
	"resort/internal/handlers/media"
	"resort/internal/handlers/policy"
	"resort/internal/handlers/room"
	"resort/internal/handlers/roomplan"
	"resort/internal/handlers/safetyfeature"
	"resort/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth            auth.Handler
	User            user.Handler
	Hotel           hotel.Handler
	Room            room.Handler
	RoomPlan        roomplan.Handler
	Activity        activity.Handler
	ActivityPackage activitypackage.Handler
	Itinerary       itinerary.Handler
	Policy          policy.Handler
	Amenity         amenity.Handler
	SafetyFeature   safetyfeature.Handler
	Booking         booking.Handler
	Blog            blog.Handler
	Media           media.Handler
	Cache           cache.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.RoomPlan.Router(routerGroup)
		r.DomainHandlers.Activity.Router(routerGroup)
		r.DomainHandlers.ActivityPackage.Router(routerGroup)
		r.DomainHandlers.Itinerary.Router(routerGroup)
		r.DomainHandlers.Policy.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.SafetyFeature.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Blog.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
		r.DomainHandlers.Cache.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
