package router

import (
	_ "cowork/docs" // swagger spec registration
	"cowork/infras/metrics"
	"cowork/internal/handlers/booking"
	"cowork/internal/handlers/credit"
	"cowork/internal/handlers/room"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
	Credit  credit.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	metrics        metrics.Metrics
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Handle("/metrics", r.metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Credit.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, metrics metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		metrics:        metrics,
	}
}
