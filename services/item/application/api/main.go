package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/services/item/application/handlers"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
				r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
			})
		})
	})
}
