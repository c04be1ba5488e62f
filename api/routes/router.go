package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/esonge/storefront-backend/api/controllers"
	"github.com/esonge/storefront-backend/api/middleware"
	authsvc "github.com/esonge/storefront-backend/internal/auth"
	cartsvc "github.com/esonge/storefront-backend/internal/cart"
	"github.com/esonge/storefront-backend/internal/catalog"
	filtersvc "github.com/esonge/storefront-backend/internal/filters"
	wishlistsvc "github.com/esonge/storefront-backend/internal/wishlist"
	"github.com/esonge/storefront-backend/pkg/config"
	"github.com/esonge/storefront-backend/pkg/logger"
	"github.com/esonge/storefront-backend/pkg/metrics"
	"github.com/esonge/storefront-backend/pkg/storage"
)

// RouterParams groups everything the HTTP surface depends on.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	Snapshots   storage.Snapshots
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Catalog  catalog.Service
	Cart     cartsvc.Service
	Wishlist wishlistsvc.Service
	Auth     authsvc.Service
	Filters  filtersvc.Service
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger, p.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.Snapshots))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(p.Catalog, p.Filters, p.Logger))
			r.Get("/categories", controllers.ProductCategories(p.Catalog, p.Logger))
			r.Get("/{productId}", controllers.ProductGet(p.Catalog, p.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(p.Cart, p.Logger))
			r.Delete("/", controllers.CartClear(p.Cart, p.Logger))
			r.Post("/items", controllers.CartAddItem(p.Cart, p.Catalog, p.Logger))
			r.Put("/items/{productId}", controllers.CartUpdateItem(p.Cart, p.Logger))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(p.Cart, p.Logger))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(p.Wishlist, p.Logger))
			r.Delete("/", controllers.WishlistClear(p.Wishlist, p.Logger))
			r.Post("/items", controllers.WishlistAddItem(p.Wishlist, p.Catalog, p.Logger))
			r.Post("/items/{productId}/toggle", controllers.WishlistToggleItem(p.Wishlist, p.Catalog, p.Logger))
			r.Delete("/items/{productId}", controllers.WishlistRemoveItem(p.Wishlist, p.Logger))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(p.Auth, p.Config.JWT, p.Logger))
			r.Post("/logout", controllers.AuthLogout(p.Auth, p.Logger))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(p.Config.JWT, p.Logger))

				r.Get("/me", controllers.AuthMe(p.Auth, p.Logger))
				r.Put("/profile", controllers.AuthUpdateProfile(p.Auth, p.Logger))

				r.Route("/addresses", func(r chi.Router) {
					r.Get("/", controllers.AddressList(p.Auth, p.Logger))
					r.Post("/", controllers.AddressAdd(p.Auth, p.Logger))
					r.Get("/default", controllers.AddressDefault(p.Auth, p.Logger))
					r.Put("/{addressId}", controllers.AddressUpdate(p.Auth, p.Logger))
					r.Delete("/{addressId}", controllers.AddressRemove(p.Auth, p.Logger))
					r.Post("/{addressId}/default", controllers.AddressSetDefault(p.Auth, p.Logger))
				})
			})
		})

		r.Route("/filters", func(r chi.Router) {
			r.Get("/", controllers.FiltersGet(p.Filters, p.Logger))
			r.Put("/", controllers.FiltersSet(p.Filters, p.Logger))
			r.Delete("/", controllers.FiltersClear(p.Filters, p.Logger))
			r.Patch("/{key}", controllers.FiltersSetKey(p.Filters, p.Logger))
			r.Put("/sort", controllers.FiltersSetSort(p.Filters, p.Logger))
			r.Put("/view-mode", controllers.FiltersSetViewMode(p.Filters, p.Logger))
			r.Put("/search", controllers.FiltersSetSearch(p.Filters, p.Logger))
			r.Put("/page", controllers.FiltersSetPage(p.Filters, p.Logger))
			r.Post("/reset", controllers.FiltersReset(p.Filters, p.Logger))
		})
	})

	return r
}
