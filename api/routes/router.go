package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dsanchezmx/shelfstock-backend/api/controllers"
	"github.com/dsanchezmx/shelfstock-backend/api/middleware"
	"github.com/dsanchezmx/shelfstock-backend/internal/abcanalysis"
	"github.com/dsanchezmx/shelfstock-backend/internal/auth"
	"github.com/dsanchezmx/shelfstock-backend/internal/inventory"
	"github.com/dsanchezmx/shelfstock-backend/internal/products"
	"github.com/dsanchezmx/shelfstock-backend/internal/replenishment"
	"github.com/dsanchezmx/shelfstock-backend/internal/sales"
	"github.com/dsanchezmx/shelfstock-backend/internal/stores"
	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
	"github.com/dsanchezmx/shelfstock-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	authService auth.Service,
	storeService stores.Service,
	productService products.Service,
	inventoryService inventory.Service,
	salesService sales.Service,
	replenishmentService replenishment.Service,
	abcService abcanalysis.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	var cachePinger redis.Pinger
	if redisClient != nil {
		cachePinger = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cachePinger, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.LoginRateLimit(cfg.AuthRateLimit, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(productService, logg))
			r.Get("/{productId}", controllers.ProductGet(productService, logg))
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", controllers.StoreList(storeService, logg))
			r.Get("/{storeId}", controllers.StoreGet(storeService, logg))
			r.Get("/{storeId}/inventory", controllers.StoreInventory(inventoryService, logg))
			r.Get("/{storeId}/sales", controllers.StoreSales(salesService, logg))
		})

		r.Put("/inventory/{inventoryId}", controllers.InventoryUpdateStock(inventoryService, logg))
		r.Post("/sales", controllers.SaleRecord(salesService, logg))

		r.Route("/algorithms", func(r chi.Router) {
			r.Route("/reorder-recommendations", func(r chi.Router) {
				r.Post("/{storeId}", controllers.ReorderGenerate(replenishmentService, logg))
				r.Get("/{storeId}/pending", controllers.ReorderPending(replenishmentService, logg))
				r.Put("/{recommendationId}/process", controllers.ReorderProcess(replenishmentService, logg))
			})
			r.Route("/abc-analysis", func(r chi.Router) {
				r.Get("/{storeId}", controllers.AbcClassify(abcService, logg))
				r.Get("/{storeId}/by-category", controllers.AbcByCategory(abcService, logg))
				r.Get("/{storeId}/summary", controllers.AbcSummary(abcService, logg))
			})
		})
	})

	return r
}
