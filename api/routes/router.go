package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shortshop/shortshop-backend/api/controllers"
	"github.com/shortshop/shortshop-backend/api/middleware"
	cartsvc "github.com/shortshop/shortshop-backend/internal/cart"
	"github.com/shortshop/shortshop-backend/internal/catalog"
	reviewsvc "github.com/shortshop/shortshop-backend/internal/reviews"
	"github.com/shortshop/shortshop-backend/pkg/config"
	"github.com/shortshop/shortshop-backend/pkg/db"
	"github.com/shortshop/shortshop-backend/pkg/logger"
	"github.com/shortshop/shortshop-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	reviewService reviewsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/", controllers.Root(cfg))

	r.Route("/health", func(r chi.Router) {
		r.Get("/", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	r.Route("/product", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(catalogService, logg))
		r.Post("/", controllers.CreateProduct(catalogService, logg))

		r.Put("/variant/{id}", controllers.UpdateProductVariant(catalogService, logg))
		r.Delete("/variant/{id}", controllers.DeleteProductVariant(catalogService, logg))
		r.Delete("/recommendations/{rec_id}", controllers.DeleteRecommendation(catalogService, logg))

		r.Get("/{id}", controllers.GetProduct(catalogService, logg))
		r.Put("/{id}", controllers.UpdateProduct(catalogService, logg))
		r.Delete("/{id}", controllers.DeleteProduct(catalogService, logg))

		r.Post("/{id}/images", controllers.AddProductImages(catalogService, logg))
		r.Delete("/{id}/images/{image_id}", controllers.DeleteProductImage(catalogService, logg))

		r.Post("/{id}/variants", controllers.AddProductVariant(catalogService, logg))

		r.Get("/{id}/recommendations", controllers.ListRecommendations(catalogService, logg))
		r.Post("/{id}/recommendations/{rec_id}", controllers.AddRecommendation(catalogService, logg))
	})

	r.Route("/cart", func(r chi.Router) {
		r.Post("/", controllers.CreateCart(cartService, logg))
		r.Get("/{session_id}", controllers.GetCart(cartService, logg))
		r.Delete("/{session_id}", controllers.ClearCart(cartService, logg))

		r.Post("/{session_id}/items", controllers.AddCartItem(cartService, logg))
		r.Put("/{session_id}/items/{item_id}", controllers.UpdateCartItem(cartService, logg))
		r.Delete("/{session_id}/items/{item_id}", controllers.DeleteCartItem(cartService, logg))
	})

	r.Route("/review", func(r chi.Router) {
		r.Get("/", controllers.ListReviews(reviewService, logg))
		r.Post("/", controllers.CreateReview(reviewService, logg))
	})

	return r
}
