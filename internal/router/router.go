package router

import (
	"net/http"
	"strings"

	"storefront/internal/auth"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	favoriteHandler *handler.FavoriteHandler,
	orderHandler *handler.OrderHandler,
	seedHandler *handler.SeedHandler,
	resolver auth.Resolver,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/products" || r.URL.Path == "/api/products/"

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/products/featured":
			productHandler.Featured(w, r)
		case r.Method == http.MethodGet && collection:
			productHandler.List(w, r)
		case r.Method == http.MethodGet:
			productHandler.GetByID(w, r)
		case r.Method == http.MethodPost && collection:
			productHandler.Create(w, r)
		case r.Method == http.MethodPut && !collection:
			productHandler.Update(w, r)
		case r.Method == http.MethodDelete && !collection:
			productHandler.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/"

		switch {
		case r.Method == http.MethodGet && collection:
			cartHandler.List(w, r)
		case r.Method == http.MethodPost && collection:
			cartHandler.Add(w, r)
		case r.Method == http.MethodPatch && !collection:
			cartHandler.Update(w, r)
		case r.Method == http.MethodDelete && !collection:
			cartHandler.Remove(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Favorite handler function
	favoriteRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/favorites" || r.URL.Path == "/api/favorites/"

		switch {
		case r.Method == http.MethodGet && collection:
			favoriteHandler.List(w, r)
		case r.Method == http.MethodPost && collection:
			favoriteHandler.Add(w, r)
		case r.Method == http.MethodDelete && collection:
			// Second addressing mode: remove by productId query parameter.
			favoriteHandler.RemoveByProduct(w, r)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/favorites/"):
			favoriteHandler.RemoveByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/favorites", favoriteRouteHandler)
	mux.HandleFunc("/api/favorites/", favoriteRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			orderHandler.List(w, r)
		case http.MethodPost:
			orderHandler.Place(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	if seedHandler != nil {
		mux.HandleFunc("/api/seed", seedHandler.Seed)
	}

	// Apply middleware in order: Recovery -> Logging -> CORS -> SessionAuth
	var h http.Handler = mux
	h = middleware.SessionAuth(resolver, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
