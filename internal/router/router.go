package router

import (
	"net/http"

	"github.com/rs/zerolog"

	"restaurant-api/internal/auth"
	"restaurant-api/internal/handler"
	"restaurant-api/internal/middleware"
)

// New creates a new HTTP router with all routes and middleware configured.
// Only the order-listing route runs behind the token middleware; every
// other route is open, matching the source access-control contract.
func New(
	authHandler *handler.AuthHandler,
	foodHandler *handler.FoodHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
	tokens *auth.TokenManager,
	corsOrigin string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Root banner; the "/" pattern also catches unknown paths.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte("Restaurant Management Server is running."))
	})

	// Session routes
	mux.HandleFunc("/jwt", authHandler.IssueToken)
	mux.HandleFunc("/logout", authHandler.Logout)

	// Order listing is the one token-gated route.
	listOrders := middleware.VerifyToken(tokens, logger)(http.HandlerFunc(orderHandler.List))

	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" && r.URL.Path != "/orders/" {
			orderHandler.Delete(w, r)
			return
		}
		switch r.Method {
		case http.MethodPost:
			orderHandler.Place(w, r)
		case http.MethodGet:
			listOrders.ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/orders", orderRouteHandler)
	mux.HandleFunc("/orders/", orderRouteHandler)

	mux.HandleFunc("/top-selling-items", orderHandler.TopSelling)

	foodRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/foods" && r.URL.Path != "/foods/" {
			switch r.Method {
			case http.MethodGet:
				foodHandler.Get(w, r)
			case http.MethodPut:
				foodHandler.Replace(w, r)
			case http.MethodPatch:
				foodHandler.Patch(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		switch r.Method {
		case http.MethodPost:
			foodHandler.Create(w, r)
		case http.MethodGet:
			foodHandler.List(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register food routes (both with and without trailing slash)
	mux.HandleFunc("/foods", foodRouteHandler)
	mux.HandleFunc("/foods/", foodRouteHandler)

	mux.HandleFunc("/allfoods", foodHandler.ListAll)

	userRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			userHandler.Create(w, r)
		case http.MethodGet:
			userHandler.List(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/user", userRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(corsOrigin)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
