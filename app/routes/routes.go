package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"galleria/app/controllers"
	"galleria/app/middleware"
	"galleria/app/repositories"
	"galleria/app/services"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options selects the optional parts of the router.
type Options struct {
	Metrics *middleware.Metrics
	Tracing *middleware.Tracing
}

// SetupRoutes defines the application's routes on top of repo and returns the handler.
func SetupRoutes(repo *repositories.Repository, opts Options) http.Handler {
	router := mux.NewRouter()

	// Route-level middleware. mux skips it when nothing matches, so the
	// fallback handlers below get the observability part applied directly.
	observe := []mux.MiddlewareFunc{}
	if opts.Metrics != nil {
		observe = append(observe, opts.Metrics.Middleware)
	}
	if opts.Tracing != nil {
		observe = append(observe, opts.Tracing.Middleware)
	}
	router.Use(middleware.ContentTypeJSON)
	router.Use(observe...)

	galleryService := services.NewGalleryService(repo.Posts)
	productService := services.NewProductService(repo.Products)

	galleryController := controllers.NewGalleryController(galleryService)
	commentController := controllers.NewCommentController(galleryService)
	productController := controllers.NewProductController(productService)

	if opts.Metrics != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Metrics.Registry(), promhttp.HandlerOpts{})).Methods("GET")
	}

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", controllers.Health).Methods("GET")

	// Gallery API endpoints
	gallery := api.PathPrefix("/gallery").Subrouter()
	gallery.HandleFunc("", galleryController.Index).Methods("GET")
	gallery.HandleFunc("", galleryController.Create).Methods("POST")
	gallery.HandleFunc("/{id:[0-9]+}/like", galleryController.Like).Methods("POST")
	gallery.HandleFunc("/{id:[0-9]+}", galleryController.Delete).Methods("DELETE")

	// Comments API endpoints
	gallery.HandleFunc("/{id:[0-9]+}/comments", commentController.Index).Methods("GET")
	gallery.HandleFunc("/{id:[0-9]+}/comments", commentController.Create).Methods("POST")
	gallery.HandleFunc("/{postId:[0-9]+}/comments/{commentId:[0-9]+}", commentController.Delete).Methods("DELETE")

	// Products API endpoints
	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", productController.Index).Methods("GET")
	products.HandleFunc("", productController.Create).Methods("POST")
	products.HandleFunc("/{id:[0-9]+}", productController.Edit).Methods("PUT")
	products.HandleFunc("/{id:[0-9]+}", productController.Delete).Methods("DELETE")

	router.NotFoundHandler = chain(fallback(router), observe)
	router.MethodNotAllowedHandler = router.NotFoundHandler

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)

	// Request-scoped middleware wraps everything, matched or not.
	return chain(cors(router), []mux.MiddlewareFunc{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	})
}

// chain applies mws so that the first one is outermost
func chain(h http.Handler, mws []mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// fallback answers requests no route accepted: 405 when the path exists
// under another method, 404 otherwise. mux loses the method mismatch across
// nested subrouters, so the router is asked again per method.
func fallback(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		if allowed := allowedMethods(router, r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			sendError(w, http.StatusMethodNotAllowed, "Método não permitido")
			return
		}
		sendError(w, http.StatusNotFound, "Rota não encontrada")
	})
}

// allowedMethods lists the methods some route accepts for the request path
func allowedMethods(router *mux.Router, r *http.Request) []string {
	var allowed []string
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		if method == r.Method {
			continue
		}
		req := r.Clone(r.Context())
		req.Method = method
		var match mux.RouteMatch
		if router.Match(req, &match) && match.MatchErr == nil {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
