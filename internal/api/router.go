package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// corsMiddleware adds CORS headers to each response
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		//TODO Here adjust the origins to the appropriate sources
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-api-key")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter creates and configures a new application router.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()

	// Add CORS middleware to all routes
	router.Use(corsMiddleware)

	// Create a subrouter for API versioning
	apiV1 := router.PathPrefix("/api/v1").Subrouter()

	// API Endpoints
	// OPTIONS is listed so preflight requests reach the CORS middleware.
	apiV1.HandleFunc("/digests", h.HandleCreateDigest).Methods(http.MethodPost, http.MethodOptions)
	apiV1.HandleFunc("/digests/algorithms", h.HandleAlgorithmListing).Methods(http.MethodGet)

	// Add a simple health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	return router
}
