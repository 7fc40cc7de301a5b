package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/wglink-sys/backend/pkg/logger"
)

// NewRouter wires every route and wraps the router in the middleware
// chain, so preflight and fallback responses get CORS headers too.
func NewRouter(listing *ListingHandler, log *logger.Logger) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/listing", listing.HandleListing).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(HandleInvalidRequest)
	r.MethodNotAllowedHandler = http.HandlerFunc(HandleInvalidRequest)

	var h http.Handler = r
	h = Logging(log)(h)
	h = CORS(h)
	h = RequestID(h)
	return h
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// HandleInvalidRequest answers every unknown route or method.
func HandleInvalidRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
}
