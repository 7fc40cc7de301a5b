// backend/internal/api/handlers/listing.go

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ps-vitor/wglink-sys/backend/internal/domain"
	"github.com/ps-vitor/wglink-sys/backend/internal/scrapers/wgzimmer"
	"github.com/ps-vitor/wglink-sys/backend/pkg/logger"
)

// ListingExtractor produces the record for one listing.
type ListingExtractor interface {
	Extract(ctx context.Context, id string) (*domain.ListingRecord, error)
}

type ListingHandler struct {
	extractor ListingExtractor
	log       *logger.Logger
}

func NewListingHandler(extractor ListingExtractor, log *logger.Logger) *ListingHandler {
	return &ListingHandler{extractor: extractor, log: log}
}

// HandleListing serves GET /api/listing?uuid=<id>.
func (h *ListingHandler) HandleListing(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("uuid")
	if id == "" {
		http.Error(w, domain.ErrMissingIdentifier.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.extractor.Extract(r.Context(), id)
	if err != nil {
		h.writeError(w, r, id, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		h.log.Errorw("encoding listing", "uuid", id, "request_id", RequestIDFromContext(r.Context()), "error", err)
	}
}

func (h *ListingHandler) writeError(w http.ResponseWriter, r *http.Request, id string, err error) {
	log := h.log.With("uuid", id, "request_id", RequestIDFromContext(r.Context()))

	switch {
	case errors.Is(err, context.Canceled):
		// client went away, nobody to answer
		log.Infow("listing request cancelled", "error", err)
	case errors.Is(err, domain.ErrMissingIdentifier):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, wgzimmer.ErrListingNotFound):
		log.Infow("listing not found", "error", err)
		http.Error(w, "listing not found", http.StatusNotFound)
	default:
		log.Errorw("listing extraction failed", "error", err)
		http.Error(w, "listing page could not be fetched", http.StatusBadGateway)
	}
}
