// internal/services/listing_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ps-vitor/wglink-sys/backend/internal/domain"
	"github.com/ps-vitor/wglink-sys/backend/internal/scraping/collectors/wgzimmer"
	"github.com/ps-vitor/wglink-sys/backend/pkg/logger"
)

// PageFetcher retrieves and parses a listing page.
type PageFetcher interface {
	Fetch(ctx context.Context, id string) (wgzimmer.Document, error)
}

type ListingService struct {
	fetcher   PageFetcher
	collector *wgzimmer.Collector
	log       *logger.Logger
}

func NewListingService(fetcher PageFetcher, collector *wgzimmer.Collector, log *logger.Logger) *ListingService {
	return &ListingService{fetcher: fetcher, collector: collector, log: log}
}

// Extract fetches the listing identified by id and extracts its record.
// Nothing is extracted when the fetch fails.
func (s *ListingService) Extract(ctx context.Context, id string) (*domain.ListingRecord, error) {
	if id == "" {
		return nil, domain.ErrMissingIdentifier
	}

	start := time.Now()
	doc, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching listing %s: %w", id, err)
	}
	fetched := time.Since(start)

	record := s.collector.Extract(doc)
	s.log.Debugw("listing extracted",
		"uuid", id,
		"fields", record.Len(),
		"fetch_duration", fetched,
		"duration", time.Since(start),
	)
	return record, nil
}
