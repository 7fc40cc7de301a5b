// backend/internal/scrapers/wgzimmer/client.go
package wgzimmer

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ps-vitor/wglink-sys/backend/internal/config"
	collector "github.com/ps-vitor/wglink-sys/backend/internal/scraping/collectors/wgzimmer"
)

var (
	// ErrUnparsableFetch covers every upstream failure: transport errors,
	// non-2xx responses, non-HTML bodies and HTML that cannot be parsed.
	ErrUnparsableFetch = errors.New("listing page could not be fetched")
	// ErrListingNotFound is returned when the site answers 404.
	ErrListingNotFound = errors.New("listing not found")
)

// Client fetches listing detail pages from wgzimmer.ch.
type Client struct {
	http        *resty.Client
	baseURL     string
	listingPath string
}

func NewClient(cfg config.WgzimmerConfig) *Client {
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	client.SetHeader("Accept", "text/html,application/xhtml+xml")

	return &Client{
		http:        client,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		listingPath: cfg.ListingPath(),
	}
}

// ListingURL builds the detail page URL for id.
func (c *Client) ListingURL(id string) string {
	return c.baseURL + fmt.Sprintf(c.listingPath, url.PathEscape(id))
}

// Fetch downloads and parses the listing page for id. It is aborted when
// ctx is cancelled.
func (c *Client) Fetch(ctx context.Context, id string) (collector.Document, error) {
	pageURL := c.ListingURL(id)

	res, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrUnparsableFetch, pageURL, err)
	}
	body := res.RawBody()
	defer body.Close()

	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, pageURL)
	}
	if res.StatusCode() < 200 || res.StatusCode() > 299 {
		return nil, fmt.Errorf("%w: status code error: %d", ErrUnparsableFetch, res.StatusCode())
	}

	if ct := res.Header().Get("Content-Type"); ct != "" && !isHTML(ct) {
		return nil, fmt.Errorf("%w: unexpected content type %q", ErrUnparsableFetch, ct)
	}

	doc, err := collector.ParseDocument(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparsableFetch, err)
	}
	return doc, nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
