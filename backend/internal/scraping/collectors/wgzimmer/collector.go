// backend/internal/scraping/collectors/wgzimmer/collector.go
package wgzimmer

import (
	"github.com/ps-vitor/wglink-sys/backend/internal/domain"
)

// Selectors locate the listing info blocks and their children.
type Selectors struct {
	Block   string `yaml:"block"`
	Heading string `yaml:"heading"`
	Value   string `yaml:"value"`
}

// DefaultSelectors match the wgzimmer.ch listing detail page.
func DefaultSelectors() Selectors {
	return Selectors{
		Block:   "div.wrap.col-wrap",
		Heading: "h3",
		Value:   "p",
	}
}

// Collector turns a parsed listing page into a ListingRecord.
type Collector struct {
	selectors Selectors
}

func NewCollector(selectors Selectors) *Collector {
	return &Collector{selectors: selectors}
}

// Extract folds every section of doc into one record, in document order.
// A key produced by a later section overwrites the same key from an
// earlier one.
func (c *Collector) Extract(doc Document) *domain.ListingRecord {
	record := domain.NewListingRecord()
	for section := range c.Sections(doc) {
		record.Merge(ParseSection(section))
	}
	return record
}
