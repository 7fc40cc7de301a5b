// backend/internal/scraping/collectors/wgzimmer/sections.go
package wgzimmer

import (
	"iter"

	"github.com/ps-vitor/wglink-sys/backend/internal/domain"
)

// Strategy selects the parser applied to a section.
type Strategy int

const (
	StrategyGeneric Strategy = iota
	StrategyDateRent
	StrategyAddress
)

// Headings used by the listing page. Matching is exact.
const (
	TitleDateRent = "Dates and rent"
	TitleAddress  = "Address"
)

func (s Strategy) String() string {
	switch s {
	case StrategyDateRent:
		return "date_rent"
	case StrategyAddress:
		return "address"
	default:
		return "generic"
	}
}

// Classify maps a section heading to its parsing strategy.
func Classify(title string) Strategy {
	switch title {
	case TitleDateRent:
		return StrategyDateRent
	case TitleAddress:
		return StrategyAddress
	default:
		return StrategyGeneric
	}
}

// Sections yields the page's raw sections in document order.
func (c *Collector) Sections(doc Document) iter.Seq[domain.RawSection] {
	return func(yield func(domain.RawSection) bool) {
		for block := range doc.Blocks(c.selectors.Block) {
			section := domain.RawSection{
				Title:  block.ChildText(c.selectors.Heading),
				Values: nonEmpty(block.ChildTexts(c.selectors.Value)),
			}
			if !yield(section) {
				return
			}
		}
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
