// backend/internal/scraping/collectors/wgzimmer/parsers.go
package wgzimmer

import (
	"regexp"
	"strings"

	"github.com/ps-vitor/wglink-sys/backend/internal/domain"
)

var (
	// dateRegexp matches day.month.year
	dateRegexp = regexp.MustCompile(`\d+\.\d+\.\d+`)
	rentRegexp = regexp.MustCompile(`\d+`)
)

// Output keys of the fixed-layout sections.
const (
	FieldStart = "Start"
	FieldEnd   = "End"
	FieldRent  = "Rent"

	FieldState         = "State"
	FieldAddress       = "Address"
	FieldCity          = "City"
	FieldNeighbourhood = "Neighbourhood"
	FieldNearby        = "Nearby"
)

// addressFields is the positional layout of the address section.
var addressFields = []string{FieldState, FieldAddress, FieldCity, FieldNeighbourhood, FieldNearby}

// at returns values[i], or "" when the position is absent.
func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// parseDateRent reads [starting, ending, rent].
func parseDateRent(values []string) domain.FieldMap {
	return domain.FieldMap{
		{Key: FieldStart, Value: dateRegexp.FindString(at(values, 0))},
		{Key: FieldEnd, Value: dateRegexp.FindString(at(values, 1))},
		{Key: FieldRent, Value: rentRegexp.FindString(at(values, 2))},
	}
}

func parseAddress(values []string) domain.FieldMap {
	fm := make(domain.FieldMap, 0, len(addressFields))
	for i, key := range addressFields {
		fm = append(fm, domain.Field{Key: key, Value: at(values, i)})
	}
	return fm
}

// parseGeneric keys the joined values by the section's own title.
func parseGeneric(title string, values []string) domain.FieldMap {
	return domain.FieldMap{{Key: title, Value: strings.Join(values, ",")}}
}

// ParseSection runs the strategy chosen for the section's title.
func ParseSection(section domain.RawSection) domain.FieldMap {
	switch Classify(section.Title) {
	case StrategyDateRent:
		return parseDateRent(section.Values)
	case StrategyAddress:
		return parseAddress(section.Values)
	default:
		return parseGeneric(section.Title, section.Values)
	}
}
