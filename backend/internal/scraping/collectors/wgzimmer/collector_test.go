package wgzimmer

import (
	"encoding/json"
	"iter"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ps-vitor/wglink-sys/backend/internal/domain"
)

// fakeBlock and fakeDocument stand in for a parsed page without any HTML.
type fakeBlock struct {
	title  string
	values []string
}

func (b fakeBlock) ChildText(string) string    { return b.title }
func (b fakeBlock) ChildTexts(string) []string { return b.values }

type fakeDocument []fakeBlock

func (d fakeDocument) Blocks(string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for _, b := range d {
			if !yield(b) {
				return
			}
		}
	}
}

func parseFixture(t *testing.T, name string) Document {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	doc, err := ParseDocument(f)
	require.NoError(t, err)
	return doc
}

func parseHTML(t *testing.T, html string) Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractFixture(t *testing.T) {
	c := NewCollector(DefaultSelectors())
	record := c.Extract(parseFixture(t, "listing.html"))

	assert.Equal(t, map[string]string{
		"Start":         "01.02.2024",
		"End":           "28.02.2025",
		"Rent":          "1200",
		"State":         "Zurich",
		"Address":       "Main St 5",
		"City":          "Zurich City",
		"Neighbourhood": "Kreis 4",
		"Nearby":        "Tram 3 Stauffacher",
		"Object":        "2 rooms,Furnished",
		"Room":          "",
	}, record.Map())

	assert.Equal(t, []string{
		"Start", "End", "Rent",
		"State", "Address", "City", "Neighbourhood", "Nearby",
		"Object", "Room",
	}, record.Keys())
}

func TestExtractNoSections(t *testing.T) {
	c := NewCollector(DefaultSelectors())
	record := c.Extract(parseHTML(t, `<html><body><div class="wrap"><h3>Object</h3><p>x</p></div></body></html>`))

	assert.Equal(t, 0, record.Len())
	b, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestSectionsTrimAndFilter(t *testing.T) {
	c := NewCollector(DefaultSelectors())
	doc := parseHTML(t, `<div class="wrap col-wrap"><p> a </p><p></p><p>
		b
	</p></div>`)

	var sections []domain.RawSection
	for s := range c.Sections(doc) {
		sections = append(sections, s)
	}

	require.Len(t, sections, 1)
	assert.Equal(t, "", sections[0].Title)
	assert.Equal(t, []string{"a", "b"}, sections[0].Values)
}

func TestSectionsStopEarly(t *testing.T) {
	c := NewCollector(DefaultSelectors())
	doc := parseFixture(t, "listing.html")

	var titles []string
	for s := range c.Sections(doc) {
		titles = append(titles, s.Title)
		if len(titles) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"Dates and rent", "Address"}, titles)
}

func TestExtractLastWriteWins(t *testing.T) {
	tests := []struct {
		name   string
		doc    fakeDocument
		key    string
		want   string
		length int
	}{
		{
			name: "repeated generic heading",
			doc: fakeDocument{
				{title: "Object", values: []string{"first"}},
				{title: "Object", values: []string{"second"}},
			},
			key: "Object", want: "second", length: 1,
		},
		{
			name: "generic heading overwrites fixed field",
			doc: fakeDocument{
				{title: "Dates and rent", values: []string{"01.01.2024", "02.02.2024", "900"}},
				{title: "Rent", values: []string{"negotiable"}},
			},
			key: "Rent", want: "negotiable", length: 3,
		},
		{
			name: "fixed field overwrites generic heading",
			doc: fakeDocument{
				{title: "City", values: []string{"Bern"}},
				{title: "Address", values: []string{"ZH", "Main St 5", "Zurich"}},
			},
			key: "City", want: "Zurich", length: 5,
		},
		{
			name: "second address section",
			doc: fakeDocument{
				{title: "Address", values: []string{"ZH", "Main St 5", "Zurich", "Kreis 4", "Tram"}},
				{title: "Address", values: []string{"BE"}},
			},
			key: "Nearby", want: "", length: 5,
		},
	}

	c := NewCollector(DefaultSelectors())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := c.Extract(tt.doc)
			got, ok := record.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.length, record.Len())
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	c := NewCollector(DefaultSelectors())
	doc := parseFixture(t, "listing.html")

	first, err := json.Marshal(c.Extract(doc))
	require.NoError(t, err)
	second, err := json.Marshal(c.Extract(doc))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestCustomSelectors(t *testing.T) {
	c := NewCollector(Selectors{Block: "section.info", Heading: "h2", Value: "li"})
	doc := parseHTML(t, `<section class="info"><h2>Costs</h2><ul><li>Deposit 2000</li><li>Fees 50</li></ul></section>`)

	assert.Equal(t, map[string]string{"Costs": "Deposit 2000,Fees 50"}, c.Extract(doc).Map())
}
