// backend/internal/scraping/collectors/wgzimmer/document.go
package wgzimmer

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed page that can enumerate its marked blocks.
type Document interface {
	Blocks(selector string) iter.Seq[Block]
}

// Block is one marked element of a Document.
type Block interface {
	// ChildText returns the trimmed text of the first child matching selector.
	ChildText(selector string) string
	// ChildTexts returns the trimmed text of every child matching selector.
	ChildTexts(selector string) []string
}

type goqueryDocument struct {
	doc *goquery.Document
}

type goqueryBlock struct {
	sel *goquery.Selection
}

// NewDocument wraps an already parsed goquery document.
func NewDocument(doc *goquery.Document) Document {
	return &goqueryDocument{doc: doc}
}

// ParseDocument reads and parses HTML from r.
func ParseDocument(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return NewDocument(doc), nil
}

func (d *goqueryDocument) Blocks(selector string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		d.doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			return yield(goqueryBlock{sel: s})
		})
	}
}

func (b goqueryBlock) ChildText(selector string) string {
	found := b.sel.Find(selector)
	if found.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(found.First().Text())
}

func (b goqueryBlock) ChildTexts(selector string) []string {
	var texts []string
	b.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts
}
