// backend/internal/domain/listing.go

package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrMissingIdentifier is returned when a request carries no listing uuid.
var ErrMissingIdentifier = errors.New("missing uuid parameter")

// RawSection is one visually grouped block of a listing page.
type RawSection struct {
	Title  string
	Values []string
}

// Field is a single key/value produced by a section parser.
type Field struct {
	Key   string
	Value string
}

// FieldMap is the ordered output of parsing one RawSection.
type FieldMap []Field

// ListingRecord is the flat, string-keyed result of one extraction.
// Keys keep the position of their first write; a later write to the
// same key replaces the value (last write wins).
type ListingRecord struct {
	keys   []string
	values map[string]string
}

func NewListingRecord() *ListingRecord {
	return &ListingRecord{values: make(map[string]string)}
}

// Set stores value under key, overwriting any earlier value.
func (r *ListingRecord) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Merge applies every field of fm in order.
func (r *ListingRecord) Merge(fm FieldMap) {
	for _, f := range fm {
		r.Set(f.Key, f.Value)
	}
}

func (r *ListingRecord) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *ListingRecord) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r *ListingRecord) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Map returns an unordered copy of the record.
func (r *ListingRecord) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r *ListingRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
