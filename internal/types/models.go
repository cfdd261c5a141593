package types

import (
	"strconv"
	"strings"
)

// UnknownMonth is the bucket for events whose date has no valid YYYY-MM
// prefix. Such events stay in category and geo totals but are excluded from
// month-keyed views.
const UnknownMonth = "unknown"

// RawEvent is an untrusted record as delivered by a loader. No field is
// required and any field may be wrong-typed; all repair happens in the
// normalizer.
type RawEvent map[string]any

// Str returns the first non-empty trimmed string among the given keys.
func (r RawEvent) Str(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		}
	}
	return ""
}

// Num reads a numeric field, tolerating JSON float64, int and numeric strings.
func (r RawEvent) Num(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Event is the canonical, fully-typed record produced by the normalizer.
// Immutable after creation; the collection is sorted ascending by date with
// unknown-dated events last.
type Event struct {
	Category string   `json:"cat"`
	Date     string   `json:"date,omitempty"`
	Month    string   `json:"month"`
	Country  string   `json:"country"`
	Place    string   `json:"place"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	URL      string   `json:"url,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}
