// Package normalizer turns untrusted raw event records into the canonical,
// strictly-typed events every aggregate view is computed from. All input
// leniency lives here and nowhere else.
package normalizer

import (
	"regexp"
	"sort"
	"strings"

	"incident-insights-go/internal/category"
	"incident-insights-go/internal/logger"
	"incident-insights-go/internal/types"
)

var (
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}(\D|$)`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// MonthKey extracts the leading YYYY-MM bucket from a date string. Anything
// that doesn't start with four digits, a dash and exactly two digits yields
// types.UnknownMonth; day and time suffixes are ignored.
func MonthKey(s string) string {
	if monthRe.MatchString(s) {
		return s[:7]
	}
	return types.UnknownMonth
}

// Normalizer converts raw records using a category classifier.
type Normalizer struct {
	classifier *category.Classifier
	log        *logger.Logger
}

// New returns a normalizer; a nil classifier means the built-in alias table.
func New(c *category.Classifier) *Normalizer {
	if c == nil {
		c = category.Default()
	}
	return &Normalizer{
		classifier: c,
		log:        logger.New().WithComponent("normalizer"),
	}
}

// Normalize produces the canonical event collection: one event per raw
// record, fields repaired, category resolved, sorted ascending by date with
// unknown-dated records last (input order preserved within ties). The raw
// input is never modified; records are never dropped, dirty dates land in
// the unknown month bucket instead.
func (n *Normalizer) Normalize(raw []types.RawEvent) []types.Event {
	events := make([]types.Event, 0, len(raw))
	unknownDates := 0
	for _, r := range raw {
		ev := n.one(r)
		if ev.Month == types.UnknownMonth {
			unknownDates++
		}
		events = append(events, ev)
	}

	// YYYY-MM-DD compares correctly as a plain string, so the parsed date
	// prefix doubles as the sort key. Unknown dates sort after everything.
	sort.SliceStable(events, func(i, j int) bool {
		di, oki := datePrefix(events[i].Date)
		dj, okj := datePrefix(events[j].Date)
		if oki != okj {
			return oki
		}
		return di < dj
	})

	n.log.WithField("events", len(events)).
		WithField("unknown_dates", unknownDates).
		Info("normalized raw records")
	return events
}

func (n *Normalizer) one(r types.RawEvent) types.Event {
	country := fallback(r.Str("country"), "Unknown")
	place := fallback(r.Str("place"), "Unknown place")
	title := fallback(r.Str("title"), "(untitled)")
	summary := r.Str("summary")

	blob := strings.ToLower(title + " " + summary + " " + place + " " + country)
	ev := types.Event{
		Category: n.classifier.Resolve(r.Str("cat", "category"), blob),
		Date:     r.Str("date"),
		Country:  country,
		Place:    place,
		Title:    title,
		Summary:  summary,
		URL:      r.Str("url"),
	}
	ev.Month = MonthKey(ev.Date)

	if lat, ok := r.Num("lat"); ok {
		if lng, ok := r.Num("lng"); ok {
			ev.Lat, ev.Lng = &lat, &lng
		}
	}
	return ev
}

func datePrefix(s string) (string, bool) {
	if dateRe.MatchString(s) {
		return s[:10], true
	}
	return "", false
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
