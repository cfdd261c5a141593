// Package aggregator computes the derived views the dashboard charts are
// drawn from. Every function is a pure single pass over the event
// collection; calling twice on the same input gives identical results, so
// callers may recompute freely on every filter toggle.
package aggregator

import (
	"sort"

	"incident-insights-go/internal/category"
	"incident-insights-go/internal/types"
)

// View bundles the month/category aggregates.
//
// The category axis is always the full fixed code list, zero-filled, so bar
// and heatmap axes stay stable while the user toggles filters. The month
// axis comes from the events actually passed in; the unknown-month bucket is
// excluded from all month-keyed views.
type View struct {
	MonthsPresent     []string                  `json:"months_present"`
	TotalByMonth      map[string]int            `json:"total_by_month"`
	TotalByCategory   map[string]int            `json:"total_by_category"`
	ByCategoryByMonth map[string]map[string]int `json:"by_category_by_month"`
}

// Aggregate builds the view. Empty input yields a valid zero view: every
// category count zero, no months.
func Aggregate(events []types.Event) View {
	v := View{
		TotalByMonth:      map[string]int{},
		TotalByCategory:   map[string]int{},
		ByCategoryByMonth: map[string]map[string]int{},
	}
	for _, code := range category.All {
		v.TotalByCategory[code] = 0
		v.ByCategoryByMonth[code] = map[string]int{}
	}

	for _, ev := range events {
		v.TotalByCategory[ev.Category]++
		if ev.Month == types.UnknownMonth {
			continue
		}
		v.TotalByMonth[ev.Month]++
		v.ByCategoryByMonth[ev.Category][ev.Month]++
	}

	v.MonthsPresent = make([]string, 0, len(v.TotalByMonth))
	for m := range v.TotalByMonth {
		v.MonthsPresent = append(v.MonthsPresent, m)
	}
	sort.Strings(v.MonthsPresent)

	// Zero-fill the matrix over months present so consumers can index every
	// (category, month) cell without existence checks.
	for _, code := range category.All {
		for _, m := range v.MonthsPresent {
			if _, ok := v.ByCategoryByMonth[code][m]; !ok {
				v.ByCategoryByMonth[code][m] = 0
			}
		}
	}
	return v
}

// GeoMode selects the field the geo ranking counts.
type GeoMode string

const (
	GeoCountry GeoMode = "country"
	GeoPlace   GeoMode = "place"
)

// GeoEntry is one ranked value with its event count.
type GeoEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopByGeo returns the limit highest-count distinct country or place values,
// strictly descending by count; equal counts keep first-seen input order.
func TopByGeo(events []types.Event, mode GeoMode, limit int) []GeoEntry {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, ev := range events {
		name := ev.Country
		if mode == GeoPlace {
			name = ev.Place
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	entries := make([]GeoEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, GeoEntry{Name: name, Count: counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(entries) {
		limit = len(entries)
	}
	return entries[:limit]
}

// KPISummary holds the headline numbers and the date range line.
type KPISummary struct {
	TotalEvents int    `json:"total_events"`
	Categories  int    `json:"categories"`
	Countries   int    `json:"countries"`
	Places      int    `json:"places"`
	FirstDate   string `json:"first_date,omitempty"`
	LastDate    string `json:"last_date,omitempty"`
}

// KPIs counts distinct categories, countries and places present and finds
// the min/max dated events. FirstDate/LastDate stay empty when no event has
// a dated month.
func KPIs(events []types.Event) KPISummary {
	cats := map[string]bool{}
	countries := map[string]bool{}
	places := map[string]bool{}
	first, last := "", ""
	for _, ev := range events {
		cats[ev.Category] = true
		countries[ev.Country] = true
		places[ev.Place] = true
		if ev.Month == types.UnknownMonth {
			continue
		}
		if first == "" || ev.Date < first {
			first = ev.Date
		}
		if ev.Date > last {
			last = ev.Date
		}
	}
	return KPISummary{
		TotalEvents: len(events),
		Categories:  len(cats),
		Countries:   len(countries),
		Places:      len(places),
		FirstDate:   first,
		LastDate:    last,
	}
}
