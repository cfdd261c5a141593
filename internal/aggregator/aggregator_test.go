package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incident-insights-go/internal/category"
	"incident-insights-go/internal/types"
)

func ev(cat, date, country, place string) types.Event {
	return types.Event{
		Category: cat,
		Date:     date,
		Month:    monthOf(date),
		Country:  country,
		Place:    place,
	}
}

func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return types.UnknownMonth
}

func TestAggregateScenario(t *testing.T) {
	events := []types.Event{
		ev(category.Drone, "2023-01-10", "Sverige", "Arlanda"),
		ev(category.Drone, "2023-01-20", "Sverige", "Bromma"),
		ev(category.Infra, "2023-02-05", "Norge", "Oslo"),
	}
	v := Aggregate(events)

	assert.Equal(t, []string{"2023-01", "2023-02"}, v.MonthsPresent)
	assert.Equal(t, map[string]int{"2023-01": 2, "2023-02": 1}, v.TotalByMonth)

	assert.Equal(t, 2, v.TotalByCategory[category.Drone])
	assert.Equal(t, 1, v.TotalByCategory[category.Infra])
	for _, code := range category.All {
		if code == category.Drone || code == category.Infra {
			continue
		}
		assert.Equal(t, 0, v.TotalByCategory[code], "category %s", code)
	}

	assert.Equal(t, 2, v.ByCategoryByMonth[category.Drone]["2023-01"])
	assert.Equal(t, 1, v.ByCategoryByMonth[category.Infra]["2023-02"])
	assert.Equal(t, 0, v.ByCategoryByMonth[category.Infra]["2023-01"])
}

func TestAggregateEmptyInput(t *testing.T) {
	v := Aggregate(nil)

	assert.Empty(t, v.MonthsPresent)
	assert.Empty(t, v.TotalByMonth)
	require.Len(t, v.TotalByCategory, len(category.All))
	for _, code := range category.All {
		assert.Equal(t, 0, v.TotalByCategory[code])
	}
}

func TestAggregateMatrixAxisIsFullCategoryList(t *testing.T) {
	// only one category present, but the matrix must carry every code so
	// chart axes don't jump around when filters change
	v := Aggregate([]types.Event{ev(category.GPS, "2024-06-01", "Finland", "Helsingfors")})

	require.Len(t, v.ByCategoryByMonth, len(category.All))
	for _, code := range category.All {
		row, ok := v.ByCategoryByMonth[code]
		require.True(t, ok, "missing row for %s", code)
		_, ok = row["2024-06"]
		assert.True(t, ok, "row %s missing month cell", code)
	}
	assert.Equal(t, 1, v.ByCategoryByMonth[category.GPS]["2024-06"])
	assert.Equal(t, 0, v.ByCategoryByMonth[category.Terror]["2024-06"])
}

func TestAggregateUnknownMonthExcludedFromTimeViews(t *testing.T) {
	events := []types.Event{
		ev(category.Mil, "2024-01-01", "Sverige", "Boden"),
		{Category: category.Mil, Month: types.UnknownMonth, Country: "Sverige", Place: "Okänd"},
	}
	v := Aggregate(events)

	// both count toward the category total, only the dated one toward months
	assert.Equal(t, 2, v.TotalByCategory[category.Mil])
	assert.Equal(t, []string{"2024-01"}, v.MonthsPresent)
	assert.Equal(t, 1, v.TotalByMonth["2024-01"])
	assert.NotContains(t, v.TotalByMonth, types.UnknownMonth)
}

func TestAggregateIdempotent(t *testing.T) {
	events := []types.Event{
		ev(category.Drone, "2023-01-10", "Sverige", "Arlanda"),
		ev(category.Hybrid, "2023-03-02", "Danmark", "Köpenhamn"),
	}
	assert.Equal(t, Aggregate(events), Aggregate(events))
}

func TestTopByGeo(t *testing.T) {
	events := []types.Event{
		ev(category.Drone, "2023-01-01", "Sverige", "Arlanda"),
		ev(category.Drone, "2023-01-02", "Norge", "Oslo"),
		ev(category.Drone, "2023-01-03", "Sverige", "Bromma"),
		ev(category.Drone, "2023-01-04", "Danmark", "Kastrup"),
		ev(category.Drone, "2023-01-05", "Norge", "Bergen"),
		ev(category.Drone, "2023-01-06", "Sverige", "Arlanda"),
	}

	top := TopByGeo(events, GeoCountry, 2)
	require.Len(t, top, 2)
	assert.Equal(t, GeoEntry{Name: "Sverige", Count: 3}, top[0])
	assert.Equal(t, GeoEntry{Name: "Norge", Count: 2}, top[1])

	// ties resolve by first appearance: Norge and Danmark both count 1 in
	// the first four events and Norge was seen first
	tied := TopByGeo(events[:4], GeoCountry, 3)
	require.Len(t, tied, 3)
	assert.Equal(t, "Sverige", tied[0].Name)
	assert.Equal(t, "Norge", tied[1].Name)
	assert.Equal(t, "Danmark", tied[2].Name)

	// counts strictly descending (never ascending)
	for i := 1; i < len(tied); i++ {
		assert.GreaterOrEqual(t, tied[i-1].Count, tied[i].Count)
	}
}

func TestTopByGeoPlaceModeAndLimits(t *testing.T) {
	events := []types.Event{
		ev(category.Intel, "2023-01-01", "Sverige", "Stockholm"),
		ev(category.Intel, "2023-01-02", "Sverige", "Stockholm"),
		ev(category.Intel, "2023-01-03", "Sverige", "Göteborg"),
	}

	top := TopByGeo(events, GeoPlace, 10)
	require.Len(t, top, 2, "limit beyond distinct values returns all")
	assert.Equal(t, "Stockholm", top[0].Name)

	assert.Empty(t, TopByGeo(events, GeoPlace, 0))
	assert.Empty(t, TopByGeo(events, GeoPlace, -1))
	assert.Empty(t, TopByGeo(nil, GeoPlace, 5))
}

func TestKPIs(t *testing.T) {
	events := []types.Event{
		ev(category.Drone, "2023-01-10", "Sverige", "Arlanda"),
		ev(category.Infra, "2023-02-05", "Norge", "Oslo"),
		{Category: category.Drone, Month: types.UnknownMonth, Country: "Sverige", Place: "Okänd"},
	}
	k := KPIs(events)

	assert.Equal(t, 3, k.TotalEvents)
	assert.Equal(t, 2, k.Categories)
	assert.Equal(t, 2, k.Countries)
	assert.Equal(t, 3, k.Places)
	assert.Equal(t, "2023-01-10", k.FirstDate)
	assert.Equal(t, "2023-02-05", k.LastDate)
}

func TestKPIsEmpty(t *testing.T) {
	k := KPIs(nil)
	assert.Equal(t, 0, k.TotalEvents)
	assert.Empty(t, k.FirstDate)
	assert.Empty(t, k.LastDate)
}
