// Package dataset loads raw event records for the dashboard backend. It is
// the lenient edge of the system: whatever shape the rows are in, the output
// is a RawEvent slice for the normalizer to repair.
package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"incident-insights-go/internal/logger"
	"incident-insights-go/internal/types"
)

// Load reads a local dataset file, dispatching on extension (.xlsx or .json).
func Load(path string) ([]types.RawEvent, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", path)
	}
}

// LoadXLSX reads the first sheet of a workbook, auto-detecting event columns
// by header heuristics. Rows are kept even when most cells are empty; the
// normalizer decides what to do with them.
func LoadXLSX(path string) ([]types.RawEvent, error) {
	log := logger.New().WithComponent("dataset").WithField("path", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	cols := detectColumns(rows[0])
	log.WithField("columns", cols).Info("detected dataset columns")

	out := make([]types.RawEvent, 0, len(rows)-1)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		rec := types.RawEvent{}
		for key, idx := range cols {
			if idx >= 0 && idx < len(row) && strings.TrimSpace(row[idx]) != "" {
				rec[key] = row[idx]
			}
		}
		if len(rec) == 0 {
			continue
		}
		out = append(out, rec)
	}
	log.WithField("rows", len(out)).Info("dataset loaded")
	return out, nil
}

// detectColumns maps RawEvent keys to column indices by substring match on
// lower-cased headers; first matching header wins per key, -1 means absent.
func detectColumns(header []string) map[string]int {
	cols := map[string]int{
		"date": -1, "cat": -1, "country": -1, "place": -1,
		"title": -1, "summary": -1, "url": -1, "lat": -1, "lng": -1,
	}
	assign := func(key string, i int) {
		if cols[key] == -1 {
			cols[key] = i
		}
	}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "datum") || strings.Contains(l, "date"):
			assign("date", i)
		case strings.Contains(l, "plats") || strings.Contains(l, "place") || strings.Contains(l, "city") || strings.Contains(l, "location"):
			assign("place", i)
		case strings.Contains(l, "kategori") || strings.Contains(l, "cat"):
			assign("cat", i)
		case strings.Contains(l, "land") || strings.Contains(l, "country"):
			assign("country", i)
		case strings.Contains(l, "titel") || strings.Contains(l, "title") || strings.Contains(l, "rubrik") || strings.Contains(l, "headline"):
			assign("title", i)
		case strings.Contains(l, "sammanfattning") || strings.Contains(l, "summary") || strings.Contains(l, "description") || strings.Contains(l, "text"):
			assign("summary", i)
		case strings.Contains(l, "url") || strings.Contains(l, "link") || strings.Contains(l, "källa") || strings.Contains(l, "source"):
			assign("url", i)
		case strings.Contains(l, "lat"):
			assign("lat", i)
		case strings.Contains(l, "lng") || strings.Contains(l, "lon"):
			assign("lng", i)
		}
	}
	return cols
}
