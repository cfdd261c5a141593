package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"incident-insights-go/internal/types"
)

// LoadJSON reads a file holding a JSON array of raw event objects, the same
// shape the dashboard frontend embeds as its events array.
func LoadJSON(path string) ([]types.RawEvent, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return decodeEvents(b)
}

func decodeEvents(b []byte) ([]types.RawEvent, error) {
	var out []types.RawEvent
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}
