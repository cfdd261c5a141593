package dataset

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"incident-insights-go/internal/logger"
	"incident-insights-go/internal/types"
)

// Fetch downloads a JSON event feed with exponential backoff. Client errors
// (4xx) abort immediately; everything else is retried until maxElapsed.
func Fetch(url string, timeout, maxElapsed time.Duration) ([]types.RawEvent, error) {
	log := logger.New().WithComponent("dataset").WithField("feed_url", url)
	client := &http.Client{Timeout: timeout}

	var out []types.RawEvent
	var lastErr error

	op := func() error {
		resp, err := client.Get(url)
		if err != nil {
			lastErr = err
			log.WithError(err).Warn("feed request failed")
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			lastErr = err
			return err
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			lastErr = fmt.Errorf("feed returned %d", resp.StatusCode)
			return backoff.Permanent(lastErr)
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("feed returned %d", resp.StatusCode)
			return lastErr
		}

		records, err := decodeEvents(body)
		if err != nil {
			lastErr = err
			return err
		}
		out = records
		lastErr = nil
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxElapsed

	if err := backoff.Retry(op, b); err != nil {
		return nil, fmt.Errorf("fetch feed: %w", lastErr)
	}
	log.WithField("records", len(out)).Info("feed fetched")
	return out, nil
}
