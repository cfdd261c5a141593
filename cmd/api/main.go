package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"incident-insights-go/internal/aggregator"
	"incident-insights-go/internal/category"
	"incident-insights-go/internal/config"
	"incident-insights-go/internal/dataset"
	"incident-insights-go/internal/filter"
	"incident-insights-go/internal/logger"
	"incident-insights-go/internal/metrics"
	"incident-insights-go/internal/normalizer"
	"incident-insights-go/internal/oiat"
	"incident-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "incident-insights-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	metrics.Register()

	classifier := category.Default()
	if len(cfg.Aliases) > 0 {
		classifier = category.WithAliases(cfg.Aliases)
	}

	// load the event dataset into memory
	var raw []types.RawEvent
	if cfg.FeedURL != "" {
		log.WithField("feed_url", cfg.FeedURL).Info("fetching event feed")
		raw, err = dataset.Fetch(cfg.FeedURL, cfg.FeedTimeout, 60*time.Second)
	} else {
		log.WithField("dataset_path", cfg.DatasetPath).Info("loading dataset")
		raw, err = dataset.Load(cfg.DatasetPath)
	}
	if err != nil {
		log.WithError(err).Fatal("failed to load events")
	}

	events := normalizer.New(classifier).Normalize(raw)
	metrics.EventsLoaded.Set(float64(len(events)))
	log.WithField("events", len(events)).Info("events normalized")

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("healthz").Inc()
		w.Write([]byte("ok"))
	})

	// full canonical collection, for KPI cards and map markers
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("events").Inc()
		logger.New().WithRequest(r).Info("events requested")
		writeJSON(w, events)
	})

	// static presentation table for the legend and marker colors
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("categories").Inc()
		writeJSON(w, map[string]any{
			"order": category.All,
			"table": category.Table,
		})
	})

	mux.HandleFunc("/api/kpis", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("kpis").Inc()
		writeJSON(w, aggregator.KPIs(events))
	})

	// bar/heatmap aggregates; never empty thanks to the refill policy
	mux.HandleFunc("/api/aggregate", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("aggregate").Inc()
		st := stateFromQuery(r, filter.RefillOnEmpty)
		metrics.AggregationsTotal.Inc()
		writeJSON(w, aggregator.Aggregate(st.Apply(events)))
	})

	// overview line series; an explicit empty selection yields empty series
	mux.HandleFunc("/api/series", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("series").Inc()
		st := stateFromQuery(r, filter.AllowEmpty)
		metrics.AggregationsTotal.Inc()
		view := aggregator.Aggregate(st.Apply(events))
		writeJSON(w, map[string]any{
			"months": view.MonthsPresent,
			"series": view.ByCategoryByMonth,
			"active": st.Active(),
		})
	})

	mux.HandleFunc("/api/geo", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("geo").Inc()
		mode := aggregator.GeoCountry
		if r.URL.Query().Get("mode") == string(aggregator.GeoPlace) {
			mode = aggregator.GeoPlace
		}
		limit := cfg.GeoLimit
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
			limit = v
		}
		st := stateFromQuery(r, filter.RefillOnEmpty)
		writeJSON(w, aggregator.TopByGeo(st.Apply(events), mode, limit))
	})

	mux.HandleFunc("/api/oiat", func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues("oiat").Inc()
		q := r.URL.Query()
		score, band := oiat.ScoreWith(cfg.OIAT,
			queryInt(q.Get("o")), queryInt(q.Get("i")),
			queryInt(q.Get("a")), queryInt(q.Get("t")))
		writeJSON(w, oiat.Result{Score: score, Band: band})
	})

	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", cfg.Addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

// stateFromQuery builds a filter from a comma-separated categories param.
// Without the param every category stays active; with it, exactly the listed
// valid codes are active, subject to the state's empty policy.
func stateFromQuery(r *http.Request, policy filter.EmptyPolicy) *filter.State {
	st := filter.New(policy)
	q := r.URL.Query()
	if !q.Has("categories") {
		return st
	}
	requested := map[string]bool{}
	for _, c := range strings.Split(q.Get("categories"), ",") {
		requested[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	for _, code := range category.All {
		if !requested[code] {
			st.Toggle(code)
		}
	}
	return st
}

func queryInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}
