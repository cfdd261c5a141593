// Package oiat implements the four-factor source quality score shown in the
// dashboard's rating widget: Objectivity, Integrity, Actuality and Coverage,
// each 0-5, averaged and banded.
package oiat

import "fmt"

// Band is the three-step classification of a score.
type Band string

const (
	BandInsufficient Band = "insufficient"
	BandAdequate     Band = "adequate"
	BandRobust       Band = "robust"
)

// Thresholds are the band cut-offs: score < Adequate is insufficient,
// score < Robust is adequate, anything else robust.
type Thresholds struct {
	Adequate float64 `yaml:"adequate"`
	Robust   float64 `yaml:"robust"`
}

// DefaultThresholds matches the dashboard's 2.5/3.5 banding.
var DefaultThresholds = Thresholds{Adequate: 2.5, Robust: 3.5}

// Result is the API shape for one scoring.
type Result struct {
	Score float64 `json:"score"`
	Band  Band    `json:"band"`
}

// Score averages the four factors under the default thresholds. Inputs are
// clamped to 0..5, matching the slider widget's behavior on bad values.
func Score(o, i, a, t int) (float64, Band) {
	return ScoreWith(DefaultThresholds, o, i, a, t)
}

// ScoreWith averages the four factors and bands the result with th.
func ScoreWith(th Thresholds, o, i, a, t int) (float64, Band) {
	score := float64(clamp(o)+clamp(i)+clamp(a)+clamp(t)) / 4
	return score, th.band(score)
}

func (th Thresholds) band(score float64) Band {
	switch {
	case score < th.Adequate:
		return BandInsufficient
	case score < th.Robust:
		return BandAdequate
	default:
		return BandRobust
	}
}

// Validate rejects thresholds that cannot band monotonically.
func (th Thresholds) Validate() error {
	if th.Adequate <= 0 || th.Robust <= th.Adequate {
		return fmt.Errorf("oiat thresholds must satisfy 0 < adequate < robust, got %.2f/%.2f", th.Adequate, th.Robust)
	}
	return nil
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
