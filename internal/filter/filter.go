// Package filter holds the only mutable state in the system: the set of
// active category codes restricting which events feed the aggregator.
package filter

import (
	"incident-insights-go/internal/category"
	"incident-insights-go/internal/types"
)

// EmptyPolicy decides what happens when an operation would leave the active
// set empty. The main chart filter refills to the full set so the charts
// never go blank; the overview legend allows an explicit empty selection
// meaning "show no series".
type EmptyPolicy int

const (
	RefillOnEmpty EmptyPolicy = iota
	AllowEmpty
)

// State is an owned, single-goroutine filter; the UI layer mutates it
// between redraws and the aggregator only ever reads it.
type State struct {
	policy EmptyPolicy
	active map[string]bool
}

// New returns a state with every category active.
func New(policy EmptyPolicy) *State {
	s := &State{policy: policy, active: map[string]bool{}}
	s.SelectAll()
	return s
}

// Toggle flips membership of code. Unknown codes are ignored. Under
// RefillOnEmpty, toggling off the last active category refills the full set.
func (s *State) Toggle(code string) {
	if !category.Valid(code) {
		return
	}
	if s.active[code] {
		delete(s.active, code)
		s.refillIfEmpty()
		return
	}
	s.active[code] = true
}

// SelectAll activates every category.
func (s *State) SelectAll() {
	for _, code := range category.All {
		s.active[code] = true
	}
}

// SelectNone clears the selection, subject to the empty policy.
func (s *State) SelectNone() {
	s.active = map[string]bool{}
	s.refillIfEmpty()
}

func (s *State) refillIfEmpty() {
	if s.policy == RefillOnEmpty && len(s.active) == 0 {
		s.SelectAll()
	}
}

// IsActive reports membership of code in the active set.
func (s *State) IsActive(code string) bool {
	return s.active[code]
}

// Active returns the active codes in fixed category order.
func (s *State) Active() []string {
	out := make([]string, 0, len(s.active))
	for _, code := range category.All {
		if s.active[code] {
			out = append(out, code)
		}
	}
	return out
}

// Apply returns the events whose category is active, preserving order.
// Under AllowEmpty an empty selection yields an empty result.
func (s *State) Apply(events []types.Event) []types.Event {
	out := make([]types.Event, 0, len(events))
	for _, ev := range events {
		if s.active[ev.Category] {
			out = append(out, ev)
		}
	}
	return out
}
