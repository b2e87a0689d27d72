package dataset

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sort"
	"time"
)

// ErrEmptyUniverse is returned when there is nothing to sample from.
var ErrEmptyUniverse = errors.New("sampler: no dates with positive weight")

// Seasonality weighs sale dates toward year-end, weekends and a single
// promotional day, and away from holidays.
type Seasonality struct {
	Holidays map[string]struct{} // keyed by time.DateOnly
	Promo    time.Time
}

// NewSeasonality indexes the given holidays.
func NewSeasonality(holidays []time.Time, promo time.Time) Seasonality {
	s := Seasonality{Holidays: make(map[string]struct{}, len(holidays)), Promo: promo}
	for _, h := range holidays {
		s.Holidays[h.Format(time.DateOnly)] = struct{}{}
	}
	return s
}

// Weight returns the relative likelihood of a sale on d.
func (s Seasonality) Weight(d time.Time) float64 {
	w := 1.0
	switch d.Month() {
	case time.November:
		w *= 1.35
	case time.December:
		w *= 1.45
	}
	switch d.Weekday() {
	case time.Saturday:
		w *= 1.30
	case time.Sunday:
		w *= 1.20
	}
	key := d.Format(time.DateOnly)
	if _, ok := s.Holidays[key]; ok {
		w *= 0.5
	}
	if !s.Promo.IsZero() && key == s.Promo.Format(time.DateOnly) {
		w *= 3.0
	}
	return w
}

// DateSampler draws dates with replacement in proportion to their weight.
type DateSampler struct {
	dates []time.Time
	cum   []float64
}

// NewDateSampler precomputes the cumulative distribution of weight over dates.
// Dates with non-positive weight are never drawn.
func NewDateSampler(dates []time.Time, weight func(time.Time) float64) (*DateSampler, error) {
	s := &DateSampler{}
	total := 0.0
	for _, d := range dates {
		w := weight(d)
		if w <= 0 {
			continue
		}
		total += w
		s.dates = append(s.dates, d)
		s.cum = append(s.cum, total)
	}
	if len(s.dates) == 0 {
		return nil, ErrEmptyUniverse
	}
	for i := range s.cum {
		s.cum[i] /= total
	}
	s.cum[len(s.cum)-1] = 1
	return s, nil
}

// Draw returns one date.
func (s *DateSampler) Draw(r *rand.Rand) time.Time {
	u := r.Float64()
	i := sort.SearchFloat64s(s.cum, u)
	// SearchFloat64s finds the first cum >= u; equality belongs to the next bucket.
	for i < len(s.cum)-1 && s.cum[i] == u {
		i++
	}
	return s.dates[i]
}

// Sample draws n dates and returns them in ascending order.
func (s *DateSampler) Sample(r *rand.Rand, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = s.Draw(r)
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// weightedIndex picks an index of weights in proportion to its value.
func weightedIndex(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	u := r.Float64() * total
	for i, w := range weights {
		if u < w {
			return i
		}
		u -= w
	}
	return len(weights) - 1
}
