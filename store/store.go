// Package store provides the observation store contract and an in-memory
// implementation. The contract is an idempotent upsert keyed by
// (series_id, date): re-ingesting a table overwrites matching observations
// instead of duplicating them.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/samimiettinen/pxingest/pxtable"
)

// Memory is an in-memory observation store. It backs tests and local runs;
// production deployments supply their own implementation of the handler's
// ObservationStore interface.
type Memory struct {
	mu     sync.RWMutex
	series map[string]map[string]*float64
}

// NewMemory returns a new empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		series: make(map[string]map[string]*float64),
	}
}

// UpsertObservations inserts or overwrites observations keyed by
// (series_id, date). The operation is idempotent.
func (s *Memory) UpsertObservations(ctx context.Context, obs []pxtable.Observation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range obs {
		dates, ok := s.series[o.SeriesID]
		if !ok {
			dates = make(map[string]*float64)
			s.series[o.SeriesID] = dates
		}
		if o.Value != nil {
			v := *o.Value
			dates[o.Date] = &v
		} else {
			dates[o.Date] = nil
		}
	}
	return nil
}

// GetObservations returns the stored observations for a series, ordered by
// date ascending.
func (s *Memory) GetObservations(ctx context.Context, seriesID string) ([]pxtable.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates, ok := s.series[seriesID]
	if !ok {
		return nil, nil
	}

	obs := make([]pxtable.Observation, 0, len(dates))
	for date, value := range dates {
		var v *float64
		if value != nil {
			f := *value
			v = &f
		}
		obs = append(obs, pxtable.Observation{SeriesID: seriesID, Date: date, Value: v})
	}
	sort.Slice(obs, func(i, j int) bool { return obs[i].Date < obs[j].Date })
	return obs, nil
}

// SeriesIDs returns every stored series identifier, sorted.
func (s *Memory) SeriesIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.series))
	for id := range s.series {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Checker updates the healthcheck state; the in-memory store is always OK.
func (s *Memory) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return state.Update(healthcheck.StatusOK, "in-memory observation store is ok", 0)
}
