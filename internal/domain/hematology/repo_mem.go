package hematology

import (
	"context"
	"sync"
)

// DefaultHistoryLimit is how many results the store retains when no
// limit is configured.
const DefaultHistoryLimit = 5

// HistoryRepoMem keeps the most recent classification results in
// memory, newest first. Entries are stored and returned as value
// copies so callers never alias the retained data.
type HistoryRepoMem struct {
	mu      sync.Mutex
	max     int
	entries []HistoryEntry
}

func NewHistoryRepoMem(max int) *HistoryRepoMem {
	if max <= 0 {
		max = DefaultHistoryLimit
	}
	return &HistoryRepoMem{max: max}
}

func (r *HistoryRepoMem) Record(ctx context.Context, e HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]HistoryEntry{cloneEntry(e)}, r.entries...)
	if len(r.entries) > r.max {
		r.entries = r.entries[:r.max]
	}
	return nil
}

func (r *HistoryRepoMem) Recent(ctx context.Context, limit, offset int) ([]HistoryEntry, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := len(r.entries)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]HistoryEntry, 0, end-offset)
	for _, e := range r.entries[offset:end] {
		out = append(out, cloneEntry(e))
	}
	return out, total, nil
}

func cloneEntry(e HistoryEntry) HistoryEntry {
	if e.Result.Probabilities != nil {
		dist := make(map[Diagnosis]float64, len(e.Result.Probabilities))
		for d, p := range e.Result.Probabilities {
			dist[d] = p
		}
		e.Result.Probabilities = dist
	}
	return e
}
