package hematology

import "context"

// HistoryRepository stores recent classification results for display.
// Implementations retain at most a fixed number of entries, newest
// first.
type HistoryRepository interface {
	Record(ctx context.Context, e HistoryEntry) error
	Recent(ctx context.Context, limit, offset int) ([]HistoryEntry, int, error)
}
