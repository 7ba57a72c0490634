package hematology

import (
	"context"
	"time"

	"github.com/hemoscan/hemoscan/internal/domain/record"
)

type Service struct {
	history HistoryRepository
}

func NewService(history HistoryRepository) *Service {
	return &Service{history: history}
}

// ClassifyRecord normalizes and classifies one raw row, recording the
// result in the recent-assessments history. patientName is optional
// display context and plays no part in classification.
func (s *Service) ClassifyRecord(ctx context.Context, raw record.Raw, patientName string) (ClassificationResult, error) {
	rec, err := NormalizeRecord(raw)
	if err != nil {
		return ClassificationResult{}, err
	}
	res := Classify(rec)
	entry := HistoryEntry{
		Timestamp:   time.Now().UTC(),
		PatientName: patientName,
		Result:      res,
	}
	if err := s.history.Record(ctx, entry); err != nil {
		return ClassificationResult{}, err
	}
	return res, nil
}

// RecentResults returns stored results, newest first, with the total
// retained count.
func (s *Service) RecentResults(ctx context.Context, limit, offset int) ([]HistoryEntry, int, error) {
	return s.history.Recent(ctx, limit, offset)
}
