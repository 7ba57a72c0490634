package cohort

import "github.com/hemoscan/hemoscan/internal/domain/record"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ClassifyBatch runs the aggregator over one parsed upload.
func (s *Service) ClassifyBatch(rows []record.Raw) (*Batch, error) {
	return Aggregate(rows)
}
