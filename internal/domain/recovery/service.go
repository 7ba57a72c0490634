package recovery

import "github.com/hemoscan/hemoscan/internal/domain/record"

type Service struct {
	scorer TrajectoryScorer
}

// NewService builds the recovery service around the given scorer. A
// nil scorer selects the nominal rule model.
func NewService(scorer TrajectoryScorer) *Service {
	if scorer == nil {
		scorer = RuleScorer{}
	}
	return &Service{scorer: scorer}
}

// AssessCheckIn normalizes one raw check-in row and scores it.
func (s *Service) AssessCheckIn(raw record.Raw) (TrajectoryResult, error) {
	in, err := NormalizeInput(raw)
	if err != nil {
		return TrajectoryResult{}, err
	}
	return s.scorer.Score(in), nil
}

// Assess scores an already-normalized input.
func (s *Service) Assess(in *TrajectoryInput) TrajectoryResult {
	return s.scorer.Score(in)
}
