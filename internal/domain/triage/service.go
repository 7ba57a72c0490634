package triage

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/hemoscan/hemoscan/internal/domain/hematology"
	"github.com/hemoscan/hemoscan/internal/domain/record"
)

type Service struct {
	board *Board
}

func NewService(board *Board) *Service {
	return &Service{board: board}
}

// AdmitFromRecord classifies a raw clinical record and admits the
// patient with the derived risk score and band label.
func (s *Service) AdmitFromRecord(raw record.Raw, name string) (Entry, error) {
	if strings.TrimSpace(name) == "" {
		return Entry{}, record.Missing("name")
	}
	rec, err := hematology.NormalizeRecord(raw)
	if err != nil {
		return Entry{}, err
	}
	res := hematology.Classify(rec)
	id := s.board.Admit(Entry{
		Name:      strings.TrimSpace(name),
		Age:       rec.Age,
		RiskScore: int(math.Round(res.RiskScore)),
		Diagnosis: string(res.Diagnosis),
	})
	ent, _ := s.board.Get(id)
	return ent, nil
}

// ManualAdmit validates operator-entered fields and admits.
func (s *Service) ManualAdmit(name string, age, riskScore int, diagnosis string) (Entry, error) {
	id, err := s.board.ManualAdmit(name, age, riskScore, diagnosis)
	if err != nil {
		return Entry{}, err
	}
	ent, _ := s.board.Get(id)
	return ent, nil
}

// BoardSnapshot returns the visible board order.
func (s *Service) BoardSnapshot() []Entry {
	return s.board.Snapshot()
}

// GetEntry returns one admitted entry by id.
func (s *Service) GetEntry(id uuid.UUID) (Entry, bool) {
	return s.board.Get(id)
}
