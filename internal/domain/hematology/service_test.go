package hematology

import (
	"context"
	"errors"
	"testing"

	"github.com/hemoscan/hemoscan/internal/domain/record"
)

// -- Mock Repository --

type mockHistoryRepo struct {
	recorded []HistoryEntry
	fail     error
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{}
}

func (m *mockHistoryRepo) Record(_ context.Context, e HistoryEntry) error {
	if m.fail != nil {
		return m.fail
	}
	m.recorded = append([]HistoryEntry{e}, m.recorded...)
	return nil
}

func (m *mockHistoryRepo) Recent(_ context.Context, limit, offset int) ([]HistoryEntry, int, error) {
	return m.recorded, len(m.recorded), nil
}

func newTestService() (*Service, *mockHistoryRepo) {
	repo := newMockHistoryRepo()
	return NewService(repo), repo
}

// -- Tests --

func TestClassifyRecord(t *testing.T) {
	svc, repo := newTestService()
	raw := record.Raw{"sex": "female", "age": 28.0, "hemoglobin": 11.2, "mcv": 85.0}

	res, err := svc.ClassifyRecord(context.Background(), raw, "Jane Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Diagnosis != DiagnosisMild {
		t.Errorf("expected Mild, got %s", res.Diagnosis)
	}
	if res.RiskScore != 5.7 {
		t.Errorf("expected risk 5.7, got %v", res.RiskScore)
	}
	if len(repo.recorded) != 1 {
		t.Fatalf("expected 1 recorded entry, got %d", len(repo.recorded))
	}
	entry := repo.recorded[0]
	if entry.PatientName != "Jane Doe" {
		t.Errorf("expected patient name on history entry, got %q", entry.PatientName)
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected history entry timestamp to be set")
	}
	if entry.Result.Diagnosis != res.Diagnosis {
		t.Errorf("expected recorded result to match returned result")
	}
}

func TestClassifyRecord_SexRequired(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.ClassifyRecord(context.Background(), record.Raw{"hemoglobin": 9.0}, "")
	var ve *record.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "sex" {
		t.Errorf("expected field sex, got %q", ve.Field)
	}
	if len(repo.recorded) != 0 {
		t.Error("expected nothing recorded on validation failure")
	}
}

func TestClassifyRecord_RepoErrorPropagates(t *testing.T) {
	repo := newMockHistoryRepo()
	repo.fail = errors.New("store unavailable")
	svc := NewService(repo)

	_, err := svc.ClassifyRecord(context.Background(), record.Raw{"sex": "male", "hemoglobin": 10.0}, "")
	if err == nil {
		t.Fatal("expected error from history store")
	}
}

func TestRecentResults(t *testing.T) {
	svc, repo := newTestService()
	for i := 0; i < 3; i++ {
		_, _ = svc.ClassifyRecord(context.Background(), record.Raw{"sex": "male", "hemoglobin": 10.0}, "")
	}
	entries, total, err := svc.RecentResults(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(entries) != 3 {
		t.Errorf("expected 3 entries, got len=%d total=%d", len(entries), total)
	}
	if len(repo.recorded) != 3 {
		t.Errorf("expected 3 recorded, got %d", len(repo.recorded))
	}
}
