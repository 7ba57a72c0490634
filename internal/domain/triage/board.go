package triage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hemoscan/hemoscan/internal/domain/record"
	"github.com/hemoscan/hemoscan/internal/platform/schedule"
)

// DefaultNewTTL is how long an admission stays highlighted as new.
const DefaultNewTTL = 3 * time.Second

// Board is the ordered triage queue. All access is serialized through
// an internal mutex; the visible sequence is always sorted by risk
// score descending, stable for equal scores. The board owns the decay
// timer that clears new-admission highlighting.
type Board struct {
	mu      sync.Mutex
	entries []*Entry
	newTTL  time.Duration
	decay   *schedule.Task
}

// NewBoard creates an empty board. ttl is the new-flag decay delay; a
// non-positive ttl selects DefaultNewTTL.
func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = DefaultNewTTL
	}
	return &Board{newTTL: ttl, decay: schedule.NewTask()}
}

// Admit appends an entry marked new, re-sorts the board, and restarts
// the decay timer. The assigned id is returned. The re-sort happens
// atomically with the append: no reader observes a partially sorted
// board.
func (b *Board) Admit(e Entry) uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()

	ent := e
	if ent.ID == uuid.Nil {
		ent.ID = uuid.New()
	}
	if ent.AdmittedAt.IsZero() {
		ent.AdmittedAt = time.Now().UTC()
	}
	ent.IsNew = true
	ent.Tier = SeverityTierOf(ent.RiskScore)

	b.entries = append(b.entries, &ent)
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].RiskScore > b.entries[j].RiskScore
	})

	b.decay.After(b.newTTL, b.clearNew)
	return ent.ID
}

// ManualAdmit validates caller-supplied fields, then admits.
func (b *Board) ManualAdmit(name string, age, riskScore int, diagnosis string) (uuid.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return uuid.Nil, record.Missing("name")
	}
	if age <= 0 {
		return uuid.Nil, record.Invalid("age", "must be a positive integer")
	}
	if riskScore < 0 || riskScore > 100 {
		return uuid.Nil, record.Invalid("risk_score", "must be between 0 and 100")
	}
	if strings.TrimSpace(diagnosis) == "" {
		return uuid.Nil, record.Missing("diagnosis")
	}
	return b.Admit(Entry{
		Name:      strings.TrimSpace(name),
		Age:       age,
		RiskScore: riskScore,
		Diagnosis: strings.TrimSpace(diagnosis),
	}), nil
}

// Snapshot returns the ordered entries as value copies.
func (b *Board) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[i] = *e
	}
	return out
}

// Get returns a copy of the entry with the given id.
func (b *Board) Get(id uuid.UUID) (Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.entries {
		if e.ID == id {
			return *e, true
		}
	}
	return Entry{}, false
}

// Len reports the number of admitted entries.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Stop cancels any pending decay run. Entries keep their current
// flags.
func (b *Board) Stop() {
	b.decay.Stop()
}

// clearNew settles every entry in one batch.
func (b *Board) clearNew() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.entries {
		e.IsNew = false
	}
}
