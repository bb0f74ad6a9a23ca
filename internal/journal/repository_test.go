package journal

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/pkg/errors"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "nested", "journal.db"))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Initialize(); err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}
	return NewRepository(db)
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Outcome
	}{
		{"Success", nil, OutcomeCompleted},
		{"Interrupted", errors.Wrap(domain.ErrInterrupted, "stopped in loop 2"), OutcomeInterrupted},
		{"Validation", &domain.BoundsError{Axis: "x", Value: 3000, Monitor: 1, Width: 2560, Height: 1440}, OutcomeFailed},
		{"Backend", fmt.Errorf("SendInput failed"), OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutcomeOf(tt.err); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestRepository_RecordAndRecent(t *testing.T) {
	repo := openTestRepo(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []struct {
		run *Run
		err error
	}{
		{&Run{StartedAt: base, Command: "run", Loops: 3, LoopsCompleted: 3, Clicks: 6, DurationMs: 5000}, nil},
		{&Run{StartedAt: base.Add(time.Minute), Command: "pick", Captured: 2}, nil},
		{&Run{StartedAt: base.Add(2 * time.Minute), Command: "run", Loops: 10, LoopsCompleted: 1}, errors.Wrap(domain.ErrInterrupted, "stopped")},
	}
	for _, r := range runs {
		if err := repo.Record(r.run, r.err); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
		if r.run.ID == 0 {
			t.Error("record did not assign an ID")
		}
	}

	recent, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(recent))
	}
	if recent[0].Command != "run" || recent[0].Outcome != OutcomeInterrupted {
		t.Errorf("expected newest interrupted run first, got %+v", recent[0])
	}
	if recent[0].Error == "" {
		t.Error("error text should be stored")
	}
	if recent[1].Command != "pick" || recent[1].Captured != 2 {
		t.Errorf("unexpected second run: %+v", recent[1])
	}

	all, err := repo.Recent(0)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected default limit to return all 3 runs, got %d (%v)", len(all), err)
	}
	if all[2].Duration() != 5*time.Second {
		t.Errorf("expected 5s duration, got %v", all[2].Duration())
	}
}

func TestRepository_CountByOutcome(t *testing.T) {
	repo := openTestRepo(t)

	_ = repo.Record(&Run{Command: "run"}, nil)
	_ = repo.Record(&Run{Command: "run"}, nil)
	_ = repo.Record(&Run{Command: "run"}, fmt.Errorf("boom"))

	counts, err := repo.CountByOutcome()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts[OutcomeCompleted] != 2 || counts[OutcomeFailed] != 1 || counts[OutcomeInterrupted] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestRecord_DefaultsStartTime(t *testing.T) {
	repo := openTestRepo(t)
	run := &Run{Command: "pick"}
	if err := repo.Record(run, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.StartedAt.IsZero() {
		t.Error("StartedAt should default to now")
	}
}
