package journal

import (
	"time"

	"github.com/pkg/errors"
)

// Repository handles all journal reads and writes
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Record stores a finished invocation. err decides the outcome and is kept as text.
func (r *Repository) Record(run *Run, err error) error {
	run.Outcome = OutcomeOf(err)
	if err != nil {
		run.Error = err.Error()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	result := r.db.Create(run)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert run")
	}
	return nil
}

// Recent returns up to limit runs, newest first
func (r *Repository) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []Run
	result := r.db.Order("started_at DESC").Order("id DESC").Limit(limit).Find(&runs)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query runs")
	}
	return runs, nil
}

// CountByOutcome returns how many runs ended with each outcome
func (r *Repository) CountByOutcome() (map[Outcome]int64, error) {
	var rows []struct {
		Outcome Outcome
		Total   int64
	}
	result := r.db.Model(&Run{}).
		Select("outcome, COUNT(*) as total").
		Group("outcome").
		Scan(&rows)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to count runs")
	}

	counts := make(map[Outcome]int64, len(rows))
	for _, row := range rows {
		counts[row.Outcome] = row.Total
	}
	return counts, nil
}
