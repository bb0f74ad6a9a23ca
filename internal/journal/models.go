package journal

import (
	"time"

	"github.com/genricoloni/clickloop/internal/domain"
)

// Outcome classifies how an invocation ended
type Outcome string

const (
	OutcomeCompleted   Outcome = "completed"
	OutcomeInterrupted Outcome = "interrupted"
	OutcomeFailed      Outcome = "failed"
)

// OutcomeOf maps an invocation error to its outcome
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCompleted
	case domain.IsCancellation(err):
		return OutcomeInterrupted
	default:
		return OutcomeFailed
	}
}

// Run is one journal entry
type Run struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StartedAt      time.Time `gorm:"not null;index" json:"started_at"`
	Command        string    `gorm:"not null;index" json:"command"` // "run" or "pick"
	ConfigPath     string    `gorm:"not null" json:"config_path"`
	Displays       int       `gorm:"not null;default:0" json:"displays"`
	Coordinates    int       `gorm:"not null;default:0" json:"coordinates"`
	Loops          int       `gorm:"not null;default:0" json:"loops"`
	LoopsCompleted int       `gorm:"not null;default:0" json:"loops_completed"`
	Clicks         int       `gorm:"not null;default:0" json:"clicks"`
	Captured       int       `gorm:"not null;default:0" json:"captured"`
	DurationMs     int64     `gorm:"not null;default:0" json:"duration_ms"`
	Outcome        Outcome   `gorm:"not null;index" json:"outcome"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Duration returns the recorded wall time
func (r *Run) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}
