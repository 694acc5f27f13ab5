// Package session records completed study sessions.
//
// Each finished study phase produces a Record: which plant variant grew,
// how long the session was planned for, when it ran, and where the saved
// SVG lives. Records are persisted as one JSON file each by FileStore,
// which is the only backend — sessions are strictly local artifacts of a
// single-user CLI.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Record is one completed study session.
type Record struct {
	ID           string    `json:"id"`
	Variant      string    `json:"variant"`
	PlannedMins  float64   `json:"planned_minutes"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	SVGPath      string    `json:"svg_path,omitempty"`
	Interrupted  bool      `json:"interrupted,omitempty"`
	BreakSkipped bool      `json:"break_skipped,omitempty"`
}

// NewRecord creates a record for a study phase that started at the given
// time. FinishedAt and SVGPath are filled in when the phase completes.
func NewRecord(variant string, planned time.Duration, startedAt time.Time) *Record {
	return &Record{
		ID:          uuid.NewString(),
		Variant:     variant,
		PlannedMins: planned.Minutes(),
		StartedAt:   startedAt,
	}
}

// Key derives the date/time file key used for saved plant drawings,
// e.g. "2026-08-24|14:32:01". One plant is saved per completed study
// session, so second resolution is plenty.
func Key(t time.Time) string {
	return t.Format("2006-01-02|15:04:05")
}
