// Package store persists calculation results as an append-only action
// log. The engine itself never touches storage; these types sit at the
// persistence boundary and exist so the CLI and the aggregation layer have
// a working collaborator.
package store

import (
	"time"

	"github.com/rahulstox/ecopack/internal/carbon"
)

// ActionLogRecord is one stored calculation, keyed by (UserID, LoggedAt).
// RawInput preserves the original free-text description for audit.
type ActionLogRecord struct {
	ID       string                   `json:"id"`
	UserID   string                   `json:"user_id"`
	Result   carbon.CalculationResult `json:"result"`
	RawInput string                   `json:"raw_input,omitempty"`
	LoggedAt time.Time                `json:"logged_at"`
}

// Store is the persistence boundary for action log records. Implementations
// must be safe for concurrent use.
type Store interface {
	// Append stores one record.
	Append(rec ActionLogRecord) error

	// ListByUser returns a user's records with LoggedAt in [from, to],
	// in append order. Zero bounds disable that side of the range.
	ListByUser(userID string, from, to time.Time) ([]ActionLogRecord, error)

	// Users returns all user IDs in first-seen order.
	Users() ([]string, error)
}

// inRange reports whether ts falls within the optional [from, to] bounds.
func inRange(ts, from, to time.Time) bool {
	if !from.IsZero() && ts.Before(from) {
		return false
	}
	if !to.IsZero() && ts.After(to) {
		return false
	}
	return true
}
