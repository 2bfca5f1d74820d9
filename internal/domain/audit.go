package domain

import (
	"encoding/json"
	"time"
)

// AuditEntry is the append-only record of one state-changing action.
// Reason is mandatory for freeze/unfreeze, refund and penalty actions and
// validated at the usecase boundary, never defaulted here.
type AuditEntry struct {
	ID         string
	ActorID    string
	Action     string
	TargetType string
	TargetID   string
	Reason     string
	Before     []byte
	After      []byte
	CreatedAt  time.Time
}

// Snapshot serializes an entity for a before/after pair. Marshal failures
// degrade to nil rather than blocking the action being audited.
func Snapshot(v any) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

type AuditSink interface {
	Append(entry *AuditEntry) error
	GetEntries(targetType, targetID string, page, limit int64) ([]*AuditEntry, int64, error)
}
