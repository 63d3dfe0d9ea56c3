package domain

import "time"

// DisplayDateLayout is the wire format for all user-facing dates (DD/MM/YYYY).
// Ledger ordering is by insertion, never by parsing these strings.
const DisplayDateLayout = "02/01/2006"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Touch updates the audit timestamps for a mutation at the given time.
func (a *AuditFields) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.LastUpdatedAt = now
}
