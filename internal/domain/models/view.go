// internal/domain/models/view.go
package models

import "fmt"

// View is the time granularity requested for analytic queries.
type View string

// Views supported by the metrics backend.
const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// AllViews returns all valid views.
func AllViews() []View {
	return []View{ViewDay, ViewWeek, ViewMonth}
}

// ParseView validates a view string from a request or config value.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown view %q (want day, week, or month)", s)
}

// Filter scopes analytic queries to a single journal entry or a single
// chat session. At most one is meaningful at a time; when both are set
// the entry id takes precedence at the call site. Filters are replaced
// whole, never merged field-by-field.
type Filter struct {
	EntryID   *int64 `json:"entry_id,omitempty"`
	SessionID *int64 `json:"session_id,omitempty"`
}

// Equal reports whether two filters have the same field values.
// Two unset pointers compare equal; set pointers compare by value,
// not identity.
func (f Filter) Equal(o Filter) bool {
	return int64PtrEqual(f.EntryID, o.EntryID) && int64PtrEqual(f.SessionID, o.SessionID)
}

// IsZero reports whether no scope is active.
func (f Filter) IsZero() bool {
	return f.EntryID == nil && f.SessionID == nil
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
