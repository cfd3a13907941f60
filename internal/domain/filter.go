package domain

// EntryFilter defines parameters for listing a user's journal entries.
// Zero-value fields are not applied.
type EntryFilter struct {
	// Type restricts results to one activity type.
	Type *ActivityType

	// FromTimestamp / ToTimestamp bound the ISO-8601 timestamp column
	// (inclusive). Day keys may be passed by expanding them to the day's
	// "T00:00:00" / "T23:59:59.999Z" instants.
	FromTimestamp string
	ToTimestamp   string

	// Limit caps the number of rows returned. Default 100, max 500.
	Limit int

	// Offset skips rows for offset pagination.
	Offset int
}

const (
	defaultEntryLimit = 100
	maxEntryLimit     = 500
)

// Normalize applies defaults and clamps values.
func (f *EntryFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultEntryLimit
	}
	if f.Limit > maxEntryLimit {
		f.Limit = maxEntryLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
