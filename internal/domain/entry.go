package domain

import (
	"time"

	"github.com/google/uuid"
)

// dayKeyLen is the length of the date portion of an ISO-8601 timestamp.
const dayKeyLen = len("2006-01-02")

// JournalEntry is one user-submitted journal record. Content is a
// schema-drifting JSON object whose shape depends on Type and on which
// historical version of the client produced it.
type JournalEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      ActivityType
	Date      string // human display string, not a sortable key
	Timestamp string // ISO-8601 instant; the true ordering/grouping key
	Content   map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayKey returns the date-only portion of the entry timestamp
// ("2024-03-05"). The substring is taken directly rather than parsed into a
// time.Time so that the grouping day never shifts under the server's local
// timezone.
func (e *JournalEntry) DayKey() string {
	if len(e.Timestamp) < dayKeyLen {
		return e.Timestamp
	}
	return e.Timestamp[:dayKeyLen]
}

// IsInProgressGame reports whether the entry is a Game entry with pregame
// content saved but postgame content not yet added.
func (e *JournalEntry) IsInProgressGame() bool {
	if e.Type != ActivityGame || e.Content == nil {
		return false
	}
	_, hasPregame := e.Content["pregame"]
	_, hasPostgame := e.Content["postgame"]
	return hasPregame && !hasPostgame
}

// NoonTimestamp returns the timezone-neutral instant used to stamp entries
// that carry only a calendar day. Noon UTC keeps the entry on the same
// calendar day for any plausible client UTC offset.
func NoonTimestamp(day time.Time) string {
	return day.Format("2006-01-02") + "T12:00:00Z"
}
