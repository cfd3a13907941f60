package domain

import "time"

// CalendarDay is the derived per-day summary used for heat-map rendering.
// It is computed fresh per month view and never persisted.
type CalendarDay struct {
	Date          time.Time
	HasEntries    bool
	EntryCount    int
	AverageRating *float64
}

// Tier classifies a calendar day for heat-map coloring.
type Tier string

const (
	TierNone    Tier = "none"    // no entries
	TierUnrated Tier = "unrated" // entries but no extractable rating
	TierBest    Tier = "best"    // average rating >= 8
	TierGood    Tier = "good"    // >= 6
	TierFair    Tier = "fair"    // >= 4
	TierPoor    Tier = "poor"    // below 4
)

// Tier returns the heat-map tier for the day. Boundaries are inclusive on
// the lower bound of each tier.
func (d CalendarDay) Tier() Tier {
	if !d.HasEntries {
		return TierNone
	}
	if d.AverageRating == nil {
		return TierUnrated
	}
	switch r := *d.AverageRating; {
	case r >= 8:
		return TierBest
	case r >= 6:
		return TierGood
	case r >= 4:
		return TierFair
	default:
		return TierPoor
	}
}

// FormatDay renders a date as the yyyy-MM-dd day key used for routing and
// grouping. It is built from the year/month/day triple, never re-derived
// from a timestamp string.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
