package calendar

import (
	"time"

	"github.com/athletemind/journal-backend/internal/domain"
)

// AggregateMonth folds a month's journal entries into exactly one
// CalendarDay per calendar day, ascending. Entries are grouped by the
// date prefix of their timestamp; an entry with malformed content still
// counts toward the day but contributes no rating. The day's average is
// taken over rated entries only.
func AggregateMonth(entries []domain.JournalEntry, year int, month time.Month) []domain.CalendarDay {
	type acc struct {
		count int
		sum   float64
		rated int
	}

	byDay := make(map[string]*acc)
	for i := range entries {
		e := &entries[i]
		a := byDay[e.DayKey()]
		if a == nil {
			a = &acc{}
			byDay[e.DayKey()] = a
		}
		a.count++

		if e.Content == nil {
			continue
		}
		if r, ok := inferRating(e.Content); ok {
			a.sum += r
			a.rated++
		}
	}

	days := DaysIn(year, month)
	out := make([]domain.CalendarDay, 0, days)
	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		day := domain.CalendarDay{Date: date}

		if a, ok := byDay[domain.FormatDay(date)]; ok {
			day.HasEntries = true
			day.EntryCount = a.count
			if a.rated > 0 {
				avg := a.sum / float64(a.rated)
				day.AverageRating = &avg
			}
		}

		out = append(out, day)
	}

	return out
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first of the month as an offset
// 0 (Sunday) through 6, used by clients to pad the heat-map grid.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}
