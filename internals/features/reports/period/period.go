// internals/features/reports/period/period.go
//
// Reporting windows are anchored to recurring weekday meetings, so a
// "month" of reporting straddles two calendar months: e.g. the financial
// window for March runs from the 3rd Sunday of February through the 2nd
// Sunday of March. The stored report month stays calendar-aligned; the
// window here is derived for display and aggregation only, never persisted.
package period

import (
	"time"

	"campusreach_backend/internals/apperr"
)

// Window is the closed-inclusive reporting interval: Start at 00:00:00.000,
// End at 23:59:59.999.
type Window struct {
	Start time.Time `json:"period_start"`
	End   time.Time `json:"period_end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// bound picks one edge of a window: the occurrence-th weekday of either the
// target month or the one before it, shifted by OffsetDays.
type bound struct {
	Weekday       time.Weekday
	Occurrence    int
	PreviousMonth bool
	OffsetDays    int
}

// Rule pairs the two bounds of a family's reporting window.
type Rule struct {
	Name  string
	Start bound
	End   bound
}

var (
	// BasicOutreachRule: 3rd Sunday of previous month → 2nd Sunday of month.
	BasicOutreachRule = Rule{
		Name:  "basic_outreach",
		Start: bound{Weekday: time.Sunday, Occurrence: 3, PreviousMonth: true},
		End:   bound{Weekday: time.Sunday, Occurrence: 2},
	}

	// FellowshipOutreachRule: the Monday after the 2nd Sunday of the
	// previous month → 3rd Sunday of month.
	FellowshipOutreachRule = Rule{
		Name:  "fellowship_outreach",
		Start: bound{Weekday: time.Sunday, Occurrence: 2, PreviousMonth: true, OffsetDays: 1},
		End:   bound{Weekday: time.Sunday, Occurrence: 3},
	}

	// FinancialRule: same bounds as the basic outreach rule.
	FinancialRule = Rule{
		Name:  "financial",
		Start: bound{Weekday: time.Sunday, Occurrence: 3, PreviousMonth: true},
		End:   bound{Weekday: time.Sunday, Occurrence: 2},
	}

	// ActivityRule: activity reports share the financial window bounds.
	ActivityRule = Rule{
		Name:  "activity",
		Start: bound{Weekday: time.Sunday, Occurrence: 3, PreviousMonth: true},
		End:   bound{Weekday: time.Sunday, Occurrence: 2},
	}
)

// NthWeekday returns the date (midnight UTC) of the occurrence-th weekday in
// the given month. A 5th occurrence does not exist in every month; callers
// here only ask for the 2nd and 3rd, which always do.
func NthWeekday(year int, month time.Month, weekday time.Weekday, occurrence int) (time.Time, error) {
	if occurrence < 1 {
		return time.Time{}, apperr.PeriodResolution("weekday occurrence must be >= 1")
	}
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for d.Month() == month {
		if d.Weekday() == weekday {
			count++
			if count == occurrence {
				return d, nil
			}
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, apperr.PeriodResolution("requested weekday occurrence does not exist in month")
}

// Resolve computes the reporting window for (year, month) under the rule.
// January resolves its previous month against December of year-1.
func Resolve(year int, month time.Month, rule Rule) (Window, error) {
	start, err := resolveBound(year, month, rule.Start)
	if err != nil {
		return Window{}, err
	}
	end, err := resolveBound(year, month, rule.End)
	if err != nil {
		return Window{}, err
	}

	return Window{
		Start: startOfDay(start),
		End:   endOfDay(end),
	}, nil
}

func resolveBound(year int, month time.Month, b bound) (time.Time, error) {
	y, m := year, month
	if b.PreviousMonth {
		y, m = previousMonth(year, month)
	}
	d, err := NthWeekday(y, m, b.Weekday, b.Occurrence)
	if err != nil {
		return time.Time{}, err
	}
	if b.OffsetDays != 0 {
		d = d.AddDate(0, 0, b.OffsetDays)
	}
	return d, nil
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
