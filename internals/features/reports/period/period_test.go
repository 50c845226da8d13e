package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      time.Month
		weekday    time.Weekday
		occurrence int
		want       string
		wantErr    bool
	}{
		{"first sunday feb 2025", 2025, time.February, time.Sunday, 1, "2025-02-02", false},
		{"second sunday feb 2025", 2025, time.February, time.Sunday, 2, "2025-02-09", false},
		{"third sunday feb 2025", 2025, time.February, time.Sunday, 3, "2025-02-16", false},
		{"second sunday mar 2025", 2025, time.March, time.Sunday, 2, "2025-03-09", false},
		{"third sunday mar 2025", 2025, time.March, time.Sunday, 3, "2025-03-16", false},
		{"third sunday dec 2024", 2024, time.December, time.Sunday, 3, "2024-12-15", false},
		{"fifth monday exists mar 2025", 2025, time.March, time.Monday, 5, "2025-03-31", false},
		{"fifth sunday missing feb 2025", 2025, time.February, time.Sunday, 5, "", true},
		{"zero occurrence", 2025, time.March, time.Sunday, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NthWeekday(tt.year, tt.month, tt.weekday, tt.occurrence)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, tt.weekday, got.Weekday())
		})
	}
}

func TestResolve_FinancialRule_March2025(t *testing.T) {
	// start = 3rd Sunday of Feb 2025, end = 2nd Sunday of Mar 2025
	w, err := Resolve(2025, time.March, FinancialRule)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.February, 16, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, time.March, 9, 23, 59, 59, int(999*time.Millisecond), time.UTC), w.End)
}

func TestResolve_BasicOutreachRule_MatchesFinancialBounds(t *testing.T) {
	a, err := Resolve(2025, time.March, BasicOutreachRule)
	require.NoError(t, err)
	c, err := Resolve(2025, time.March, FinancialRule)
	require.NoError(t, err)

	assert.Equal(t, c, a)
}

func TestResolve_FellowshipOutreachRule_March2025(t *testing.T) {
	// 2nd Sunday of Feb 2025 is 2025-02-09, so the window opens on Monday
	// 2025-02-10 and closes on the 3rd Sunday of March, 2025-03-16.
	w, err := Resolve(2025, time.March, FellowshipOutreachRule)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Monday, w.Start.Weekday())
	assert.Equal(t, time.Date(2025, time.March, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC), w.End)
}

func TestResolve_JanuaryWrapsToPreviousDecember(t *testing.T) {
	w, err := Resolve(2025, time.January, FinancialRule)
	require.NoError(t, err)

	// previous month must be December 2024
	assert.Equal(t, 2024, w.Start.Year())
	assert.Equal(t, time.December, w.Start.Month())
	assert.Equal(t, time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC), w.Start)
	// 2nd Sunday of Jan 2025
	assert.Equal(t, time.Date(2025, time.January, 12, 23, 59, 59, int(999*time.Millisecond), time.UTC), w.End)
}

func TestWindow_ContainsIsClosedInclusive(t *testing.T) {
	w, err := Resolve(2025, time.March, FinancialRule)
	require.NoError(t, err)

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Millisecond)))
	assert.False(t, w.Contains(w.End.Add(time.Millisecond)))
}
