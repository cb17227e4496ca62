package crsdk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedNow is a Friday afternoon with sub-second noise, so truncation
// behaviour is visible.
var fixedNow = time.Date(2026, time.August, 28, 14, 30, 45, 123_000_000, time.UTC)

func fixedResolver() *RangeResolver {
	return &RangeResolver{Now: func() time.Time { return fixedNow }}
}

func TestResolveShortcuts(t *testing.T) {
	t.Parallel()

	r := fixedResolver()

	resolve := func(t *testing.T, sc Shortcut) DateRange {
		t.Helper()
		dr, err := r.Resolve(context.Background(), RangeRequest{Shortcut: sc})
		require.NoError(t, err)
		return dr
	}

	t.Run("Today", func(t *testing.T) {
		dr := resolve(t, ShortcutToday)
		require.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, fixedNow, dr.End)
	})

	t.Run("Yesterday ends on the current day", func(t *testing.T) {
		// Historical quirk: the window runs to the end of today, not the
		// end of yesterday. Do not "fix" without a confirmed behaviour
		// change from the API owners.
		dr := resolve(t, ShortcutYesterday)
		require.Equal(t, time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, time.Date(2026, time.August, 28, 23, 59, 59, 999_000_000, time.UTC), dr.End)
	})

	t.Run("SinceYesterday", func(t *testing.T) {
		dr := resolve(t, ShortcutSinceYesterday)
		require.Equal(t, time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, fixedNow, dr.End)
	})

	t.Run("ThisWeek", func(t *testing.T) {
		dr := resolve(t, ShortcutThisWeek)
		require.Equal(t, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, time.Monday, dr.Begin.Weekday())
		require.Equal(t, fixedNow, dr.End)
	})

	t.Run("Last30Days", func(t *testing.T) {
		dr := resolve(t, ShortcutLast30Days)
		require.Equal(t, time.Date(2026, time.July, 29, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, fixedNow, dr.End)
	})

	t.Run("OneYear", func(t *testing.T) {
		dr := resolve(t, ShortcutOneYear)
		require.Equal(t, time.Date(2025, time.August, 28, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, fixedNow, dr.End)
	})

	t.Run("unknown shortcut", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), RangeRequest{Shortcut: Shortcut("Fortnight")})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestThisWeekAlwaysStartsMonday(t *testing.T) {
	t.Parallel()

	// Walk a full week of "now" values; the computed begin must always be
	// the most recent Monday.
	for day := 0; day < 7; day++ {
		now := fixedNow.AddDate(0, 0, day)
		r := &RangeResolver{Now: func() time.Time { return now }}

		dr, err := r.Resolve(context.Background(), RangeRequest{Shortcut: ShortcutThisWeek})
		require.NoError(t, err)
		require.Equal(t, time.Monday, dr.Begin.Weekday())
		require.LessOrEqual(t, now.Sub(dr.Begin), 7*24*time.Hour)
		require.False(t, dr.Begin.After(now))
	}
}

func TestResolveExplicit(t *testing.T) {
	t.Parallel()

	r := fixedResolver()

	t.Run("pair widened to whole days", func(t *testing.T) {
		dr, err := r.Resolve(context.Background(), RangeRequest{
			Begin: time.Date(2026, time.March, 1, 10, 15, 0, 0, time.UTC),
			End:   time.Date(2026, time.March, 3, 4, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, time.Date(2026, time.March, 3, 23, 59, 59, 999_000_000, time.UTC), dr.End)
	})

	t.Run("begin without end", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), RangeRequest{
			Begin: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("end without begin", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), RangeRequest{
			End: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("begin after end", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), RangeRequest{
			Begin: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

type stubPicker struct {
	begin, end time.Time
	err        error
}

func (p stubPicker) PickRange(context.Context) (time.Time, time.Time, error) {
	return p.begin, p.end, p.err
}

func TestResolvePickerFallback(t *testing.T) {
	t.Parallel()

	t.Run("picked pair is widened", func(t *testing.T) {
		r := &RangeResolver{
			Now: func() time.Time { return fixedNow },
			Picker: stubPicker{
				begin: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
				end:   time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC),
			},
		}

		dr, err := r.Resolve(context.Background(), RangeRequest{})
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), dr.Begin)
		require.Equal(t, time.Date(2026, time.May, 2, 23, 59, 59, 999_000_000, time.UTC), dr.End)
	})

	t.Run("cancellation passes through", func(t *testing.T) {
		r := &RangeResolver{Picker: stubPicker{err: ErrCancelled}}

		_, err := r.Resolve(context.Background(), RangeRequest{})
		require.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("no picker configured", func(t *testing.T) {
		r := &RangeResolver{}

		_, err := r.Resolve(context.Background(), RangeRequest{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestParseShortcut(t *testing.T) {
	t.Parallel()

	sc, err := ParseShortcut("last30days")
	require.NoError(t, err)
	require.Equal(t, ShortcutLast30Days, sc)

	sc, err = ParseShortcut("ThisWeek")
	require.NoError(t, err)
	require.Equal(t, ShortcutThisWeek, sc)

	_, err = ParseShortcut("LastCentury")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDateRangeLayouts(t *testing.T) {
	t.Parallel()

	dr := DateRange{
		Begin: time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.August, 28, 23, 59, 59, 999_000_000, time.UTC),
	}

	require.Equal(t, "2026-08-27T00:00:00.000Z", dr.BeginString(LayoutMillis))
	require.Equal(t, "2026-08-28T23:59:59.999Z", dr.EndString(LayoutMillis))
	require.Equal(t, "2026-08-27T00:00:00", dr.BeginString(LayoutSeconds))
	require.Equal(t, "2026-08-28T23:59:59", dr.EndString(LayoutSeconds))

	// Non-UTC inputs are normalized on formatting.
	loc := time.FixedZone("AEST", 10*3600)
	shifted := DateRange{Begin: dr.Begin.In(loc), End: dr.End.In(loc)}
	require.Equal(t, "2026-08-27T00:00:00.000Z", shifted.BeginString(LayoutMillis))
}
