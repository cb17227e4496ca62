package crsdk

import (
	"context"
	"strings"
	"time"
)

// Timestamp layouts used by the Control Room. Audit search expects
// millisecond precision with an explicit offset; Bot Insight expects
// second precision with no offset suffix.
const (
	LayoutMillis  = "2006-01-02T15:04:05.000Z07:00"
	LayoutSeconds = "2006-01-02T15:04:05"
)

// Shortcut is a symbolic date-range name understood by the resolver.
type Shortcut string

const (
	ShortcutYesterday      Shortcut = "Yesterday"
	ShortcutToday          Shortcut = "Today"
	ShortcutSinceYesterday Shortcut = "SinceYesterday"
	ShortcutThisWeek       Shortcut = "ThisWeek"
	ShortcutLast30Days     Shortcut = "Last30Days"
	ShortcutOneYear        Shortcut = "OneYear"
)

var shortcuts = []Shortcut{
	ShortcutYesterday,
	ShortcutToday,
	ShortcutSinceYesterday,
	ShortcutThisWeek,
	ShortcutLast30Days,
	ShortcutOneYear,
}

// ParseShortcut matches s against the known shortcuts, ignoring case.
func ParseShortcut(s string) (Shortcut, error) {
	for _, sc := range shortcuts {
		if strings.EqualFold(s, string(sc)) {
			return sc, nil
		}
	}
	return "", &ValidationError{Field: "shortcut", Message: "unknown range shortcut " + s}
}

// DateRange is a resolved begin/end pair in UTC with millisecond precision.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// BeginString formats the range start in the given layout, in UTC.
func (r DateRange) BeginString(layout string) string {
	return r.Begin.UTC().Format(layout)
}

// EndString formats the range end in the given layout, in UTC.
func (r DateRange) EndString(layout string) string {
	return r.End.UTC().Format(layout)
}

// IsZero reports whether neither boundary has been set.
func (r DateRange) IsZero() bool { return r.Begin.IsZero() && r.End.IsZero() }

// DatePicker supplies a begin/end date pair interactively. Implementations
// return ErrCancelled when the user aborts the selection.
type DatePicker interface {
	PickRange(ctx context.Context) (begin, end time.Time, err error)
}

// RangeRequest names what the caller wants resolved: a shortcut, an explicit
// begin/end date pair, or (all fields zero) an interactive pick.
type RangeRequest struct {
	Shortcut Shortcut
	Begin    time.Time
	End      time.Time
}

// RangeResolver turns a RangeRequest into a concrete DateRange.
//
// The zero value resolves shortcuts and explicit pairs against the real
// clock. Set Now to pin the clock in tests; set Picker to enable the
// no-argument interactive mode.
type RangeResolver struct {
	Now    func() time.Time
	Picker DatePicker
}

func (r *RangeResolver) now() time.Time {
	if r.Now != nil {
		return r.Now().UTC()
	}
	return time.Now().UTC()
}

// Resolve maps req onto a UTC begin/end pair.
//
// Supplying only one of the explicit dates is a ValidationError; supplying
// neither a shortcut nor dates falls back to the configured picker, whose
// cancellation surfaces as ErrCancelled.
func (r *RangeResolver) Resolve(ctx context.Context, req RangeRequest) (DateRange, error) {
	switch {
	case req.Shortcut != "":
		return r.resolveShortcut(req.Shortcut)

	case !req.Begin.IsZero() && !req.End.IsZero():
		return explicitRange(req.Begin, req.End)

	case !req.Begin.IsZero() || !req.End.IsZero():
		return DateRange{}, &ValidationError{
			Field:   "range",
			Message: "begin and end dates must be supplied together",
		}

	default:
		return r.pickRange(ctx)
	}
}

func (r *RangeResolver) resolveShortcut(sc Shortcut) (DateRange, error) {
	now := r.now()

	switch sc {
	case ShortcutYesterday:
		// End is 23:59:59.999 of the current day, not yesterday. This
		// matches the historical behaviour callers depend on; see the
		// regression test before changing it.
		return DateRange{
			Begin: midnight(now.AddDate(0, 0, -1)),
			End:   endOfDay(now),
		}, nil

	case ShortcutToday:
		return DateRange{Begin: midnight(now), End: now}, nil

	case ShortcutSinceYesterday:
		return DateRange{Begin: midnight(now.AddDate(0, 0, -1)), End: now}, nil

	case ShortcutThisWeek:
		// Days elapsed since the most recent Monday.
		offset := (int(now.Weekday()) + 6) % 7
		return DateRange{Begin: midnight(now.AddDate(0, 0, -offset)), End: now}, nil

	case ShortcutLast30Days:
		return DateRange{Begin: midnight(now.AddDate(0, 0, -30)), End: now}, nil

	case ShortcutOneYear:
		return DateRange{Begin: midnight(now.AddDate(0, 0, -365)), End: now}, nil

	default:
		return DateRange{}, &ValidationError{
			Field:   "shortcut",
			Message: "unknown range shortcut " + string(sc),
		}
	}
}

func (r *RangeResolver) pickRange(ctx context.Context) (DateRange, error) {
	if r.Picker == nil {
		return DateRange{}, &ValidationError{
			Field:   "range",
			Message: "no dates supplied and no picker configured",
		}
	}

	begin, end, err := r.Picker.PickRange(ctx)
	if err != nil {
		// ErrCancelled passes through untouched.
		return DateRange{}, err
	}

	return explicitRange(begin, end)
}

// explicitRange widens a date-only pair to whole days: begin at 00:00:00.000,
// end at 23:59:59.999, both UTC.
func explicitRange(begin, end time.Time) (DateRange, error) {
	b := midnight(begin.UTC())
	e := endOfDay(end.UTC())

	if b.After(e) {
		return DateRange{}, &ValidationError{
			Field:   "range",
			Message: "begin date is after end date",
		}
	}

	return DateRange{Begin: b, End: e}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.UTC)
}
