package fingrow

import (
	"fmt"
	"iter"
	"strings"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }

// Window is a named date range filter relative to an as-of date.
type Window int

const (
	ThisMonth Window = iota
	LastMonth
	LastThreeMonths
	AllTime
)

func (w Window) String() string {
	switch w {
	case ThisMonth:
		return "this-month"
	case LastMonth:
		return "last-month"
	case LastThreeMonths:
		return "last-3-months"
	case AllTime:
		return "all-time"
	default:
		return "unknown"
	}
}

// Range resolves the window into a concrete date range relative to asOf.
// The second return value is false for AllTime, which filters nothing.
func (w Window) Range(asOf Date) (Range, bool) {
	switch w {
	case ThisMonth:
		return Monthly.Range(asOf), true
	case LastMonth:
		// Move to the first of the month before shifting, so that a short
		// target month cannot overflow the day back into the current one.
		return Monthly.Range(asOf.StartOf(Monthly).AddMonth(-1)), true
	case LastThreeMonths:
		return Range{From: asOf.StartOf(Monthly).AddMonth(-2), To: asOf.EndOf(Monthly)}, true
	default:
		return Range{}, false
	}
}

// ParseWindow parses a window name such as "this-month" or "all-time".
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "this-month":
		return ThisMonth, nil
	case "last-month":
		return LastMonth, nil
	case "last-3-months":
		return LastThreeMonths, nil
	case "all-time", "all":
		return AllTime, nil
	default:
		return AllTime, fmt.Errorf("unknown date range %q (want this-month, last-month, last-3-months or all-time)", s)
	}
}
