package model

import "time"

// MaxSpan bounds any requested interval, exempt roles included.
const MaxSpan = 366 * 24 * time.Hour

// Interval is a half-open [Start, End) range in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}

	if end.Sub(start) > MaxSpan {
		return Interval{}, ErrIntervalTooLong
	}

	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// Overlaps reports whether the two ranges share any instant. Touching endpoints do not.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
