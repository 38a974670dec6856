package mappers

import "time"

// millisToTime converts a Unix millisecond timestamp to time.Time.
func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// timeToMillisPtr converts an optional time to an optional millisecond timestamp.
func timeToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// millisToTimePtr converts an optional millisecond timestamp to an optional time.
func millisToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
