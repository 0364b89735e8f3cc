package domain

import "time"

// convertAll maps fn over rs into a fresh slice. A nil or empty input yields
// an empty, non-nil slice so callers can range and encode it as [].
func convertAll[R, T any](rs []R, fn func(R) T) []T {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		out = append(out, fn(r))
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Catalog timestamps are Unix milliseconds.
func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
