package service

import "time"

// nowUTC returns the current time truncated to millisecond precision,
// matching what storage and the backup wire format can represent.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
