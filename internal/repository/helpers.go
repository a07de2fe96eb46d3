package repository

import (
	"database/sql"
	"time"
)

// Timestamps are persisted as epoch milliseconds, matching the backup
// wire format so round-trips lose no precision.

func timeToMs(t time.Time) int64 {
	return t.UnixMilli()
}

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// nullableTimeToMs converts a *time.Time to a bind value: SQL NULL for nil.
func nullableTimeToMs(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

// parseNullableMs converts a scanned epoch-ms column to *time.Time.
func parseNullableMs(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := msToTime(v.Int64)
	return &t
}

// nullStrToPtr converts a scanned nullable text column to *string.
// Empty strings come back as nil to preserve the null-vs-empty contract.
func nullStrToPtr(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	s := v.String
	return &s
}

// nullFloatToPtr converts a scanned nullable real column to *float64.
func nullFloatToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
