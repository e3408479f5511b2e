package report

import (
	"strings"
	"time"
)

// Date layouts accepted by ResolveDate.
const (
	dateLayoutLong = "January 2, 2006"
	dateLayoutISO  = "2006-01-02"
)

// ResolveDate handles the "auto" syntax for report date values.
//   - ""            -> empty (no date line)
//   - "auto"        -> current date in long form ("March 1, 2026")
//   - "auto:iso"    -> current date as YYYY-MM-DD
//   - anything else -> returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) string {
	switch strings.ToLower(value) {
	case "auto":
		return t.Format(dateLayoutLong)
	case "auto:iso":
		return t.Format(dateLayoutISO)
	}
	return value
}
