package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CST is the China Standard Time location (UTC+8)
var CST *time.Location

func init() {
	var err error
	CST, err = time.LoadLocation("Asia/Shanghai")
	if err != nil {
		// Fallback: create fixed zone if Asia/Shanghai not available
		CST = time.FixedZone("CST", 8*60*60)
	}
}

// Now returns the current time in CST
func Now() time.Time {
	return time.Now().In(CST)
}

// Common layouts
const (
	ISOLayout      = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// TodayDisplay returns today's date in the slip display form "2025.1.3".
func TodayDisplay() string {
	d := Now()
	return fmt.Sprintf("%d.%d.%d", d.Year(), int(d.Month()), d.Day())
}

// ParseDateISO converts a slip date ("2025.1.3", "2025/1/3", "2025-1-3")
// to ISO "2025-01-03". Returns "" when the input has no usable y.m.d parts.
func ParseDateISO(s string) string {
	y, m, d, ok := splitDate(s)
	if !ok {
		return ""
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, CST)
	return t.Format(ISOLayout)
}

// FormatDateInput canonicalizes a slip date to dot form "2025.1.3",
// returning the input unchanged when it does not parse.
func FormatDateInput(s string) string {
	y, m, d, ok := splitDate(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%d.%d.%d", y, m, d)
}

func splitDate(s string) (y, m, d int, ok bool) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '.' || r == '/' || r == '-'
	})
	if len(parts) < 3 {
		return 0, 0, 0, false
	}
	var err error
	if y, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if m, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if d, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return y, m, d, true
}

// AddMonths shifts a date by a number of months, clamping the day to the
// last day of the target month (Jan 31 - 1 month = Dec 31, Mar 31 - 1
// month = Feb 28/29).
func AddMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// MonthRange returns the first and last day of the given month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, CST)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// QuarterRange returns the first and last day of the given quarter (1-4).
func QuarterRange(year, quarter int) (time.Time, time.Time) {
	m := (quarter-1)*3 + 1
	start, _ := MonthRange(year, m)
	_, end := MonthRange(year, m+2)
	return start, end
}
