package insights

import (
	"fmt"
	"strings"
	"time"
)

// Date is a custom type that handles date-only JSON values
type Date struct {
	time.Time
}

// NewDate returns a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements json.Unmarshaler for Date. An unparsable value
// decodes to the zero Date rather than failing the whole snapshot; callers
// treat zero dates as absent (see the goal prediction path).
func (d *Date) UnmarshalJSON(data []byte) error {
	// Remove quotes
	str := strings.Trim(string(data), `"`)

	// Handle null/empty
	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	// Try parsing as date only first (YYYY-MM-DD)
	t, err := time.Parse("2006-01-02", str)
	if err == nil {
		d.Time = t
		return nil
	}

	// Try parsing as full timestamp (RFC3339)
	t, err = time.Parse(time.RFC3339, str)
	if err == nil {
		d.Time = t
		return nil
	}

	// Try parsing with time but no timezone
	t, err = time.Parse("2006-01-02T15:04:05", str)
	if err == nil {
		d.Time = t
		return nil
	}

	// Malformed dates degrade to absent instead of aborting the report
	d.Time = time.Time{}
	return nil
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	// Format as date only
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

// String returns the date as a string
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
