package models

import (
	"bytes"
	"encoding/json"
	"time"

	"fjacquet/finance-cli/internal/dateutils"
)

// Date is a calendar value decoded from the API's ISO-8601 strings.
// JSON null and "" decode to the zero Date.
type Date struct {
	time.Time
}

// NewDate returns the UTC midnight Date for year/month/day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := dateutils.ParseISO(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON writes date-only values as YYYY-MM-DD and everything else as RFC 3339.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	if dateutils.IsDateOnly(d.Time) {
		return json.Marshal(dateutils.ToISODate(d.UTC()))
	}
	return json.Marshal(d.UTC().Format(time.RFC3339Nano))
}
