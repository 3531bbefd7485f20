package mphapi

import (
	"encoding/json"
	"fmt"
)

// Date is a calendar date serialized as an 8-character YYYYMMDD string.
// No calendar validation is performed; the pricing service owns validity.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date from year, month, and day values.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// String returns the YYYYMMDD form with month and day zero-padded to 2 digits.
func (d Date) String() string {
	return fmt.Sprintf("%d%02d%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether the date is the zero value. Zero dates are omitted
// from request bodies via the omitzero JSON option.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// MarshalJSON encodes the date as its YYYYMMDD string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an 8-digit YYYYMMDD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if len(s) != 8 {
		return fmt.Errorf("parse date: expected 8 digits, got %q", s)
	}
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%4d%2d%2d", &year, &month, &day); err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = Date{Year: year, Month: month, Day: day}
	return nil
}
