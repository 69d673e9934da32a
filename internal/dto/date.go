package dto

import (
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly marshals calendar dates as "YYYY-MM-DD", the format the front
// end sends for data_lancamento and data_competencia.
type DateOnly struct {
	time.Time
}

// ParseDateOnly parses a "YYYY-MM-DD" string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOnly{Time: t}, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Time.Format(dateOnlyLayout) + `"`), nil
}

// String returns the wire representation.
func (d DateOnly) String() string {
	return d.Time.Format(dateOnlyLayout)
}
