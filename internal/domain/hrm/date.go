package hrm

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const DateLayout = "2006-01-02"

// Date is a calendar date. A value that failed to parse keeps its raw text
// so validation can report it against the field instead of failing the
// whole decode.
type Date struct {
	t       time.Time
	raw     string
	invalid bool
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or RFC3339. Empty input is the zero Date.
func ParseDate(value string) Date {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}
	}
	if parsed, err := time.Parse(DateLayout, value); err == nil {
		return Date{t: parsed}
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := parsed.Date()
		return NewDate(y, m, d)
	}
	return Date{raw: value, invalid: true}
}

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return !d.invalid && d.t.IsZero() }

func (d Date) Valid() bool { return !d.invalid }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) String() string {
	if d.invalid {
		return d.raw
	}
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{raw: string(data), invalid: true}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// ValidationValue is what the validator sees: a time.Time when the date
// parsed, the raw text otherwise.
func (d Date) ValidationValue() any {
	if d.invalid {
		return d.raw
	}
	return d.t
}

func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}
	y, m, day := v.Time.Date()
	*d = NewDate(y, m, day)
	return nil
}

func (d Date) DateValue() (pgtype.Date, error) {
	if d.IsZero() || d.invalid {
		return pgtype.Date{}, nil
	}
	return pgtype.Date{Time: d.t, Valid: true}, nil
}
