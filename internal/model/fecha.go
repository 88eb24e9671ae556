package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const layoutFecha = "2006-01-02"

// Fecha is a calendar date stored as SQL DATE and serialized as YYYY-MM-DD.
// The zero value means "no date" and is serialized as null.
type Fecha struct{ time.Time }

func NewFecha(year int, month time.Month, day int) Fecha {
	return Fecha{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseFecha accepts YYYY-MM-DD or an RFC 3339 timestamp, keeping only the date.
func ParseFecha(s string) (Fecha, error) {
	if t, err := time.Parse(layoutFecha, s); err == nil {
		return Fecha{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha invalida %q: se espera YYYY-MM-DD", s)
	}
	return NewFecha(t.Year(), t.Month(), t.Day()), nil
}

func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(layoutFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON treats null as a no-op, as encoding/json does for other types.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha invalida: %w", err)
	}
	if s == "" {
		*f = Fecha{}
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.String(), nil
}

func (f *Fecha) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = Fecha{}
	case time.Time:
		*f = NewFecha(v.Year(), v.Month(), v.Day())
	case string:
		parsed, err := ParseFecha(v)
		if err != nil {
			return err
		}
		*f = parsed
	case []byte:
		return f.Scan(string(v))
	default:
		return fmt.Errorf("fecha: tipo no soportado %T", src)
	}
	return nil
}

// GormDataType keeps the column typed as DATE.
func (Fecha) GormDataType() string { return "date" }
