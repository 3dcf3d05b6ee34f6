package record

import (
	"fmt"
	"photo-location-service/internal/platform/sentinel"
	"strings"
	"time"
)

// FieldType is the declared type of a named record field.
type FieldType int

const (
	Integer FieldType = iota + 1
	Float
	Text
	Date
)

func (t FieldType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Text:
		return "text"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Record is a named-field data carrier owned by a storage collaborator.
// FieldType reports the declared type without touching the value, so
// callers can check the shape of a record before reading or writing it.
type Record interface {
	FieldType(name string) (FieldType, bool)
	Int(name string) (int64, error)
	Float(name string) (float64, error)
	String(name string) (string, error)
	Time(name string) (time.Time, error)
	SetInt(name string, v int64) error
	SetFloat(name string, v float64) error
	SetString(name string, v string) error
	SetTime(name string, v time.Time) error
}

// TypeFromDatabase maps a SQL declared column type to a FieldType.
// Both SQLite and Postgres spellings are accepted.
func TypeFromDatabase(dbType string) (FieldType, bool) {
	t := strings.ToUpper(strings.TrimSpace(dbType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}

	switch t {
	case "INTEGER", "INT", "INT2", "INT4", "INT8", "SMALLINT", "BIGINT":
		return Integer, true
	case "REAL", "DOUBLE", "DOUBLE PRECISION", "FLOAT", "FLOAT4", "FLOAT8":
		return Float, true
	case "TEXT", "VARCHAR", "CHARACTER VARYING", "CHAR", "BPCHAR":
		return Text, true
	case "DATE", "DATETIME", "TIMESTAMP", "TIMESTAMPTZ":
		return Date, true
	default:
		return 0, false
	}
}

func mismatch(name string, want, got FieldType) error {
	return fmt.Errorf("field %q declared %s, used as %s: %w", name, got, want, sentinel.ErrSchemaMismatch)
}

func missing(name string) error {
	return fmt.Errorf("field %q does not exist: %w", name, sentinel.ErrSchemaMismatch)
}
