package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/record"
	"time"
)

var errNullField = errors.New("field is NULL")

// rowRecord exposes one SQL row as a record.Record. Field types come from
// the driver's column metadata, so shape checks see the real declared types.
// Columns whose declared type has no record equivalent are left out.
type rowRecord struct {
	types  map[string]record.FieldType
	values map[string]any
}

func newRowRecord(names, dbTypes []string) *rowRecord {
	r := &rowRecord{
		types:  make(map[string]record.FieldType, len(names)),
		values: make(map[string]any, len(names)),
	}
	for i, name := range names {
		if t, ok := record.TypeFromDatabase(dbTypes[i]); ok {
			r.types[name] = t
		}
	}
	return r
}

// columnRecord builds an empty record from the column metadata of rows.
func columnRecord(rows *sql.Rows) (*rowRecord, []string, error) {
	cts, err := rows.ColumnTypes()
	if err != nil {
		return nil, nil, fmt.Errorf("row record: column types: %w", err)
	}

	names := make([]string, len(cts))
	dbTypes := make([]string, len(cts))
	for i, ct := range cts {
		names[i] = ct.Name()
		dbTypes[i] = ct.DatabaseTypeName()
	}
	return newRowRecord(names, dbTypes), names, nil
}

// scanInto reads the current row of rows into r. Columns whose declared type
// has no record equivalent are scanned and dropped.
func (r *rowRecord) scanInto(rows *sql.Rows, names []string) error {
	raw := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return fmt.Errorf("row record: scan: %w", err)
	}

	clear(r.values)
	for i, name := range names {
		if _, ok := r.types[name]; ok && raw[i] != nil {
			r.values[name] = raw[i]
		}
	}
	return nil
}

func (r *rowRecord) FieldType(name string) (record.FieldType, bool) {
	t, ok := r.types[name]
	return t, ok
}

// IsNull reports whether the column holds no value.
func (r *rowRecord) IsNull(name string) bool {
	_, ok := r.values[name]
	return !ok
}

func (r *rowRecord) Int(name string) (int64, error) {
	if err := r.expect(name, record.Integer); err != nil {
		return 0, err
	}

	switch v := r.values[name].(type) {
	case nil:
		return 0, fmt.Errorf("read %q: %w", name, errNullField)
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("read %q: integer column holds %T: %w", name, v, sentinel.ErrSchemaMismatch)
	}
}

func (r *rowRecord) Float(name string) (float64, error) {
	if err := r.expect(name, record.Float); err != nil {
		return 0, err
	}

	switch v := r.values[name].(type) {
	case nil:
		return 0, fmt.Errorf("read %q: %w", name, errNullField)
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("read %q: float column holds %T: %w", name, v, sentinel.ErrSchemaMismatch)
	}
}

func (r *rowRecord) String(name string) (string, error) {
	if err := r.expect(name, record.Text); err != nil {
		return "", err
	}

	switch v := r.values[name].(type) {
	case nil:
		return "", fmt.Errorf("read %q: %w", name, errNullField)
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("read %q: text column holds %T: %w", name, v, sentinel.ErrSchemaMismatch)
	}
}

// Layouts SQLite date columns are commonly stored in.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func (r *rowRecord) Time(name string) (time.Time, error) {
	if err := r.expect(name, record.Date); err != nil {
		return time.Time{}, err
	}

	var text string
	switch v := r.values[name].(type) {
	case nil:
		return time.Time{}, fmt.Errorf("read %q: %w", name, errNullField)
	case time.Time:
		return v, nil
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return time.Time{}, fmt.Errorf("read %q: date column holds %T: %w", name, v, sentinel.ErrSchemaMismatch)
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("read %q: %q is not a date: %w", name, text, sentinel.ErrInvalidValue)
}

func (r *rowRecord) SetInt(name string, v int64) error {
	if err := r.expect(name, record.Integer); err != nil {
		return err
	}
	r.values[name] = v
	return nil
}

func (r *rowRecord) SetFloat(name string, v float64) error {
	if err := r.expect(name, record.Float); err != nil {
		return err
	}
	r.values[name] = v
	return nil
}

func (r *rowRecord) SetString(name string, v string) error {
	if err := r.expect(name, record.Text); err != nil {
		return err
	}
	r.values[name] = v
	return nil
}

func (r *rowRecord) SetTime(name string, v time.Time) error {
	if err := r.expect(name, record.Date); err != nil {
		return err
	}
	r.values[name] = v
	return nil
}

// args returns the values of the given columns in order, nil for unset ones.
func (r *rowRecord) args(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = r.values[c]
	}
	return out
}

func (r *rowRecord) expect(name string, want record.FieldType) error {
	got, ok := r.types[name]
	if !ok {
		return fmt.Errorf("column %q does not exist: %w", name, sentinel.ErrSchemaMismatch)
	}
	if got != want {
		return fmt.Errorf("column %q declared %s, used as %s: %w", name, got, want, sentinel.ErrSchemaMismatch)
	}
	return nil
}
