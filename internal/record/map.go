package record

import (
	"errors"
	"fmt"
	"maps"
	"time"
)

var ErrUnset = errors.New("field value not set")

// Map is an in-memory Record with a fixed schema.
type Map struct {
	schema map[string]FieldType
	values map[string]any
}

func NewMap(schema map[string]FieldType) *Map {
	return &Map{
		schema: maps.Clone(schema),
		values: make(map[string]any, len(schema)),
	}
}

func (m *Map) FieldType(name string) (FieldType, bool) {
	t, ok := m.schema[name]
	return t, ok
}

func (m *Map) Int(name string) (int64, error) {
	if err := m.expect(name, Integer); err != nil {
		return 0, fmt.Errorf("read int: %w", err)
	}

	v, ok := m.values[name]
	if !ok {
		return 0, fmt.Errorf("read int %q: %w", name, ErrUnset)
	}
	return v.(int64), nil
}

func (m *Map) Float(name string) (float64, error) {
	if err := m.expect(name, Float); err != nil {
		return 0, fmt.Errorf("read float: %w", err)
	}

	v, ok := m.values[name]
	if !ok {
		return 0, fmt.Errorf("read float %q: %w", name, ErrUnset)
	}
	return v.(float64), nil
}

func (m *Map) String(name string) (string, error) {
	if err := m.expect(name, Text); err != nil {
		return "", fmt.Errorf("read string: %w", err)
	}

	v, ok := m.values[name]
	if !ok {
		return "", fmt.Errorf("read string %q: %w", name, ErrUnset)
	}
	return v.(string), nil
}

func (m *Map) Time(name string) (time.Time, error) {
	if err := m.expect(name, Date); err != nil {
		return time.Time{}, fmt.Errorf("read time: %w", err)
	}

	v, ok := m.values[name]
	if !ok {
		return time.Time{}, fmt.Errorf("read time %q: %w", name, ErrUnset)
	}
	return v.(time.Time), nil
}

func (m *Map) SetInt(name string, v int64) error {
	if err := m.expect(name, Integer); err != nil {
		return fmt.Errorf("write int: %w", err)
	}
	m.values[name] = v
	return nil
}

func (m *Map) SetFloat(name string, v float64) error {
	if err := m.expect(name, Float); err != nil {
		return fmt.Errorf("write float: %w", err)
	}
	m.values[name] = v
	return nil
}

func (m *Map) SetString(name string, v string) error {
	if err := m.expect(name, Text); err != nil {
		return fmt.Errorf("write string: %w", err)
	}
	m.values[name] = v
	return nil
}

func (m *Map) SetTime(name string, v time.Time) error {
	if err := m.expect(name, Date); err != nil {
		return fmt.Errorf("write time: %w", err)
	}
	m.values[name] = v
	return nil
}

// Set reports whether a value has been written for name.
func (m *Map) Set(name string) bool {
	_, ok := m.values[name]
	return ok
}

func (m *Map) expect(name string, want FieldType) error {
	got, ok := m.schema[name]
	if !ok {
		return missing(name)
	}
	if got != want {
		return mismatch(name, want, got)
	}
	return nil
}
