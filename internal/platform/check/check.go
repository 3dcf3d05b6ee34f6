// Package check holds the predicates every layer uses to guard its inputs.
// Each helper returns nil or an error wrapping one of the sentinel errors.
package check

import (
	"fmt"
	"math"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/record"
	"reflect"
	"strings"
)

// Field names a required record field and its declared type.
type Field struct {
	Name string
	Type record.FieldType
}

// Finite rejects NaN and ±Inf.
func Finite(v float64, name string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v: %w", name, v, sentinel.ErrInvalidValue)
	}
	return nil
}

// NonNegative rejects non-finite and negative values.
func NonNegative(v float64, name string) error {
	if err := Finite(v, name); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %v: %w", name, v, sentinel.ErrInvalidValue)
	}
	return nil
}

func NotBlank(s, name string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s must not be blank: %w", name, sentinel.ErrInvalidValue)
	}
	return nil
}

// NotNil rejects nil values, including typed nil pointers held in an interface.
func NotNil(v any, name string) error {
	if v == nil {
		return fmt.Errorf("%s must not be nil: %w", name, sentinel.ErrNilReference)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return fmt.Errorf("%s must not be nil: %w", name, sentinel.ErrNilReference)
		}
	}
	return nil
}

// RecordHasField checks that rec declares name with type want.
// Only the declared schema is consulted; no value is read.
func RecordHasField(rec record.Record, name string, want record.FieldType) error {
	if err := NotNil(rec, "record"); err != nil {
		return err
	}

	got, ok := rec.FieldType(name)
	if !ok {
		return fmt.Errorf("record field %q must exist: %w", name, sentinel.ErrSchemaMismatch)
	}
	if got != want {
		return fmt.Errorf("record field %q must be of type %s, declared %s: %w", name, want, got, sentinel.ErrSchemaMismatch)
	}
	return nil
}

func RecordHasFields(rec record.Record, fields ...Field) error {
	for _, f := range fields {
		if err := RecordHasField(rec, f.Name, f.Type); err != nil {
			return err
		}
	}
	return nil
}
