// Package schema validates record payloads against declared field shapes.
// It checks that required fields are present, that no unknown fields sneak
// in, and that values carry the right primitive type. Business rules such
// as value ranges stay in the database.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	apperrors "github.com/feywood/tomekeeper/internal/platform/errors"
)

// Kind is the primitive shape a field value must carry.
type Kind string

const (
	// KindText accepts strings.
	KindText Kind = "text"
	// KindInt accepts integral numbers.
	KindInt Kind = "integer"
	// KindNumber accepts any numeric value.
	KindNumber Kind = "number"
)

// Field declares one named value in a record payload.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Key marks the record's natural key. Key fields are accepted on
	// create and rejected on update.
	Key bool
}

// Schema declares the payload shape for one record family.
type Schema struct {
	Entity string
	Fields []Field
}

// ValidateNew checks a create payload: every required field present and
// non-blank, no unknown fields, all values type-correct.
func (s Schema) ValidateNew(fields map[string]any) error {
	if err := s.rejectUnknown(fields, false); err != nil {
		return err
	}
	for _, f := range s.Fields {
		value, ok := fields[f.Name]
		if !ok {
			if f.Required {
				return s.missingField(f.Name)
			}
			continue
		}
		if f.Required && f.Kind == KindText && isBlank(value) {
			return s.missingField(f.Name)
		}
		if err := s.checkKind(f, value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpdate checks an update payload: at least one field, no unknown
// or key fields, all values type-correct. Required text fields may not be
// blanked.
func (s Schema) ValidateUpdate(fields map[string]any) error {
	if len(fields) == 0 {
		return apperrors.WithMetadata(apperrors.CodeSchemaEmptyUpdate,
			fmt.Sprintf("%s update requires at least one field", s.Entity),
			map[string]string{"entity": s.Entity})
	}
	if err := s.rejectUnknown(fields, true); err != nil {
		return err
	}
	for _, f := range s.Fields {
		value, ok := fields[f.Name]
		if !ok {
			continue
		}
		if f.Required && f.Kind == KindText && isBlank(value) {
			return s.missingField(f.Name)
		}
		if err := s.checkKind(f, value); err != nil {
			return err
		}
	}
	return nil
}

// Normalize returns a copy of fields with numeric values coerced to their
// declared Go types (int64 for integers, float64 for numbers). Callers
// validate first; values that cannot be coerced pass through unchanged.
func (s Schema) Normalize(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		out[name] = value
	}
	for _, f := range s.Fields {
		value, ok := out[f.Name]
		if !ok {
			continue
		}
		switch f.Kind {
		case KindInt:
			if n, ok := coerceInt(value); ok {
				out[f.Name] = n
			}
		case KindNumber:
			if n, ok := coerceNumber(value); ok {
				out[f.Name] = n
			}
		}
	}
	return out
}

func (s Schema) rejectUnknown(fields map[string]any, update bool) error {
	declared := make(map[string]Field, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.Name] = f
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f, ok := declared[name]
		if !ok {
			return apperrors.WithMetadata(apperrors.CodeSchemaUnknownField,
				fmt.Sprintf("%s field %q is not recognized", s.Entity, name),
				map[string]string{"entity": s.Entity, "field": name})
		}
		if update && f.Key {
			return apperrors.WithMetadata(apperrors.CodeSchemaUnknownField,
				fmt.Sprintf("%s field %q cannot be updated", s.Entity, name),
				map[string]string{"entity": s.Entity, "field": name})
		}
	}
	return nil
}

func (s Schema) checkKind(f Field, value any) error {
	switch f.Kind {
	case KindText:
		if _, ok := value.(string); ok {
			return nil
		}
	case KindInt:
		if _, ok := coerceInt(value); ok {
			return nil
		}
	case KindNumber:
		if _, ok := coerceNumber(value); ok {
			return nil
		}
	}
	return apperrors.WithMetadata(apperrors.CodeSchemaInvalidType,
		fmt.Sprintf("%s field %q must be %s", s.Entity, f.Name, f.Kind),
		map[string]string{"entity": s.Entity, "field": f.Name, "want": string(f.Kind)})
}

func (s Schema) missingField(name string) error {
	return apperrors.WithMetadata(apperrors.CodeSchemaMissingField,
		fmt.Sprintf("%s field %q is required", s.Entity, name),
		map[string]string{"entity": s.Entity, "field": name})
}

func isBlank(value any) bool {
	text, ok := value.(string)
	return ok && strings.TrimSpace(text) == ""
}

// Text returns the string stored under name, or "" when absent or not a
// string. Callers validate the payload first.
func Text(fields map[string]any, name string) string {
	text, _ := fields[name].(string)
	return text
}

// Int returns the integral value stored under name, or 0 when absent.
func Int(fields map[string]any, name string) int64 {
	n, _ := coerceInt(fields[name])
	return n
}

// Number returns the numeric value stored under name, or 0 when absent.
func Number(fields map[string]any, name string) float64 {
	n, _ := coerceNumber(fields[name])
	return n
}

func coerceInt(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
