package validation

import (
	"time"

	"github.com/google/uuid"
)

// Field is one entry of a schema's descriptor table. Required and Nullable
// are independent flags: a field may be absent (optional) or carry an
// explicit null (nullable), and those are distinct states.
type Field struct {
	Name     string
	Validate Func
	Required bool
	Nullable bool
}

// Schema is an ordered field-descriptor table for one entity shape. Schemas
// are built once at package init and never mutated, so validation is safe
// for concurrent use.
type Schema []Field

// Validate checks raw against the descriptor table in one pass, collecting
// every violation instead of stopping at the first. On success it returns a
// Record of normalized values keyed by field name; explicit nulls on
// nullable fields survive as nil entries. Unknown extra keys in raw are
// ignored. On any violation the Record is nil.
func (s Schema) Validate(raw map[string]any) (Record, error) {
	rec := make(Record, len(s))
	var errs Errors

	for _, f := range s {
		value, present := raw[f.Name]
		if !present {
			if f.Required {
				errs = append(errs, FieldError{
					FieldPath: f.Name,
					Kind:      MissingRequiredField,
					Message:   "is required",
				})
			}
			continue
		}
		if value == nil {
			if !f.Nullable {
				errs = append(errs, FieldError{
					FieldPath: f.Name,
					Kind:      NullNotAllowed,
					Message:   "must not be null",
				})
				continue
			}
			rec[f.Name] = nil
			continue
		}

		normalized, ferr := f.Validate(f.Name, value)
		if ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		rec[f.Name] = normalized
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rec, nil
}

// FieldNames returns the declared field names in table order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// RequiredFieldNames returns the names of fields flagged required, in table order.
func (s Schema) RequiredFieldNames() []string {
	var names []string
	for _, f := range s {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Record holds the normalized output of a successful validation, keyed by
// field name. Absent optional fields have no entry; explicit nulls on
// nullable fields are present with a nil value.
type Record map[string]any

// String returns the field's string value, or "" when absent or null.
func (r Record) String(name string) string {
	if s, ok := r[name].(string); ok {
		return s
	}
	return ""
}

// StringPtr returns a pointer to the field's string value, or nil when the
// field is absent or explicitly null.
func (r Record) StringPtr(name string) *string {
	if s, ok := r[name].(string); ok {
		return &s
	}
	return nil
}

// Bool returns the field's boolean value, or false when absent or null.
func (r Record) Bool(name string) bool {
	if b, ok := r[name].(bool); ok {
		return b
	}
	return false
}

// Time returns a pointer to the field's normalized date value, or nil when
// the field is absent or explicitly null.
func (r Record) Time(name string) *time.Time {
	if t, ok := r[name].(time.Time); ok {
		return &t
	}
	return nil
}

// UUID returns the field's normalized identifier, or uuid.Nil when the
// field is absent or explicitly null.
func (r Record) UUID(name string) uuid.UUID {
	if id, ok := r[name].(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// UUIDPtr returns a pointer to the field's normalized identifier, or nil
// when the field is absent or explicitly null.
func (r Record) UUIDPtr(name string) *uuid.UUID {
	if id, ok := r[name].(uuid.UUID); ok {
		return &id
	}
	return nil
}
