package validation

import (
	"unicode/utf8"
)

// FieldError reports one rule violation. A field appears once per violated
// rule, in schema order then rule order.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Kind is the type a field's raw value must coerce to.
type Kind int

const (
	String Kind = iota
	Bool
)

// Rule checks one constraint on a field value. Check receives nil when the
// field is absent from the input, the coerced string or bool otherwise, and
// returns true when the constraint holds. Rules decide for themselves how to
// treat an absent value, which is what lets independent violations on one
// field accumulate.
type Rule struct {
	Check   func(v any) bool
	Message string
}

// Field is one entry of a schema: a name, an expected kind, and an ordered
// rule list.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	Rules    []Rule
}

// Schema is an ordered list of field rule-sets.
type Schema []Field

// Values holds the normalized output of a successful validation. Optional
// fields that were absent have no entry.
type Values map[string]any

// String returns the field's string value, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns the field's bool value, or false when absent.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Validate evaluates every rule of every field against the raw input and
// returns either the normalized values or the complete violation list.
// No rule short-circuits another; the single exception is a type-coercion
// failure, which suppresses the remaining rules on that field only.
// JSON null counts as absent.
func (s Schema) Validate(input map[string]any) (Values, []FieldError) {
	values := make(Values, len(s))
	var errs []FieldError

	for _, f := range s {
		raw, present := input[f.Name]
		if raw == nil {
			present = false
		}

		var v any
		if present {
			switch f.Kind {
			case String:
				str, ok := raw.(string)
				if !ok {
					errs = append(errs, FieldError{Field: f.Name, Message: f.Name + " must be a string"})
					continue
				}
				v = str
			case Bool:
				b, ok := raw.(bool)
				if !ok {
					errs = append(errs, FieldError{Field: f.Name, Message: f.Name + " must be a boolean"})
					continue
				}
				v = b
			}
		}

		if f.Optional && v == nil {
			continue
		}

		for _, r := range f.Rules {
			if !r.Check(v) {
				errs = append(errs, FieldError{Field: f.Name, Message: r.Message})
			}
		}

		if v != nil {
			values[f.Name] = v
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// Required fails on absent values and empty strings. A present bool passes
// regardless of its value; MustBeTrue handles the rest.
func Required(message string) Rule {
	return Rule{Message: message, Check: func(v any) bool {
		switch t := v.(type) {
		case nil:
			return false
		case string:
			return t != ""
		default:
			return true
		}
	}}
}

// MinLength fails strings shorter than n runes. Absent values pass; only
// Required reports those.
func MinLength(n int, message string) Rule {
	return Rule{Message: message, Check: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		return utf8.RuneCountInString(s) >= n
	}}
}

// MaxLength fails strings longer than n runes.
func MaxLength(n int, message string) Rule {
	return Rule{Message: message, Check: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		return utf8.RuneCountInString(s) <= n
	}}
}

// Matcher is satisfied by *regexp.Regexp.
type Matcher interface {
	MatchString(s string) bool
}

// Pattern fails strings that do not match. An empty string is still matched
// against the pattern; absent values pass.
func Pattern(re Matcher, message string) Rule {
	return Rule{Message: message, Check: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		return re.MatchString(s)
	}}
}

// MustBeTrue fails a present bool that is not true. Absent values pass;
// Required reports those.
func MustBeTrue(message string) Rule {
	return Rule{Message: message, Check: func(v any) bool {
		b, ok := v.(bool)
		if !ok {
			return true
		}
		return b
	}}
}

// Custom wraps an arbitrary predicate.
func Custom(check func(v any) bool, message string) Rule {
	return Rule{Message: message, Check: check}
}
