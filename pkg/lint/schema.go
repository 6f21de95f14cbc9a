package lint

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// OptionKind is the value type an option accepts.
type OptionKind string

const (
	OptionString OptionKind = "string"
	OptionInt    OptionKind = "int"
	OptionBool   OptionKind = "bool"
)

// OptionSpec declares one configurable option of a rule.
type OptionSpec struct {
	// Name is the option key as written in configuration (e.g., "line_length").
	Name string

	// Kind is the accepted value type.
	Kind OptionKind

	// Default is used when the option is missing or invalid.
	Default any

	// Allowed restricts string options to an enumeration (empty means any).
	Allowed []string

	// Min is the smallest accepted integer. Zero disables the check.
	Min int

	// Description explains the option.
	Description string
}

// Validate checks a raw configuration value against the spec.
func (spec OptionSpec) Validate(value any) error {
	switch spec.Kind {
	case OptionString:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		if len(spec.Allowed) > 0 && !slices.Contains(spec.Allowed, s) {
			return fmt.Errorf("invalid value %q (valid: %s)", s, strings.Join(spec.Allowed, ", "))
		}
	case OptionInt:
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("expected integer, got %T", value)
		}
		if spec.Min != 0 && n < spec.Min {
			return fmt.Errorf("value %d is below minimum %d", n, spec.Min)
		}
	case OptionBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	default:
		return fmt.Errorf("unknown option kind %q", spec.Kind)
	}
	return nil
}

// normalize converts a valid raw value to its canonical Go type.
func (spec OptionSpec) normalize(value any) any {
	if spec.Kind == OptionInt {
		n, _ := toInt(value)
		return n
	}
	return value
}

// Schema is the ordered set of options a rule accepts.
type Schema []OptionSpec

// Lookup returns the spec for an option name.
func (s Schema) Lookup(name string) (OptionSpec, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec, true
		}
	}
	return OptionSpec{}, false
}

// Defaults returns the default value of every option.
func (s Schema) Defaults() Options {
	opts := make(Options, len(s))
	for _, spec := range s {
		opts[spec.Name] = spec.Default
	}
	return opts
}

// Resolve merges raw configuration over the defaults.
// Unrecognized options are ignored; values failing validation fall back to
// the default. Load-time validation reports both cases to the user.
func (s Schema) Resolve(raw map[string]any) Options {
	opts := s.Defaults()
	for _, spec := range s {
		value, ok := raw[spec.Name]
		if !ok || spec.Validate(value) != nil {
			continue
		}
		opts[spec.Name] = spec.normalize(value)
	}
	return opts
}

// Options is a resolved option set handed to Rule.Evaluate.
type Options map[string]any

// String returns a string option, or def if absent or mistyped.
func (o Options) String(key, def string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return def
}

// Int returns an integer option, or def if absent or mistyped.
func (o Options) Int(key string, def int) int {
	if n, ok := toInt(o[key]); ok {
		return n
	}
	return def
}

// Bool returns a boolean option, or def if absent or mistyped.
func (o Options) Bool(key string, def bool) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	return def
}

// toInt accepts the integer shapes YAML and JSON decoders produce.
func toInt(value any) (int, bool) {
	switch val := value.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case uint64:
		if val > math.MaxInt {
			return 0, false
		}
		return int(val), true
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}
		return int(val), true
	default:
		return 0, false
	}
}
