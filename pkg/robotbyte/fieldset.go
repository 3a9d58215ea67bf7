package robotbyte

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldSet offers typed helpers on top of a record's field map.
type FieldSet struct {
	data map[string]any
}

// FieldSet returns a FieldSet wrapper for the record's fields.
func (r Record) FieldSet() FieldSet {
	return FieldSet{data: r.Fields()}
}

// Raw returns the stored value without conversions.
func (fs FieldSet) Raw(key string) (any, bool) {
	v, ok := fs.data[key]
	return v, ok
}

// Int returns the field as int64. Strings are read as decimal unless they
// carry a 0x prefix.
func (fs FieldSet) Int(key string) (int64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case string:
		base := 10
		if strings.HasPrefix(n, "0x") || strings.HasPrefix(n, "0X") {
			n, base = n[2:], 16
		}
		i, err := strconv.ParseInt(n, base, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not integer: %w", key, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
}

// String returns the field as a string.
func (fs FieldSet) String(key string) (string, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return "", fmt.Errorf("field %q missing", key)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", v), nil
}

// Bool returns the field as a bool.
func (fs FieldSet) Bool(key string) (bool, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return false, fmt.Errorf("field %q missing", key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
	return b, nil
}

// Describe renders the fields in spec-sheet form, e.g.
// "11111111 == 255 == male, version 4, active, 235550 gigahertz".
func (fs FieldSet) Describe() (string, error) {
	raw, err := fs.Int("raw")
	if err != nil {
		return "", err
	}
	gender, err := fs.String("gender")
	if err != nil {
		return "", err
	}
	version, err := fs.Int("version_number")
	if err != nil {
		return "", err
	}
	active, err := fs.Bool("active")
	if err != nil {
		return "", err
	}
	ghz, err := fs.Int("throughput_ghz")
	if err != nil {
		return "", err
	}
	state := "inactive"
	if active {
		state = "active"
	}
	return fmt.Sprintf("%08b == %d == %s, version %d, %s, %d gigahertz",
		raw, raw, gender, version, state, ghz), nil
}
