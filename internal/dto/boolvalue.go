package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BoolValue is a boolean that accepts the loose representations older
// dashboard clients send. The coercion rule is total: JSON true/false,
// numbers (0 is false, anything else true), and the strings
// "true"/"false"/"1"/"0" (case-insensitive) are accepted; everything else
// is rejected. Notably the string "false" decodes to false, not true.
type BoolValue bool

// Bool returns the plain boolean value.
func (b BoolValue) Bool() bool {
	return bool(b)
}

// MarshalJSON renders the canonical JSON boolean.
func (b BoolValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// UnmarshalJSON implements the coercion rule.
func (b *BoolValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*b = BoolValue(v)
		return nil
	case float64:
		*b = BoolValue(v != 0)
		return nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1":
			*b = BoolValue(true)
			return nil
		case "false", "0":
			*b = BoolValue(false)
			return nil
		}
		return fmt.Errorf("invalid boolean string %q", v)
	default:
		return fmt.Errorf("invalid boolean value %s", string(data))
	}
}
