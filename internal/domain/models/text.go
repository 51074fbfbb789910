// internal/domain/models/text.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a display field supplied by the reporting backend. Strings decode
// as-is; numbers and booleans keep their literal JSON form; null is empty.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n':
		*t = ""
	case '{', '[':
		return fmt.Errorf("text field: unexpected %s", kindOf(b[0]))
	default:
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string { return string(t) }

func kindOf(c byte) string {
	if c == '{' {
		return "object"
	}
	return "array"
}
