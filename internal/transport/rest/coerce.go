package rest

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// looseString accepts any JSON value: strings as is, falsy values (null,
// false, 0) as "", anything else as its literal JSON text.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte("false")):
		*s = ""
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	default:
		if f, err := strconv.ParseFloat(string(b), 64); err == nil && f == 0 {
			*s = ""
			return nil
		}
		*s = looseString(b)
	}
	return nil
}

// looseBool reads a JSON value by truthiness: false, null, 0, "" and
// absent are false, everything else is true.
type looseBool bool

func (v *looseBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0:
		*v = false
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*v = false
	case bytes.Equal(b, []byte("true")):
		*v = true
	case b[0] == '"':
		*v = len(b) > 2
	case b[0] == '{' || b[0] == '[':
		*v = true
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return err
		}
		*v = f != 0
	}
	return nil
}
