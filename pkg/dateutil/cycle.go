package dateutil

import (
	"bytes"
	"encoding"
	"strconv"
)

// wrap moves ordinal (1..length) by n positions around a cycle.
// n is reduced first so that extreme values cannot overflow;
// the double modulo keeps negative n in range.
func wrap(ordinal, n, length int) int {
	n %= length
	return ((ordinal-1+n)%length+length)%length + 1
}

func marshalQuoted(v encoding.TextMarshaler) ([]byte, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(strconv.Quote(string(text))), nil
}

// unmarshalQuoted accepts a JSON string (name or ordinal) or a bare JSON number
func unmarshalQuoted(data []byte, v encoding.TextUnmarshaler) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		return v.UnmarshalText([]byte(s))
	}
	return v.UnmarshalText(data)
}
