package util

import (
	"bytes"
	"encoding/json"

	"braces.dev/errtrace"
)

// MarshalJSON is like [json.Marshal] but leaves '&', '<' and '>' unescaped.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
