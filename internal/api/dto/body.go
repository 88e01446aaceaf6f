package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Body is a weakly typed JSON request body. The API accepts payloads with or
// without a Content-Type header, drops unknown fields, and must distinguish
// "field omitted" from "field explicitly null", so requests are decoded into
// raw-message maps instead of rigid structs.
type Body map[string]json.RawMessage

// ParseBody decodes raw request bytes. Empty or unparseable input yields an
// empty body, which downstream presence checks treat as all fields absent.
func ParseBody(raw []byte) Body {
	body := Body{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Body{}
	}
	return body
}

// Has reports whether the field is present and not JSON null.
func (b Body) Has(key string) bool {
	raw, ok := b[key]
	return ok && !isNull(raw)
}

// Empty reports whether the field is absent, JSON null, or the empty string.
// Any other value counts as provided, including 0 and false.
func (b Body) Empty(key string) bool {
	raw, ok := b[key]
	if !ok || isNull(raw) {
		return true
	}
	if s, isString := decodeString(raw); isString {
		return s == ""
	}
	return false
}

// String returns the field decoded as a JSON string. JSON null is not a
// string: key updates must be able to tell "explicitly null" apart from a
// real value.
func (b Body) String(key string) (string, bool) {
	raw, ok := b[key]
	if !ok || isNull(raw) {
		return "", false
	}
	return decodeString(raw)
}

// Int returns the field as an exact integer. Fractional numbers and
// non-numeric values are rejected.
func (b Body) Int(key string) (int, bool) {
	raw, ok := b[key]
	if !ok {
		return 0, false
	}
	// The decoder accepts quoted numbers into json.Number; JSON strings must
	// never coerce here.
	token := bytes.TrimSpace(raw)
	if len(token) == 0 || token[0] == '"' {
		return 0, false
	}
	var num json.Number
	if err := json.Unmarshal(token, &num); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// Raw returns the verbatim JSON value for the field.
func (b Body) Raw(key string) (json.RawMessage, bool) {
	raw, ok := b[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
