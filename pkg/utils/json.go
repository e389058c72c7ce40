package utils

import (
	"bytes"
	"encoding/json"
)

// MarshalPretty encodes v with 4-space indentation and without HTML or
// non-ASCII escaping. The result has no trailing newline.
func MarshalPretty(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	out := unescapeLineSeparators(buf.Bytes())
	return bytes.TrimSuffix(out, []byte("\n")), nil
}

// encoding/json escapes U+2028 and U+2029 even with HTML escaping off
var lineSeparatorEscapes = map[string]string{
	`\u` + "2028": string(rune(0x2028)),
	`\u` + "2029": string(rune(0x2029)),
}

// unescapeLineSeparators writes U+2028 and U+2029 back as literal characters.
// A backslash that follows an odd run of backslashes is itself escaped text
// and is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u` + "202")) {
		return data
	}

	out := make([]byte, 0, len(data))
	backslashes := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c == '\\' && backslashes%2 == 0 && i+6 <= len(data) {
			if literal, ok := lineSeparatorEscapes[string(data[i:i+6])]; ok {
				out = append(out, literal...)
				i += 5
				continue
			}
		}
		if c == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		out = append(out, c)
	}
	return out
}
