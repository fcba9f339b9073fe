package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSON = errors.New("no JSON object in model output")

func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodeModelJSON unmarshals a JSON object out of a model's free-text
// reply. Fast path: the reply is the object as-is. Fallback: take the
// substring from the first '{' to the last '}' and parse that, so prose
// around the object is tolerated. Bare non-object tokens ("null", a
// number, a quoted string) are not an object and fail.
func DecodeModelJSON(outputText string, v any) error {
	s := StripCodeFences(outputText)
	if s == "" {
		return ErrNoJSON
	}

	if strings.HasPrefix(s, "{") {
		if err := json.Unmarshal([]byte(s), v); err == nil {
			return nil
		}
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(s[start:end+1]), v); err != nil {
		return fmt.Errorf("bad JSON in model output: %w", err)
	}
	return nil
}
