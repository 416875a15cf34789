package gateway

import (
	"encoding/json"
	"strings"
)

// ExtractJSONBlock slices the first plausible JSON value out of raw model
// output, which often wraps the payload in prose or code fences. Prefers
// an object, falls back to an array, and returns "{}" when neither is
// present so decoding fails cleanly downstream.
func ExtractJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			return text[start : end+1]
		}
	}
	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			return text[start : end+1]
		}
	}
	return "{}"
}

// decodeObject parses extracted JSON into an object. A top-level array is
// wrapped as {"quiz": ...} since quiz-pack responses sometimes omit the
// envelope. Returns a failure code on parse or shape problems.
func decodeObject(block string) (map[string]any, string) {
	var value any
	if err := json.Unmarshal([]byte(block), &value); err != nil {
		return nil, CodeInvalidJSON
	}
	switch v := value.(type) {
	case map[string]any:
		return v, ""
	case []any:
		return map[string]any{"quiz": v}, ""
	default:
		return nil, CodeInvalidJSONShape
	}
}
