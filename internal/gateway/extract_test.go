package gateway

import "testing"

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced object", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around object", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"array fallback", `[1,2,3]`, `[1,2,3]`},
		{"prose around array", "the list is [1,2] ok", "[1,2]"},
		{"object preferred over array", `{"a":[1,2]}`, `{"a":[1,2]}`},
		{"nothing usable", "no json here", "{}"},
		{"empty", "", "{}"},
		{"unclosed object", "{oops", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONBlock(tt.in); got != tt.want {
				t.Fatalf("ExtractJSONBlock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeObject_WrapsTopLevelArray(t *testing.T) {
	data, code := decodeObject(`[{"prompt":"q"}]`)
	if code != "" {
		t.Fatalf("unexpected failure code %q", code)
	}
	if _, ok := data["quiz"].([]any); !ok {
		t.Fatalf("expected array wrapped under quiz, got %#v", data)
	}
}

func TestDecodeObject_FailureCodes(t *testing.T) {
	if _, code := decodeObject("{broken"); code != CodeInvalidJSON {
		t.Fatalf("expected %q, got %q", CodeInvalidJSON, code)
	}
	if _, code := decodeObject(`"just a string"`); code != CodeInvalidJSONShape {
		t.Fatalf("expected %q, got %q", CodeInvalidJSONShape, code)
	}
}
