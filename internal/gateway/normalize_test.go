package gateway

import (
	"strings"
	"testing"

	"github.com/israyx/sintrade/internal/content"
)

func TestNormalizeOptions_ObjectForm(t *testing.T) {
	got := normalizeOptions(map[string]any{
		"A": "first", "b": " second ", "C": "third", "D": "fourth",
	})
	if len(got) != 4 {
		t.Fatalf("expected 4 options, got %d", len(got))
	}
	if got["B"] != "second" {
		t.Fatalf("lowercase key should normalize, got %q", got["B"])
	}
}

func TestNormalizeOptions_ObjectMissingKey(t *testing.T) {
	got := normalizeOptions(map[string]any{"A": "a", "B": "b", "C": "c"})
	if got != nil {
		t.Fatalf("three options should be rejected, got %#v", got)
	}
}

func TestNormalizeOptions_ListForm(t *testing.T) {
	got := normalizeOptions([]any{"w", "x", "y", "z", "extra"})
	if got["A"] != "w" || got["D"] != "z" {
		t.Fatalf("list should map positionally, got %#v", got)
	}
}

func TestNormalizeOptions_ListOfObjects(t *testing.T) {
	got := normalizeOptions([]any{
		map[string]any{"text": "w"},
		map[string]any{"option": "x"},
		map[string]any{"value": "y"},
		map[string]any{"text": "z"},
	})
	if got["C"] != "y" {
		t.Fatalf("expected value key to be read, got %#v", got)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	options := map[string]string{"A": "alpha", "B": "beta", "C": "gamma", "D": "delta"}
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"letter", "b", "B"},
		{"letter padded", " C ", "C"},
		{"option text", "Delta", "D"},
		{"one-based index", float64(2), "B"},
		{"index out of range", float64(9), "A"},
		{"unknown string", "epsilon", "A"},
		{"nil", nil, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeAnswer(tt.in, options); got != tt.want {
				t.Fatalf("normalizeAnswer(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseQuiz_SkipsMalformedEntries(t *testing.T) {
	raw := []any{
		map[string]any{
			"prompt":  "good",
			"options": map[string]any{"A": "1", "B": "2", "C": "3", "D": "4"},
			"answer":  "B",
		},
		map[string]any{"prompt": "no options"},
		map[string]any{
			"options": map[string]any{"A": "1", "B": "2", "C": "3", "D": "4"},
		},
		"not an object",
	}
	quiz := parseQuiz(raw, content.LangEnglish)
	if len(quiz) != 1 {
		t.Fatalf("expected 1 valid question, got %d", len(quiz))
	}
	if quiz[0].Answer != "B" {
		t.Fatalf("expected answer B, got %q", quiz[0].Answer)
	}
	if quiz[0].Explanation == "" {
		t.Fatal("missing explanation should be defaulted")
	}
}

func TestParseLesson_FillsDefaults(t *testing.T) {
	lesson := parseLesson(map[string]any{}, content.LevelBeginner, content.LangEnglish)
	if lesson.Title == "" || lesson.Objective == "" || lesson.Example == "" {
		t.Fatalf("defaults not applied: %+v", lesson)
	}
	if len(lesson.BulletPoints) != 4 {
		t.Fatalf("expected 4 bullets, got %d", len(lesson.BulletPoints))
	}
	if !lesson.IsDynamic() {
		t.Fatalf("generated lesson should carry dynamic id, got %q", lesson.ID)
	}
	if strings.Contains(lesson.ID, "-") && !strings.HasPrefix(lesson.ID, content.DynamicIDPrefix) {
		t.Fatalf("unexpected id shape %q", lesson.ID)
	}
}

func TestParseScenario_RejectsBadOrdering(t *testing.T) {
	base := map[string]any{
		"symbol": "btcdzd", "entry": 100.0, "support": 95.0, "resistance": 110.0,
	}
	scenario := parseScenario(base, content.LangEnglish)
	if scenario == nil {
		t.Fatal("well-ordered scenario should parse")
	}
	if scenario.Symbol != "BTCDZD" {
		t.Fatalf("symbol should be uppercased, got %q", scenario.Symbol)
	}

	bad := map[string]any{
		"symbol": "BTCDZD", "entry": 100.0, "support": 105.0, "resistance": 110.0,
	}
	if parseScenario(bad, content.LangEnglish) != nil {
		t.Fatal("support above entry must be rejected")
	}

	bad["support"] = 95.0
	bad["resistance"] = 99.0
	if parseScenario(bad, content.LangEnglish) != nil {
		t.Fatal("resistance below entry must be rejected")
	}
}

func TestParseChallenge_PrefixesPrompt(t *testing.T) {
	en := parseChallenge(map[string]any{
		"prompt":            "Analyze the BTCDZD structure.",
		"expected_keywords": []any{"risk", "invalidation", "structure", "confirmation"},
	}, content.LangEnglish)
	if en == nil {
		t.Fatal("challenge should parse")
	}
	if !strings.HasPrefix(en.Prompt, "Daily Challenge:") {
		t.Fatalf("missing prefix: %q", en.Prompt)
	}

	ar := parseChallenge(map[string]any{"prompt": "حلل هيكل السوق."}, content.LangArabic)
	if ar == nil {
		t.Fatal("challenge should parse with defaulted keywords")
	}
	if !strings.HasPrefix(ar.Prompt, "تحدي اليوم:") {
		t.Fatalf("missing Arabic prefix: %q", ar.Prompt)
	}
	if len(ar.ExpectedKeywords) != 4 {
		t.Fatalf("expected 4 keywords, got %d", len(ar.ExpectedKeywords))
	}
}

func TestSafeText(t *testing.T) {
	if got := safeText("  spaced\n\tout  ", "d"); got != "spaced out" {
		t.Fatalf("whitespace should collapse, got %q", got)
	}
	if got := safeText("   ", "d"); got != "d" {
		t.Fatalf("blank should fall back, got %q", got)
	}
	if got := safeText(42, "d"); got != "d" {
		t.Fatalf("non-string should fall back, got %q", got)
	}
}
