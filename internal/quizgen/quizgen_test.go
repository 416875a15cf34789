package quizgen

import (
	"strings"
	"testing"

	"github.com/israyx/sintrade/internal/content"
)

func testLesson() content.Lesson {
	return content.Lesson{
		ID:    "B1",
		Level: content.LevelBeginner,
		Title: "Risk Comes First",
		Example: "Example: You plan a long on BTCDZD at 9,800,000 DZD with support at " +
			"9,650,000 DZD and decide the idea is wrong below support.",
		Quiz: []content.QuizQuestion{
			{
				Prompt: "What should you define before entering a trade?",
				Options: map[string]string{
					"A": "Invalidation and risk", "B": "Target only",
					"C": "Leverage only", "D": "Nothing",
				},
				Answer:      "A",
				Explanation: "Invalidation defines when the idea is wrong.",
			},
			{
				Prompt: "What does consistent position sizing protect?",
				Options: map[string]string{
					"A": "Your ego", "B": "Your account", "C": "The exchange", "D": "The signal seller",
				},
				Answer:      "B",
				Explanation: "Sizing keeps single losses survivable.",
			},
		},
	}
}

func TestBuild_TargetRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		history := make(map[string]struct{})
		quiz := Build(testLesson(), history)
		if len(quiz) < 2 || len(quiz) > 3 {
			t.Fatalf("quiz size %d outside [2,3]", len(quiz))
		}
	}
}

func TestBuild_EmptyLesson(t *testing.T) {
	if quiz := Build(content.Lesson{ID: "X"}, make(map[string]struct{})); quiz != nil {
		t.Fatalf("lesson without base questions should yield nil, got %d", len(quiz))
	}
}

func TestBuild_RecordsHistory(t *testing.T) {
	history := make(map[string]struct{})
	quiz := Build(testLesson(), history)
	if len(history) < len(quiz) {
		t.Fatalf("history should grow by at least the served variants: %d < %d", len(history), len(quiz))
	}
	for sig := range history {
		if !strings.HasPrefix(sig, "B1|") {
			t.Fatalf("signature should be lesson-scoped, got %q", sig)
		}
	}
}

func TestBuild_AvoidsServedSignatures(t *testing.T) {
	lesson := testLesson()
	history := make(map[string]struct{})

	// Serve several rounds; within each round signatures must be fresh
	// against the history, unless the generator declared exhaustion by
	// clearing it.
	for round := 0; round < 10; round++ {
		before := make(map[string]struct{}, len(history))
		for sig := range history {
			before[sig] = struct{}{}
		}

		quiz := Build(lesson, history)
		if len(quiz) == 0 {
			t.Fatal("generator should always produce questions")
		}
		if len(history) < len(before) {
			// Exhaustion path cleared the history; nothing to compare.
			continue
		}
		fresh := 0
		for sig := range history {
			if _, seen := before[sig]; !seen {
				fresh++
			}
		}
		if fresh == 0 && len(before) > 0 {
			// A full repeat round is only legal after exhaustion.
			t.Fatalf("round %d served no fresh variants without clearing history", round)
		}
	}
}

func TestBuild_OptionsStayConsistent(t *testing.T) {
	lesson := testLesson()
	correctByExplanation := map[string]string{
		"Invalidation defines when the idea is wrong.": "Invalidation and risk",
		"Sizing keeps single losses survivable.":       "Your account",
	}

	for i := 0; i < 30; i++ {
		quiz := Build(lesson, make(map[string]struct{}))
		for _, q := range quiz {
			if len(q.Options) != 4 {
				t.Fatalf("variant must keep 4 options, got %d", len(q.Options))
			}
			want := correctByExplanation[q.Explanation]
			if got := q.Options[q.Answer]; got != want {
				t.Fatalf("answer key %q points at %q, want %q", q.Answer, got, want)
			}
		}
	}
}

func TestCompactScenario(t *testing.T) {
	if got := compactScenario("Example: short case"); got != "short case" {
		t.Fatalf("label should be stripped, got %q", got)
	}
	long := strings.Repeat("x", 200)
	got := compactScenario(long)
	if len([]rune(got)) != 120 {
		t.Fatalf("long scenario should compact to 120 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("compacted scenario should end with ellipsis, got %q", got)
	}
}
