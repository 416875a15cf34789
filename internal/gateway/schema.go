package gateway

import "github.com/israyx/sintrade/internal/content"

// Schema is a named JSON Schema definition used to guard normalized
// payloads before they reach the conversation engine.
type Schema struct {
	Name       string
	Definition map[string]any
}

var quizQuestionSchema = map[string]any{
	"type":     "object",
	"required": []any{"prompt", "options", "answer", "explanation"},
	"properties": map[string]any{
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "object",
			"required": []any{"A", "B", "C", "D"},
			"properties": map[string]any{
				"A": map[string]any{"type": "string", "minLength": 1},
				"B": map[string]any{"type": "string", "minLength": 1},
				"C": map[string]any{"type": "string", "minLength": 1},
				"D": map[string]any{"type": "string", "minLength": 1},
			},
			"additionalProperties": false,
		},
		"answer":      map[string]any{"enum": []any{"A", "B", "C", "D"}},
		"explanation": map[string]any{"type": "string"},
	},
}

var lessonSchema = &Schema{
	Name: "lesson",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"title", "objective", "bullet_points", "example"},
		"properties": map[string]any{
			"title":     map[string]any{"type": "string", "minLength": 1},
			"objective": map[string]any{"type": "string", "minLength": 1},
			"bullet_points": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 4,
				"maxItems": 4,
			},
			"example": map[string]any{"type": "string", "minLength": 1},
			"quiz": map[string]any{
				"type":  "array",
				"items": quizQuestionSchema,
			},
		},
	},
}

var quizPackSchema = &Schema{
	Name: "quiz_pack",
	Definition: map[string]any{
		"type":  "array",
		"items": quizQuestionSchema,
	},
}

var scenarioSchema = &Schema{
	Name: "scenario",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"symbol", "entry", "support", "resistance", "context"},
		"properties": map[string]any{
			"symbol":     map[string]any{"type": "string", "minLength": 1},
			"entry":      map[string]any{"type": "number"},
			"support":    map[string]any{"type": "number"},
			"resistance": map[string]any{"type": "number"},
			"context":    map[string]any{"type": "string", "minLength": 1},
		},
	},
}

var challengeSchema = &Schema{
	Name: "daily_challenge",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"prompt", "expected_keywords"},
		"properties": map[string]any{
			"prompt": map[string]any{"type": "string", "minLength": 1},
			"expected_keywords": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 4,
				"maxItems": 4,
			},
		},
	},
}

// Document builders re-projecting normalized values into the wire shape
// the schemas describe.

func lessonDoc(l *content.Lesson) map[string]any {
	return map[string]any{
		"title":         l.Title,
		"objective":     l.Objective,
		"bullet_points": stringsDoc(l.BulletPoints),
		"example":       l.Example,
		"quiz":          quizDoc(l.Quiz),
	}
}

func quizDoc(quiz []content.QuizQuestion) []any {
	out := make([]any, 0, len(quiz))
	for _, q := range quiz {
		options := make(map[string]any, len(q.Options))
		for k, v := range q.Options {
			options[k] = v
		}
		out = append(out, map[string]any{
			"prompt":      q.Prompt,
			"options":     options,
			"answer":      q.Answer,
			"explanation": q.Explanation,
		})
	}
	return out
}

func scenarioDoc(s *content.SimulationScenario) map[string]any {
	return map[string]any{
		"symbol":     s.Symbol,
		"entry":      s.Entry,
		"support":    s.Support,
		"resistance": s.Resistance,
		"context":    s.Context,
	}
}

func challengeDoc(c *content.DailyChallenge) map[string]any {
	return map[string]any{
		"prompt":            c.Prompt,
		"expected_keywords": stringsDoc(c.ExpectedKeywords),
	}
}

func stringsDoc(items []string) []any {
	out := make([]any, 0, len(items))
	for _, s := range items {
		out = append(out, s)
	}
	return out
}
