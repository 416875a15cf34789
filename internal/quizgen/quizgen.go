// Package quizgen derives fresh quiz variants from a lesson's base
// questions. Variants rephrase the prompt through a fixed template set and
// permute the options; a per-lesson signature history keeps repeats away
// from the same user until the combination space is exhausted.
package quizgen

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/israyx/sintrade/internal/content"
)

// promptStyles are the prompt templates. {prompt} receives the base
// prompt; the scenario style prepends a compacted lesson example.
var promptStyles = []string{
	"{prompt}",
	"Knowledge check: {prompt}",
	"Risk-check first: {prompt}",
	"Execution check: {prompt}",
	"Process review: {prompt}",
	"Scenario focus: {scenario} {prompt}",
	"Before executing, answer: {prompt}",
}

const (
	minQuestions = 2
	maxQuestions = 3
	maxAttempts  = 300
)

var promptSpaceRe = regexp.MustCompile(`\s+`)
var examplePrefixRe = regexp.MustCompile(`(?i)^\s*(?:Example|مثال)\s*:\s*`)

// Build generates a random non-repeating quiz variant for a lesson. The
// history set is mutated: new signatures are added, and it is cleared when
// the remaining combination space cannot fill the target. Returns nil for
// lessons without base questions.
func Build(lesson content.Lesson, history map[string]struct{}) []content.QuizQuestion {
	if len(lesson.Quiz) == 0 {
		return nil
	}

	target := minQuestions + rand.IntN(maxQuestions-minQuestions+1)

	var generated []content.QuizQuestion
	generatedSigs := make(map[string]struct{})
	usedBasePrompts := make(map[string]struct{})
	attempts := 0

	for len(generated) < target && attempts < maxAttempts {
		attempts++
		base := lesson.Quiz[rand.IntN(len(lesson.Quiz))]
		baseKey := normalizePrompt(base.Prompt)
		if len(usedBasePrompts) < len(lesson.Quiz) {
			if _, used := usedBasePrompts[baseKey]; used {
				continue
			}
		}

		variant, signature := buildVariant(base, lesson)
		if _, seen := history[signature]; seen {
			continue
		}
		if _, seen := generatedSigs[signature]; seen {
			continue
		}

		generated = append(generated, variant)
		generatedSigs[signature] = struct{}{}
		usedBasePrompts[baseKey] = struct{}{}
	}

	// Exhausted space: wipe the history and retry with a doubled budget.
	if len(generated) < target {
		clear(history)
		for len(generated) < target && attempts < maxAttempts*2 {
			attempts++
			base := lesson.Quiz[rand.IntN(len(lesson.Quiz))]
			variant, signature := buildVariant(base, lesson)
			if _, seen := generatedSigs[signature]; seen {
				continue
			}
			generated = append(generated, variant)
			generatedSigs[signature] = struct{}{}
		}
	}

	// Deterministic fallback: every base question, options shuffled.
	if len(generated) == 0 {
		for _, q := range lesson.Quiz {
			shuffled, _ := shuffleOptions(q)
			generated = append(generated, shuffled)
			generatedSigs[questionSignature(lesson.ID, shuffled)] = struct{}{}
		}
	}

	for sig := range generatedSigs {
		history[sig] = struct{}{}
	}
	if len(generated) > target {
		generated = generated[:target]
	}
	return generated
}

func buildVariant(base content.QuizQuestion, lesson content.Lesson) (content.QuizQuestion, string) {
	styleIndex := rand.IntN(len(promptStyles))
	prompt := formatPrompt(base.Prompt, lesson, styleIndex)

	shuffled, order := shuffleOptions(base)
	signature := partsSignature(lesson.ID, base.Prompt, styleIndex, order)

	return content.QuizQuestion{
		Prompt:      prompt,
		Options:     shuffled.Options,
		Answer:      shuffled.Answer,
		Explanation: base.Explanation,
	}, signature
}

func formatPrompt(basePrompt string, lesson content.Lesson, styleIndex int) string {
	style := promptStyles[styleIndex]
	style = strings.ReplaceAll(style, "{scenario}", compactScenario(lesson.Example))
	return strings.ReplaceAll(style, "{prompt}", basePrompt)
}

// compactScenario strips the example label and caps the text at 120 runes.
func compactScenario(example string) string {
	clean := examplePrefixRe.ReplaceAllString(strings.TrimSpace(example), "")
	runes := []rune(clean)
	if len(runes) <= 120 {
		return clean
	}
	return strings.TrimRight(string(runes[:117]), " ") + "..."
}

// shuffleOptions permutes a question's options, relabels them A..D, and
// follows the correct answer to its new key.
func shuffleOptions(q content.QuizQuestion) (content.QuizQuestion, []int) {
	indices := rand.Perm(len(content.OptionKeys))
	correctText := q.Options[strings.ToUpper(q.Answer)]

	remapped := make(map[string]string, len(content.OptionKeys))
	newAnswer := "A"
	for i, key := range content.OptionKeys {
		text := q.Options[content.OptionKeys[indices[i]]]
		remapped[key] = text
		if text == correctText {
			newAnswer = key
		}
	}

	return content.QuizQuestion{
		Prompt:      q.Prompt,
		Options:     remapped,
		Answer:      newAnswer,
		Explanation: q.Explanation,
	}, indices
}

func partsSignature(lessonID, basePrompt string, styleIndex int, order []int) string {
	parts := make([]string, len(order))
	for i, idx := range order {
		parts[i] = fmt.Sprint(idx)
	}
	return fmt.Sprintf("%s|%s|s%d|o%s", lessonID, normalizePrompt(basePrompt), styleIndex, strings.Join(parts, ","))
}

func questionSignature(lessonID string, q content.QuizQuestion) string {
	options := make([]string, len(content.OptionKeys))
	for i, key := range content.OptionKeys {
		options[i] = q.Options[key]
	}
	return fmt.Sprintf("%s|%s|%s|%s", lessonID, normalizePrompt(q.Prompt), strings.Join(options, "|"), q.Answer)
}

func normalizePrompt(text string) string {
	return promptSpaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}
