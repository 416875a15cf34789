package gateway

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/israyx/sintrade/internal/content"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// safeText collapses whitespace and falls back to a default when the value
// is missing, non-string, or blank.
func safeText(value any, fallback string) string {
	if s, ok := value.(string); ok {
		normalized := strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
		if normalized != "" {
			return normalized
		}
	}
	return fallback
}

// safeTextList keeps only non-blank string items, whitespace-collapsed.
func safeTextList(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	var items []string
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		normalized := strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
		if normalized != "" {
			items = append(items, normalized)
		}
	}
	return items
}

func safeFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

// normalizeOptions coerces the model's options shape into exactly four
// labeled choices. Accepts a case-insensitive A-D object or a list of at
// least four entries; anything else yields nil.
func normalizeOptions(raw any) map[string]string {
	if obj, ok := raw.(map[string]any); ok {
		normalized := make(map[string]string, 4)
		for _, key := range content.OptionKeys {
			value := obj[key]
			if value == nil {
				value = obj[strings.ToLower(key)]
			}
			if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
				normalized[key] = strings.TrimSpace(s)
			}
		}
		if len(normalized) == 4 {
			return normalized
		}
	}

	if list, ok := raw.([]any); ok {
		var values []string
		for _, item := range list {
			if obj, ok := item.(map[string]any); ok {
				value := obj["text"]
				if value == nil {
					value = obj["option"]
				}
				if value == nil {
					value = obj["value"]
				}
				if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
					values = append(values, strings.TrimSpace(s))
				}
				continue
			}
			text := strings.TrimSpace(fmt.Sprint(item))
			if text != "" {
				values = append(values, text)
			}
		}
		if len(values) >= 4 {
			normalized := make(map[string]string, 4)
			for i, key := range content.OptionKeys {
				normalized[key] = values[i]
			}
			return normalized
		}
	}
	return nil
}

// normalizeAnswer resolves the model's answer to an option key. Accepts a
// letter, the full option text, or a 1-based index; defaults to "A".
func normalizeAnswer(raw any, options map[string]string) string {
	switch v := raw.(type) {
	case string:
		key := strings.ToUpper(strings.TrimSpace(v))
		if _, ok := options[key]; ok {
			return key
		}
		for optionKey, optionText := range options {
			if strings.EqualFold(strings.TrimSpace(optionText), strings.TrimSpace(v)) {
				return optionKey
			}
		}
	case float64:
		idx := int(v)
		if float64(idx) == v && idx >= 1 && idx <= 4 {
			return content.OptionKeys[idx-1]
		}
	}
	return "A"
}

// parseQuiz extracts well-formed questions from a raw quiz list, skipping
// entries without a prompt or four options.
func parseQuiz(raw any, lang content.Language) []content.QuizQuestion {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	fallbackExpl := tr(lang, "راجع منطق إدارة المخاطر أولًا.", "Review risk logic first.")

	var parsed []content.QuizQuestion
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		prompt := safeText(firstOf(obj, "prompt", "question"), "")
		explanation := safeText(firstOf(obj, "explanation", "reasoning", "why"), fallbackExpl)
		options := normalizeOptions(firstOf(obj, "options", "choices"))
		if prompt == "" || len(options) < 4 {
			continue
		}
		answer := normalizeAnswer(firstOf(obj, "answer", "correct_answer", "correct"), options)
		parsed = append(parsed, content.QuizQuestion{
			Prompt:      prompt,
			Options:     options,
			Answer:      answer,
			Explanation: explanation,
		})
	}
	return parsed
}

func firstOf(obj map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// parseLesson builds a dynamic lesson from a decoded response, filling
// defaults for missing fields and padding bullets to four.
func parseLesson(data map[string]any, level content.Level, lang content.Language) *content.Lesson {
	titleDefault := tr(lang, "درس ذكاء اصطناعي", "AI Lesson")
	objectiveDefault := tr(lang,
		"بناء عملية تداول منضبطة تبدأ بإدارة المخاطر.",
		"Build a disciplined process that starts with risk management.")
	exampleDefault := tr(lang,
		"خطط للصفقة قبل الدخول مع تحديد نقطة الإبطال.",
		"Plan the trade before entry with clear invalidation.")

	bullets := safeTextList(data["bullet_points"])
	if len(bullets) < 4 {
		bullets = append(bullets, fallbackBullets(lang)...)
	}

	return &content.Lesson{
		ID:           content.DynamicIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:10],
		Level:        level,
		Title:        safeText(data["title"], titleDefault),
		Objective:    safeText(data["objective"], objectiveDefault),
		BulletPoints: bullets[:4],
		Example:      safeText(data["example"], exampleDefault),
		Quiz:         parseQuiz(data["quiz"], lang),
	}
}

// parseScenario validates and normalizes a simulation scenario. The price
// levels must bracket the entry or the scenario is rejected.
func parseScenario(data map[string]any, lang content.Language) *content.SimulationScenario {
	symbol := safeText(data["symbol"], "")
	entry, okEntry := safeFloat(data["entry"])
	support, okSupport := safeFloat(data["support"])
	resistance, okResistance := safeFloat(data["resistance"])
	if symbol == "" || !okEntry || !okSupport || !okResistance {
		return nil
	}
	if support >= entry || resistance <= entry {
		return nil
	}
	contextDefault := tr(lang, "اعتمد على الخطة لا على التوقع.", "Use your plan, not predictions.")
	return &content.SimulationScenario{
		Symbol:     strings.ToUpper(symbol),
		Entry:      entry,
		Support:    support,
		Resistance: resistance,
		Context:    safeText(data["context"], contextDefault),
	}
}

// parseChallenge normalizes a daily challenge, enforcing the localized
// prompt prefix and exactly four keywords.
func parseChallenge(data map[string]any, lang content.Language) *content.DailyChallenge {
	prompt := safeText(data["prompt"], "")
	if prompt == "" {
		return nil
	}
	keywords := safeTextList(data["expected_keywords"])
	if len(keywords) > 4 {
		keywords = keywords[:4]
	}
	if len(keywords) < 4 {
		keywords = fallbackKeywords(lang)
	}

	lower := strings.ToLower(prompt)
	if lang == content.LangEnglish {
		if !strings.HasPrefix(lower, "daily challenge") {
			prompt = "Daily Challenge: " + prompt
		}
	} else {
		if !strings.HasPrefix(lower, "تحدي اليوم") && !strings.HasPrefix(lower, "daily challenge") {
			prompt = "تحدي اليوم: " + prompt
		}
	}
	return &content.DailyChallenge{Prompt: prompt, ExpectedKeywords: keywords}
}
