package gateway

import (
	"fmt"

	"github.com/israyx/sintrade/internal/content"
)

// tr picks the Arabic or English variant for the given language.
func tr(lang content.Language, ar, en string) string {
	if lang == content.LangEnglish {
		return en
	}
	return ar
}

func fallbackBullets(lang content.Language) []string {
	if lang == content.LangEnglish {
		return []string{
			"Define invalidation before every entry.",
			"Use small, consistent risk per trade.",
			"Avoid emotional and revenge trading.",
			"Journal executions and review process quality.",
		}
	}
	return []string{
		"حدد نقطة الإبطال قبل دخول أي صفقة.",
		"خاطر بنسبة صغيرة وثابتة في كل صفقة.",
		"تجنب الدخول العاطفي وتداول الانتقام.",
		"سجل تنفيذك وراجع جودة العملية.",
	}
}

func fallbackKeywords(lang content.Language) []string {
	if lang == content.LangEnglish {
		return []string{"risk", "invalidation", "structure", "confirmation"}
	}
	return []string{"مخاطرة", "إبطال", "هيكل", "تأكيد"}
}

func fallbackQuiz(lang content.Language) []content.QuizQuestion {
	if lang == content.LangEnglish {
		return []content.QuizQuestion{
			{
				Prompt: "What must be defined before any entry?",
				Options: map[string]string{
					"A": "Invalidation point and risk limit",
					"B": "Guaranteed outcome",
					"C": "Maximum leverage",
					"D": "A social media signal",
				},
				Answer:      "A",
				Explanation: "Every trade needs invalidation and controlled risk.",
			},
			{
				Prompt: "Which mindset is more professional?",
				Options: map[string]string{
					"A": "Win every trade",
					"B": "Process consistency over short-term outcomes",
					"C": "Double risk after a loss",
					"D": "Enter every opportunity",
				},
				Answer:      "B",
				Explanation: "Professional growth comes from repeatable process quality.",
			},
		}
	}
	return []content.QuizQuestion{
		{
			Prompt: "ما الذي يجب تحديده قبل أي دخول؟",
			Options: map[string]string{
				"A": "نقطة الإبطال وحد المخاطرة",
				"B": "نتيجة مضمونة",
				"C": "أعلى رافعة ممكنة",
				"D": "إشارة من مواقع التواصل",
			},
			Answer:      "A",
			Explanation: "كل صفقة تحتاج نقطة إبطال ومخاطرة منضبطة.",
		},
		{
			Prompt: "أي عقلية هي الأكثر احترافية؟",
			Options: map[string]string{
				"A": "الربح في كل صفقة",
				"B": "ثبات العملية أهم من النتائج القصيرة",
				"C": "مضاعفة المخاطرة بعد الخسارة",
				"D": "الدخول في كل فرصة",
			},
			Answer:      "B",
			Explanation: "النمو الاحترافي يأتي من جودة عملية قابلة للتكرار.",
		},
	}
}

// ensureQuizCount trims or pads the merged quiz to exactly count
// questions. Padding cycles the fallback pairs with a numeric suffix so
// prompts stay distinct.
func ensureQuizCount(quiz []content.QuizQuestion, count int, lang content.Language) []content.QuizQuestion {
	if count <= 0 {
		return nil
	}
	if len(quiz) >= count {
		return quiz[:count]
	}
	padded := make([]content.QuizQuestion, len(quiz), count)
	copy(padded, quiz)
	seed := fallbackQuiz(lang)
	for i := 0; len(padded) < count; i++ {
		base := seed[i%len(seed)]
		padded = append(padded, content.QuizQuestion{
			Prompt:      fmt.Sprintf("%s (%d)", base.Prompt, len(padded)+1),
			Options:     base.CloneOptions(),
			Answer:      base.Answer,
			Explanation: base.Explanation,
		})
	}
	return padded
}
