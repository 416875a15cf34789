package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/gateway"
	"github.com/israyx/sintrade/internal/session"
)

// completeKeywords mark a typed lesson-completion request. Matched whole,
// not by substring, so "incomplete" is not a completion.
var completeKeywords = map[string]struct{}{
	"complete": {}, "اكمال": {}, "إكمال": {}, "اكمل": {}, "أكمل": {}, "إكمل": {},
}

func isCompleteKeyword(lowered string) bool {
	_, ok := completeKeywords[lowered]
	return ok
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// handleFreeText routes typed input: safety filter first, then whichever
// flow holds the session, then keyword shortcuts, then the help fallback.
func (e *Engine) handleFreeText(ctx context.Context, s *session.Session, text string) Reply {
	text = strings.TrimSpace(text)
	lang := s.Language
	lowered := strings.ToLower(text)

	if IsUnrealisticRequest(text) {
		return Reply{Text: safetyRefusal(lang) + "\n\n" + content.RiskReminder(lang)}
	}

	if s.PendingLesson != nil && isCompleteKeyword(lowered) {
		return e.handleLessonComplete(ctx, s, s.PendingLesson.ID)
	}
	if s.Quiz != nil {
		if letter, ok := ExtractOption(text); ok {
			return e.handleQuizAnswer(s, letter)
		}
		return Reply{Text: tr(lang,
			"❌ اختر إجابة واحدة: A أو B أو C أو D.",
			"❌ Pick one answer: A, B, C, or D."), Prompt: PromptQuiz}
	}
	if s.Simulation != nil {
		return e.handleSimulationInput(s, text)
	}
	if s.DailyChallenge != nil {
		return e.handleChallengeAnswer(s, text)
	}
	if s.AssistantMode {
		return e.handleAssistantQuestion(ctx, s, text)
	}

	if isFrustrated(lowered) {
		return Reply{Text: frustrationText(lang)}
	}

	switch {
	case containsAny(lowered, []string{"lesson", "teach", "درس"}):
		return e.handleLessonRequest(ctx, s)
	case containsAny(lowered, []string{"simulate", "practice", "محاكاة"}):
		return e.handleSimulationRequest(ctx, s)
	case containsAny(lowered, []string{"challenge", "تحدي"}):
		return e.handleDailyChallengeRequest(ctx, s)
	}

	return Reply{Text: fallbackText(lang)}
}

// handleAssistantQuestion answers one Q&A turn; assistant mode persists
// regardless of outcome.
func (e *Engine) handleAssistantQuestion(ctx context.Context, s *session.Session, text string) Reply {
	if e.source == nil {
		return Reply{Text: assistantUnavailableText(s.Language), Prompt: PromptAssistant}
	}
	ctx = gateway.WithPurpose(ctx, "question")
	answer, ok := e.source.AnswerQuestion(ctx, text)
	if !ok || strings.TrimSpace(answer) == "" {
		return Reply{Text: assistantNoAnswerText(s.Language), Prompt: PromptAssistant}
	}
	return Reply{Text: "💬 " + answer, Prompt: PromptAssistant}
}

func (e *Engine) handleStatus(s *session.Session) Reply {
	lang := s.Language
	var lines []string
	lines = append(lines, profileSummary(s))

	if e.source == nil {
		lines = append(lines, tr(lang, "المحتوى: منهج مدمج", "Content: built-in curriculum"))
	} else {
		lines = append(lines, tr(lang, "المحتوى: ", "Content: ")+e.source.StatusLabel(lang))
	}

	available := content.LessonsFor(s.Level, s.Access)
	completed := 0
	for _, l := range available {
		if _, done := s.CompletedLessons[l.ID]; done {
			completed++
		}
	}
	lines = append(lines, tr(lang,
		fmt.Sprintf("تقدم المنهج (%s): %d/%d", content.LevelLabel(s.Level, lang), completed, len(available)),
		fmt.Sprintf("Curriculum progress (%s): %d/%d", content.LevelLabel(s.Level, lang), completed, len(available))))
	lines = append(lines, tr(lang,
		fmt.Sprintf("دروس الذكاء الاصطناعي: %d/%d", s.AILessonsCompleted, AITotalLessons),
		fmt.Sprintf("AI lessons: %d/%d", s.AILessonsCompleted, AITotalLessons)))
	lines = append(lines, tr(lang,
		fmt.Sprintf("المحاكاة المكتملة: %d | التحديات المكتملة: %d", s.AISimulationsCompleted, s.AIChallengesCompleted),
		fmt.Sprintf("Simulations done: %d | Challenges done: %d", s.AISimulationsCompleted, s.AIChallengesCompleted)))

	lines = append(lines, tr(lang,
		fmt.Sprintf("درس معلق: %s | اختبار: %s | محاكاة: %s | تحدي: %s",
			boolMark(s.PendingLesson != nil), boolMark(s.Quiz != nil),
			boolMark(s.Simulation != nil), boolMark(s.DailyChallenge != nil)),
		fmt.Sprintf("Pending lesson: %s | Quiz: %s | Simulation: %s | Challenge: %s",
			boolMark(s.PendingLesson != nil), boolMark(s.Quiz != nil),
			boolMark(s.Simulation != nil), boolMark(s.DailyChallenge != nil))))

	return Reply{Text: strings.Join(lines, "\n")}
}

func (e *Engine) handleAdminSet(s *session.Session, ev Event) Reply {
	lang := s.Language
	if !ev.Admin {
		return Reply{Text: tr(lang,
			"❌ هذا الإعداد متاح للمشغّل فقط.",
			"❌ This setting is operator-only.")}
	}

	setting := strings.ToLower(strings.TrimSpace(ev.Setting))
	value := strings.ToLower(strings.TrimSpace(ev.Value))

	switch setting {
	case "level":
		level := content.Level(value)
		if !content.ValidLevel(level) {
			return Reply{Text: tr(lang,
				"❌ مستوى غير معروف. المستويات: beginner, intermediate, advanced, professional.",
				"❌ Unknown level. Levels: beginner, intermediate, advanced, professional.")}
		}
		s.Level = level
		msg := tr(lang,
			"✅ تم ضبط المستوى: "+content.LevelLabel(level, lang),
			"✅ Level set: "+content.LevelLabel(level, lang))
		if level == content.LevelAdvanced && s.Access == content.AccessFree {
			msg += tr(lang,
				"\nملاحظة: الوصول المجاني يعرض المحتوى التعريفي للمستوى المتقدم فقط.",
				"\nNote: free access shows only the advanced preview content.")
		}
		return Reply{Text: msg}
	case "access":
		switch content.Access(value) {
		case content.AccessFree:
			s.Access = content.AccessFree
			return Reply{Text: tr(lang,
				"✅ تم ضبط الوصول: مجاني",
				"✅ Access set: free")}
		case content.AccessPremium:
			s.Access = content.AccessFree
			return Reply{Text: tr(lang,
				"🔒 البريميوم غير متاح حاليًا. تم إبقاء الوصول مجانيًا.\nللاستفسار: "+developerContact,
				"🔒 Premium is not available yet. Access stays free.\nContact: "+developerContact)}
		}
		return Reply{Text: tr(lang,
			"❌ قيمة وصول غير معروفة. القيم: free, premium.",
			"❌ Unknown access value. Values: free, premium.")}
	case "focus":
		if content.ValidFocus(content.Focus(value)) {
			s.Focus = content.Focus(value)
			return Reply{Text: tr(lang,
				"✅ تم ضبط التركيز: "+focusLabel(s.Focus, lang),
				"✅ Focus set: "+focusLabel(s.Focus, lang))}
		}
		return Reply{Text: tr(lang,
			"❌ تركيز غير معروف. القيم: spot, futures, both.",
			"❌ Unknown focus. Values: spot, futures, both.")}
	}

	return Reply{Text: tr(lang,
		"❌ إعداد غير معروف. الإعدادات: level, access, focus.",
		"❌ Unknown setting. Settings: level, access, focus.")}
}

func (e *Engine) handleLanguageSelect(s *session.Session, value string) Reply {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ar", "arabic", "العربية":
		s.Language = content.LangArabic
		return Reply{Text: "✅ تم ضبط اللغة: العربية"}
	case "en", "english":
		s.Language = content.LangEnglish
		return Reply{Text: "✅ Language set: English"}
	}
	return Reply{Text: tr(s.Language,
		"❌ لغة غير مدعومة. اختر ar أو en.",
		"❌ Unsupported language. Choose ar or en.")}
}
