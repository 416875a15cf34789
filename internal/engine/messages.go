package engine

import (
	"fmt"
	"strings"

	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/session"
)

const developerContact = "@is_Ray_X"

// tr picks the Arabic or English variant for the given language.
func tr(lang content.Language, ar, en string) string {
	if content.NormalizeLanguage(lang) == content.LangEnglish {
		return en
	}
	return ar
}

func boolMark(v bool) string {
	if v {
		return "✅"
	}
	return "❌"
}

func introText(lang content.Language) string {
	return tr(lang,
		"مرحبًا بك في Sin Trade AI.\n\n"+
			"هذا مساعد تعليمي في التداول يساعدك على التعلم خطوة بخطوة "+
			"من خلال الدروس والاختبارات والمحاكاة وتحديات التحليل اليومية. "+
			"يركز على إدارة المخاطر والانضباط وبناء العادات الاحترافية.\n\n"+
			"المطور: "+developerContact,
		"Welcome to Sin Trade AI.\n\n"+
			"This is an educational trading assistant to help you learn step by step "+
			"through lessons, quizzes, simulations, and daily analysis challenges. "+
			"It focuses on risk management, discipline, and professional habits.\n\n"+
			"Developer: "+developerContact)
}

func helpText(lang content.Language) string {
	return tr(lang,
		"الأوامر:\n"+
			"lesson - الحصول على الدرس التالي حسب مستواك\n"+
			"simulate - بدء محاكاة تداول تدريبية\n"+
			"challenge - الحصول على تحدي تحليل يومي\n"+
			"ask - بدء محادثة مع المساعد\n"+
			"status - عرض تقدمك\n"+
			"kill - إلغاء الدرس/الاختبار/المحاكاة/التحدي النشط\n"+
			"reset - إعادة تعيين الجلسة",
		"Commands:\n"+
			"lesson - get your next lesson\n"+
			"simulate - start a training simulation\n"+
			"challenge - get a daily analysis challenge\n"+
			"ask - start an assistant conversation\n"+
			"status - show your progress\n"+
			"kill - cancel active lesson/quiz/simulation/challenge\n"+
			"reset - reset session")
}

func fallbackText(lang content.Language) string {
	return tr(lang,
		"لم أفهم الطلب.\n\n"+helpText(lang)+"\n\nإذا كنت جديدًا، ابدأ بالدرس.",
		"I didn't understand that.\n\n"+helpText(lang)+"\n\nIf you're new, start with a lesson.") +
		"\n\n" + content.RiskReminder(lang)
}

func resetText(lang content.Language) string {
	return tr(lang,
		"✅ تمت إعادة تعيين الجلسة. ابدأ من جديد متى شئت.",
		"✅ Session has been reset. Start again whenever you like.")
}

func assistantStartText(lang content.Language) string {
	return tr(lang,
		"💬 اسألني أي سؤال عن التداول وسأجيبك!",
		"💬 Ask me any question about trading and I'll answer!")
}

func assistantQuitText(lang content.Language) string {
	return tr(lang,
		"✅ تم إنهاء المحادثة مع المساعد.",
		"✅ Assistant conversation ended.")
}

func assistantUnavailableText(lang content.Language) string {
	return tr(lang,
		"عذرًا، خدمة الذكاء الاصطناعي غير متاحة حاليًا.",
		"Sorry, the AI service is currently unavailable.")
}

func assistantNoAnswerText(lang content.Language) string {
	return tr(lang,
		"عذرًا، لم أستطع الإجابة على سؤالك. حاول مرة أخرى.",
		"Sorry, I couldn't answer your question. Try again.")
}

func busyText(lang content.Language, flow session.Flow) string {
	switch flow {
	case session.FlowLesson:
		return tr(lang,
			"❌ لديك درس مفتوح بالفعل. أكمله أولًا أو استخدم الإلغاء.",
			"❌ You already have an open lesson. Complete it first or use kill.")
	case session.FlowQuiz:
		return tr(lang,
			"❌ لديك اختبار نشط. أجب عليه قبل بدء شيء جديد.",
			"❌ You have an active quiz. Answer it before starting something new.")
	case session.FlowSimulation:
		return tr(lang,
			"❌ توجد محاكاة نشطة بالفعل. أكملها أولًا.",
			"❌ A simulation is already active. Finish it first.")
	case session.FlowDailyChallenge:
		return tr(lang,
			"❌ لديك تحدي يومي قيد الانتظار. أرسل تحليلك أولًا.",
			"❌ A daily challenge is waiting. Send your analysis first.")
	}
	return tr(lang, "❌ يوجد نشاط مفتوح بالفعل.", "❌ Something is already active.")
}

func completionThanksText(lang content.Language) string {
	return tr(lang,
		"شكرًا لاستخدامك Sin Trade AI.\n"+
			"إذا أفادك، شاركه مع أصدقائك.\n"+
			"المطور: "+developerContact,
		"Thank you for using Sin Trade AI.\n"+
			"If it helped you, please share it with your friends.\n"+
			"Developer: "+developerContact)
}

func aiUnavailableNote(lang content.Language, code, fallbackKind string) string {
	if code != "" {
		return tr(lang,
			fmt.Sprintf("❌ الذكاء الاصطناعي غير متاح (%s). سيتم استخدام %s.", code, fallbackKindAR(fallbackKind)),
			fmt.Sprintf("❌ AI is unavailable (%s). Falling back to the built-in %s.", code, fallbackKind))
	}
	return tr(lang,
		fmt.Sprintf("❌ توليد الذكاء الاصطناعي غير متاح مؤقتًا. سيتم استخدام %s.", fallbackKindAR(fallbackKind)),
		fmt.Sprintf("❌ AI generation is temporarily unavailable. Falling back to the built-in %s.", fallbackKind))
}

func fallbackKindAR(kind string) string {
	switch kind {
	case "curriculum":
		return "المنهج المدمج"
	case "simulation":
		return "محاكاة مدمجة"
	case "challenge":
		return "تحدٍ مدمج"
	}
	return kind
}

func renderLesson(lesson content.Lesson, lang content.Language) string {
	var bullets strings.Builder
	for _, p := range lesson.BulletPoints {
		bullets.WriteString("- ")
		bullets.WriteString(p)
		bullets.WriteString("\n")
	}
	quizPlan := tr(lang,
		"أرسل \"إكمال\" لبدء الاختبار.",
		"Send \"complete\" to start the quiz.")
	if lesson.IsDynamic() {
		quizPlan = tr(lang,
			fmt.Sprintf("أرسل \"إكمال\" لبدء %d سؤال اختبار.", AIQuizPerLesson),
			fmt.Sprintf("Send \"complete\" to start %d quiz questions.", AIQuizPerLesson))
	}
	return fmt.Sprintf("%s\n%s: %s\n%s: %s\n\n%s:\n%s\n%s:\n%s\n\n%s",
		content.LevelLabel(lesson.Level, lang),
		tr(lang, "الدرس", "Lesson"), lesson.Title,
		tr(lang, "الهدف", "Objective"), lesson.Objective,
		tr(lang, "النقاط الرئيسية", "Key Points"), strings.TrimRight(bullets.String(), "\n")+"\n",
		tr(lang, "مثال عملي", "Practical Example"), lesson.Example,
		quizPlan)
}

func renderQuizQuestion(q *session.QuizState, lang content.Language) string {
	question := q.Questions[q.CurrentIndex]
	var options strings.Builder
	for _, key := range content.OptionKeys {
		options.WriteString(fmt.Sprintf("%s) %s\n", key, question.Options[key]))
	}
	return tr(lang,
		fmt.Sprintf("اختبار %d/%d\n%s\n%s\nاكتب A أو B أو C أو D.",
			q.CurrentIndex+1, len(q.Questions), question.Prompt, options.String()),
		fmt.Sprintf("Quiz %d/%d\n%s\n%s\nType A, B, C, or D.",
			q.CurrentIndex+1, len(q.Questions), question.Prompt, options.String()))
}

func renderScenarioIntro(sc content.SimulationScenario, lang content.Language, note string) string {
	contextLine := ""
	if sc.Context != "" {
		contextLine = tr(lang, "- السياق: ", "- Context: ") + sc.Context + "\n"
	}
	body := tr(lang,
		fmt.Sprintf("محاكاة تداول تدريبية\n- الرمز: %s\n- السعر الحالي: %.2f DZD\n- الدعم: %.2f DZD\n- المقاومة: %.2f DZD\n\n%sالسؤال 1/4: اختر الاتجاه (لونغ أو شورت).",
			sc.Symbol, sc.Entry, sc.Support, sc.Resistance, contextLine),
		fmt.Sprintf("Training trade simulation\n- Symbol: %s\n- Current price: %.2f DZD\n- Support: %.2f DZD\n- Resistance: %.2f DZD\n\n%sQuestion 1/4: choose the direction (long or short).",
			sc.Symbol, sc.Entry, sc.Support, sc.Resistance, contextLine))
	if note != "" {
		return note + "\n\n" + body
	}
	return body
}

func languageLabel(lang, display content.Language) string {
	if content.NormalizeLanguage(display) == content.LangEnglish {
		if lang == content.LangEnglish {
			return "English"
		}
		return "Arabic"
	}
	if lang == content.LangEnglish {
		return "الإنجليزية"
	}
	return "العربية"
}

func accessLabel(access content.Access, lang content.Language) string {
	if content.NormalizeLanguage(lang) == content.LangEnglish {
		if access == content.AccessPremium {
			return "Premium"
		}
		return "Free"
	}
	if access == content.AccessPremium {
		return "بريميوم"
	}
	return "مجاني"
}

func focusLabel(focus content.Focus, lang content.Language) string {
	if content.NormalizeLanguage(lang) == content.LangEnglish {
		switch focus {
		case content.FocusSpot:
			return "Spot"
		case content.FocusFutures:
			return "Futures"
		}
		return "Both"
	}
	switch focus {
	case content.FocusSpot:
		return "سبوت"
	case content.FocusFutures:
		return "فيوتشرز"
	}
	return "كلاهما"
}

func profileSummary(s *session.Session) string {
	lang := s.Language
	return fmt.Sprintf("- %s: %s\n- %s: %s %s\n- %s: %s\n- %s: %s",
		tr(lang, "المستوى", "Level"), content.LevelLabel(s.Level, lang),
		tr(lang, "الوصول", "Access"), boolMark(s.Access == content.AccessPremium), accessLabel(s.Access, lang),
		tr(lang, "التركيز", "Focus"), focusLabel(s.Focus, lang),
		tr(lang, "اللغة", "Language"), languageLabel(content.NormalizeLanguage(lang), lang))
}
