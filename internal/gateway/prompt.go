package gateway

import (
	"fmt"
	"strings"

	"github.com/israyx/sintrade/internal/content"
)

func systemPrompt(lang content.Language) string {
	return tr(lang,
		"أنت Sin Trade AI، مساعد تعليمي في التداول. "+
			"لا تقدم نصائح مالية مباشرة، ولا تضمن الأرباح. "+
			"أكد دائمًا على إدارة المخاطر والانضباط.",
		"You are Sin Trade AI, an educational trading assistant. "+
			"Do not provide direct financial advice and never guarantee profits. "+
			"Always emphasize risk management and discipline.")
}

func questionPrompt(question string, lang content.Language) string {
	if lang == content.LangEnglish {
		return fmt.Sprintf(
			"User asks: %s\n\n"+
				"Answer the user's question in clear, concise English. "+
				"Remember: Do not give direct financial advice, focus on education and risk management.",
			question)
	}
	return fmt.Sprintf(
		"المستخدم يسأل: %s\n\n"+
			"أجب على سؤال المستخدم بلغة عربية واضحة ومختصرة. "+
			"تذكر: لا تعطي نصائح مالية مباشرة، ركز على التعليم وإدارة المخاطر.",
		question)
}

// lastN joins the trailing n items, or a localized "none" when empty.
func lastN(items []string, n int, sep string, lang content.Language) string {
	if len(items) == 0 {
		return tr(lang, "لا يوجد", "none")
	}
	if len(items) > n {
		items = items[len(items)-n:]
	}
	return strings.Join(items, sep)
}

func lessonPrompt(p LessonParams, lang content.Language) string {
	recentTitles := lastN(p.RecentTitles, 8, ", ", lang)
	recentQuestions := lastN(p.RecentQuestions, 8, " | ", lang)

	if lang == content.LangEnglish {
		return fmt.Sprintf(
			"Create one concise trading lesson in strict JSON.\n"+
				"Curriculum position: lesson %d of %d\n"+
				"Level: %s\n"+
				"Access: %s\n"+
				"Focus: %s\n"+
				"Avoid repeating these recent lesson titles: %s\n"+
				"Avoid repeating these recent quiz questions: %s\n\n"+
				"JSON schema:\n"+
				"{\n"+
				"  \"title\": \"string\",\n"+
				"  \"objective\": \"string\",\n"+
				"  \"bullet_points\": [\"string\",\"string\",\"string\",\"string\"],\n"+
				"  \"example\": \"string\"\n"+
				"}\n\n"+
				"Rules:\n"+
				"- Keep it practical and concise.\n"+
				"- Provide exactly 4 bullet points.\n"+
				"- Emphasize risk, discipline, and emotional control.\n"+
				"- If money is referenced, use Algerian dinar (DZD) only.\n"+
				"- Return JSON only, no markdown.",
			p.LessonNumber, p.TotalLessons, p.Level, p.Access, p.Focus,
			recentTitles, recentQuestions)
	}
	return fmt.Sprintf(
		"أنشئ درس تداول واحدًا مختصرًا بصيغة JSON صارمة وباللغة العربية.\n"+
			"موقع الدرس في المنهج: الدرس %d من %d\n"+
			"المستوى: %s\n"+
			"نوع الوصول: %s\n"+
			"التركيز: %s\n"+
			"تجنب تكرار عناوين الدروس الأخيرة التالية: %s\n"+
			"تجنب تكرار أسئلة الاختبارات الأخيرة التالية: %s\n\n"+
			"مخطط JSON:\n"+
			"{\n"+
			"  \"title\": \"string\",\n"+
			"  \"objective\": \"string\",\n"+
			"  \"bullet_points\": [\"string\",\"string\",\"string\",\"string\"],\n"+
			"  \"example\": \"string\"\n"+
			"}\n\n"+
			"القواعد:\n"+
			"- اجعل الدرس مختصرًا وعمليًا.\n"+
			"- قدم 4 نقاط رئيسية بالضبط.\n"+
			"- ركز على المخاطر والانضباط والتحكم العاطفي.\n"+
			"- عند ذكر المال استخدم الدينار الجزائري (DZD/دج) فقط.\n"+
			"- أعد JSON فقط دون Markdown.",
		p.LessonNumber, p.TotalLessons, p.Level, p.Access, p.Focus,
		recentTitles, recentQuestions)
}

func quizChunkPrompt(p QuizPackParams, chunkIndex, totalChunks, target int, lang content.Language) string {
	recentQuestions := lastN(p.RecentQuestions, 16, " | ", lang)
	points := p.Lesson.BulletPoints
	if len(points) > 4 {
		points = points[:4]
	}
	lessonPoints := strings.Join(points, " | ")

	if lang == content.LangEnglish {
		return fmt.Sprintf(
			"Create quiz questions for this lesson in strict JSON.\n"+
				"Part: %d/%d\n"+
				"Level: %s\n"+
				"Focus: %s\n"+
				"Lesson title: %s\n"+
				"Lesson objective: %s\n"+
				"Lesson points: %s\n"+
				"Avoid repeating recent quiz questions: %s\n\n"+
				"JSON schema:\n"+
				"{\n"+
				"  \"quiz\": [\n"+
				"    {\n"+
				"      \"prompt\": \"string\",\n"+
				"      \"options\": {\"A\":\"string\",\"B\":\"string\",\"C\":\"string\",\"D\":\"string\"},\n"+
				"      \"answer\": \"A|B|C|D\",\n"+
				"      \"explanation\": \"string\"\n"+
				"    }\n"+
				"  ]\n"+
				"}\n\n"+
				"Rules:\n"+
				"- Provide exactly %d questions.\n"+
				"- Keep each chunk distinct.\n"+
				"- Prioritize practical risk-management thinking.\n"+
				"- If money appears, use DZD only.\n"+
				"- Return JSON only.",
			chunkIndex+1, totalChunks, p.Lesson.Level, p.Focus,
			p.Lesson.Title, p.Lesson.Objective, lessonPoints, recentQuestions, target)
	}
	return fmt.Sprintf(
		"أنشئ أسئلة اختبار لهذا الدرس بصيغة JSON صارمة وباللغة العربية.\n"+
			"جزء: %d/%d\n"+
			"المستوى: %s\n"+
			"التركيز: %s\n"+
			"عنوان الدرس: %s\n"+
			"هدف الدرس: %s\n"+
			"نقاط الدرس: %s\n"+
			"تجنب تكرار أسئلة الاختبار الأخيرة التالية: %s\n\n"+
			"مخطط JSON:\n"+
			"{\n"+
			"  \"quiz\": [\n"+
			"    {\n"+
			"      \"prompt\": \"string\",\n"+
			"      \"options\": {\"A\":\"string\",\"B\":\"string\",\"C\":\"string\",\"D\":\"string\"},\n"+
			"      \"answer\": \"A|B|C|D\",\n"+
			"      \"explanation\": \"string\"\n"+
			"    }\n"+
			"  ]\n"+
			"}\n\n"+
			"القواعد:\n"+
			"- قدم %d سؤالًا بالضبط.\n"+
			"- اجعل هذا الجزء مختلفًا عن بقية الأجزاء.\n"+
			"- كل سؤال يجب أن يختبر التفكير العملي المبني على إدارة المخاطر أولًا.\n"+
			"- إذا ظهر سياق مالي استخدم الدينار الجزائري (DZD/دج) فقط.\n"+
			"- أعد JSON فقط دون Markdown.",
		chunkIndex+1, totalChunks, p.Lesson.Level, p.Focus,
		p.Lesson.Title, p.Lesson.Objective, lessonPoints, recentQuestions, target)
}

func scenarioPrompt(level content.Level, focus content.Focus, lang content.Language) string {
	if lang == content.LangEnglish {
		return fmt.Sprintf(
			"Create one trading simulation scenario in strict JSON.\n"+
				"Level: %s\n"+
				"Focus: %s\n\n"+
				"JSON schema:\n"+
				"{\n"+
				"  \"symbol\": \"BTCDZD|ETHDZD|SOLDZD|BNBDZD|XRPDZD\",\n"+
				"  \"entry\": 123.45,\n"+
				"  \"support\": 120.00,\n"+
				"  \"resistance\": 130.00,\n"+
				"  \"context\": \"short educational context sentence\"\n"+
				"}\n\n"+
				"Rules:\n"+
				"- Use realistic DZD-based values.\n"+
				"- Keep context educational.\n"+
				"- Return JSON only.",
			level, focus)
	}
	return fmt.Sprintf(
		"أنشئ سيناريو محاكاة تداول واحدًا بصيغة JSON صارمة وباللغة العربية.\n"+
			"المستوى: %s\n"+
			"التركيز: %s\n\n"+
			"مخطط JSON:\n"+
			"{\n"+
			"  \"symbol\": \"BTCDZD|ETHDZD|SOLDZD|BNBDZD|XRPDZD\",\n"+
			"  \"entry\": 123.45,\n"+
			"  \"support\": 120.00,\n"+
			"  \"resistance\": 130.00,\n"+
			"  \"context\": \"جملة سياق تعليمية قصيرة\"\n"+
			"}\n\n"+
			"القواعد:\n"+
			"- استخدم أرقامًا واقعية بالدينار الجزائري (DZD/دج).\n"+
			"- اجعل السياق تعليميًا.\n"+
			"- أعد JSON فقط.",
		level, focus)
}

func challengePrompt(level content.Level, focus content.Focus, lang content.Language) string {
	if lang == content.LangEnglish {
		return fmt.Sprintf(
			"Create one daily trading analysis challenge in strict JSON.\n"+
				"Level: %s\n"+
				"Focus: %s\n\n"+
				"JSON schema:\n"+
				"{\n"+
				"  \"prompt\": \"Daily Challenge: ...\",\n"+
				"  \"expected_keywords\": [\"risk\",\"invalidation\",\"confirmation\",\"structure\"]\n"+
				"}\n\n"+
				"Rules:\n"+
				"- Require analytical reasoning, not guessing.\n"+
				"- Include invalidation and risk.\n"+
				"- If prices appear, use DZD.\n"+
				"- Return exactly 4 keywords.\n"+
				"- Return JSON only.",
			level, focus)
	}
	return fmt.Sprintf(
		"أنشئ تحدي تحليل تداول يومي واحد بصيغة JSON صارمة وباللغة العربية.\n"+
			"المستوى: %s\n"+
			"التركيز: %s\n\n"+
			"مخطط JSON:\n"+
			"{\n"+
			"  \"prompt\": \"تحدي اليوم: ...\",\n"+
			"  \"expected_keywords\": [\"مخاطرة\",\"إبطال\",\"تأكيد\",\"هيكل\"]\n"+
			"}\n\n"+
			"القواعد:\n"+
			"- يجب أن يطلب السؤال تحليلًا ومنطقًا وليس تخمينًا.\n"+
			"- يجب أن يتضمن إبطال الفكرة والمخاطرة.\n"+
			"- إذا احتوى على أسعار فلتكن بالدينار الجزائري (DZD/دج).\n"+
			"- أعد 4 كلمات مفتاحية بالضبط.\n"+
			"- أعد JSON فقط.",
		level, focus)
}
