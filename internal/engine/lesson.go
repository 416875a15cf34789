package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/gateway"
	"github.com/israyx/sintrade/internal/quizgen"
	"github.com/israyx/sintrade/internal/session"
)

func (e *Engine) handleLessonRequest(ctx context.Context, s *session.Session) Reply {
	s.AssistantMode = false

	if flowBusy(s) {
		return Reply{Text: busyText(s.Language, s.ActiveFlow())}
	}

	var note string
	if e.source != nil {
		s.SyncCurriculumLevel()
		if s.AILessonsCompleted >= AITotalLessons {
			return Reply{Text: tr(s.Language,
				fmt.Sprintf("✅ أنهيت مسار الذكاء الاصطناعي المكوّن من %d درسًا.\n\n%s", AITotalLessons, completionThanksText(s.Language)),
				fmt.Sprintf("✅ You finished the %d-lesson AI track.\n\n%s", AITotalLessons, completionThanksText(s.Language)))}
		}

		ctx = gateway.WithPurpose(ctx, "lesson")
		lesson, ok := e.source.GenerateLesson(ctx, gateway.LessonParams{
			Level:           s.Level,
			Access:          s.Access,
			Focus:           s.Focus,
			RecentTitles:    s.RecentLessonTitles,
			RecentQuestions: s.RecentQuizPrompts,
			LessonNumber:    s.AILessonsCompleted + 1,
			TotalLessons:    AITotalLessons,
			Language:        s.Language,
		})
		if ok {
			s.RememberLessonTitle(lesson.Title)
			s.PendingLesson = lesson
			return Reply{
				Text:     renderLesson(*lesson, s.Language),
				Prompt:   PromptComplete,
				LessonID: lesson.ID,
			}
		}
		note = aiUnavailableNote(s.Language, e.source.LastErrorCode(), "curriculum")
	}

	return e.serveStaticLesson(s, note)
}

func (e *Engine) serveStaticLesson(s *session.Session, note string) Reply {
	available := content.LessonsFor(s.Level, s.Access)
	if len(available) == 0 {
		return Reply{Text: prefixNote(note,
			content.PremiumLockMessage(s.Language)+"\n\n"+content.RiskReminder(s.Language))}
	}

	var next *content.Lesson
	for i := range available {
		if _, done := s.CompletedLessons[available[i].ID]; !done {
			next = &available[i]
			break
		}
	}

	if next == nil {
		return Reply{Text: prefixNote(note, e.levelExhaustedText(s))}
	}

	lesson := *next
	s.PendingLesson = &lesson
	return Reply{
		Text:     prefixNote(note, renderLesson(lesson, s.Language)),
		Prompt:   PromptComplete,
		LessonID: lesson.ID,
	}
}

// levelExhaustedText handles the end of a level: premium gating keeps free
// users at the advanced preview, otherwise the next level is unlocked.
func (e *Engine) levelExhaustedText(s *session.Session) string {
	lang := s.Language
	next := content.NextLevel(s.Level)
	var msg string
	switch {
	case s.Level == content.LevelAdvanced && s.Access == content.AccessFree:
		msg = tr(lang,
			"أنهيت المحتوى التعريفي المجاني للمستوى المتقدم. "+
				"البريميوم يفتح الأطر المتقدمة والأنظمة الاحترافية كاملة.",
			"You finished the free preview of the advanced level. "+
				"Premium unlocks the full advanced frameworks and professional systems.")
	case next == "":
		msg = tr(lang,
			"لقد أنهيت جميع الدروس المتاحة في ملفك.\n\n"+completionThanksText(lang),
			"You finished all lessons available for your profile.\n\n"+completionThanksText(lang))
	case next == content.LevelProfessional && s.Access == content.AccessFree:
		msg = tr(lang,
			"أنهيت هذا المستوى. المستوى الاحترافي مخصص للبريميوم فقط. "+
				"يمكنك إعادة الدروس أو الاستمرار في وضع التدريب.",
			"You finished this level. The professional level is premium only. "+
				"You can revisit lessons or keep practicing.")
	default:
		s.Level = next
		msg = tr(lang,
			fmt.Sprintf("✅ أنهيت هذا المستوى. تم فتح: %s. اطلب درسًا للمتابعة.", content.LevelLabel(next, lang)),
			fmt.Sprintf("✅ You finished this level. Unlocked: %s. Request a lesson to continue.", content.LevelLabel(next, lang)))
	}
	return msg + "\n\n" + content.RiskReminder(lang)
}

func (e *Engine) handleLessonComplete(ctx context.Context, s *session.Session, lessonID string) Reply {
	if s.PendingLesson == nil {
		return Reply{Text: tr(s.Language,
			"❌ لا يوجد درس نشط لإكماله.",
			"❌ No active lesson to complete.")}
	}
	lesson := *s.PendingLesson
	if lessonID != "" && lesson.ID != lessonID {
		return Reply{Text: tr(s.Language,
			"❌ هذا الدرس لم يعد نشطًا.",
			"❌ That lesson is no longer active.")}
	}
	s.PendingLesson = nil

	var questions []content.QuizQuestion
	if lesson.IsDynamic() {
		if e.source != nil {
			ctx = gateway.WithPurpose(ctx, "quiz_pack")
			questions = e.source.GenerateQuizPack(ctx, gateway.QuizPackParams{
				Lesson:          lesson,
				Focus:           s.Focus,
				RecentQuestions: s.RecentQuizPrompts,
				QuizCount:       AIQuizPerLesson,
				Language:        s.Language,
			})
			if len(questions) > 0 {
				prompts := make([]string, len(questions))
				for i, q := range questions {
					prompts[i] = q.Prompt
				}
				s.RememberQuizPrompts(prompts)
			}
		}
		if len(questions) == 0 && len(lesson.Quiz) > 0 {
			questions = lesson.Quiz
			if len(questions) > AIQuizPerLesson {
				questions = questions[:AIQuizPerLesson]
			}
		}
		if len(questions) == 0 {
			s.AILessonsCompleted++
			return Reply{Text: tr(s.Language,
				"❌ تعذر توليد الاختبار. تم تعليم الدرس كمكتمل بدون اختبار.",
				"❌ Quiz generation failed. The lesson was marked complete without a quiz.")}
		}
	} else {
		questions = quizgen.Build(lesson, s.VariantHistory(lesson.ID))
		if len(questions) == 0 {
			s.CompletedLessons[lesson.ID] = struct{}{}
			return Reply{Text: tr(s.Language,
				"✅ تم إكمال الدرس. اطلب درسًا للموضوع التالي.",
				"✅ Lesson complete. Request a lesson for the next topic.")}
		}
	}

	s.Quiz = &session.QuizState{
		LessonID:  lesson.ID,
		Questions: questions,
		Dynamic:   lesson.IsDynamic(),
		Level:     lesson.Level,
	}
	return Reply{Text: renderQuizQuestion(s.Quiz, s.Language), Prompt: PromptQuiz}
}

var optionPattern = regexp.MustCompile(`\b([ABCD])\b`)

// ExtractOption pulls a standalone quiz option letter out of free text.
func ExtractOption(text string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	switch normalized {
	case "A", "B", "C", "D":
		return normalized, true
	}
	if m := optionPattern.FindStringSubmatch(normalized); m != nil {
		return m[1], true
	}
	return "", false
}

func (e *Engine) handleQuizAnswer(s *session.Session, letter string) Reply {
	if s.Quiz == nil {
		return Reply{Text: tr(s.Language,
			"❌ لا يوجد اختبار نشط. ابدأ درسًا أولًا.",
			"❌ No active quiz. Start a lesson first.")}
	}
	letter = strings.ToUpper(strings.TrimSpace(letter))
	valid := false
	for _, key := range content.OptionKeys {
		if letter == key {
			valid = true
			break
		}
	}
	if !valid {
		return Reply{Text: tr(s.Language,
			"❌ اختر إجابة واحدة: A أو B أو C أو D.",
			"❌ Pick one answer: A, B, C, or D."), Prompt: PromptQuiz}
	}

	quiz := s.Quiz
	question := quiz.Questions[quiz.CurrentIndex]

	var verdict string
	if letter == strings.ToUpper(question.Answer) {
		quiz.Score++
		verdict = tr(s.Language,
			"✅ إجابة صحيحة. ركّز على جودة العملية أكثر من التوقع.",
			"✅ Correct. Focus on process quality over prediction.")
	} else {
		verdict = tr(s.Language,
			"❌ إجابة غير صحيحة. "+question.Explanation,
			"❌ Incorrect. "+question.Explanation)
	}

	quiz.CurrentIndex++
	if quiz.CurrentIndex < len(quiz.Questions) {
		return Reply{
			Text:   verdict + "\n\n" + renderQuizQuestion(quiz, s.Language),
			Prompt: PromptQuiz,
		}
	}
	return Reply{Text: verdict + "\n\n" + e.finishQuiz(s)}
}

// finishQuiz applies the completion bookkeeping and renders the summary.
func (e *Engine) finishQuiz(s *session.Session) string {
	quiz := s.Quiz
	lang := s.Language
	total := len(quiz.Questions)
	completedLevel := quiz.Level
	if completedLevel == "" {
		completedLevel = s.Level
	}
	previousLevel := s.Level

	if quiz.Dynamic {
		s.AILessonsCompleted++
		s.SyncCurriculumLevel()
	} else {
		s.CompletedLessons[quiz.LessonID] = struct{}{}
	}
	score := quiz.Score
	s.Quiz = nil

	var lines []string
	lines = append(lines, tr(lang,
		fmt.Sprintf("اكتمل الاختبار: %d/%d.", score, total),
		fmt.Sprintf("Quiz complete: %d/%d.", score, total)))

	if quiz.Dynamic {
		lines = append(lines, tr(lang,
			fmt.Sprintf("تم إكمال درس الذكاء الاصطناعي في %s.", content.LevelLabel(completedLevel, lang)),
			fmt.Sprintf("AI lesson completed at %s.", content.LevelLabel(completedLevel, lang))))
		lines = append(lines, tr(lang,
			fmt.Sprintf("تقدم منهج الذكاء الاصطناعي: %d/%d.", s.AILessonsCompleted, AITotalLessons),
			fmt.Sprintf("AI curriculum progress: %d/%d.", s.AILessonsCompleted, AITotalLessons)))
		if s.Level != previousLevel {
			lines = append(lines, tr(lang,
				fmt.Sprintf("✅ تم فتح مستوى جديد: %s.", content.LevelLabel(s.Level, lang)),
				fmt.Sprintf("✅ New level unlocked: %s.", content.LevelLabel(s.Level, lang))))
		}
		if s.AILessonsCompleted >= AITotalLessons {
			lines = append(lines, tr(lang,
				"✅ تم إكمال منهج الذكاء الاصطناعي.",
				"✅ AI curriculum complete."))
			lines = append(lines, completionThanksText(lang))
		} else {
			lines = append(lines, tr(lang,
				"اطلب درسًا مرة أخرى للدرس التالي.",
				"Request a lesson again for the next one."))
		}
		lines = append(lines, content.RiskReminder(lang))
		return strings.Join(lines, "\n\n")
	}

	available := content.LessonsFor(completedLevel, s.Access)
	completed := 0
	for _, l := range available {
		if _, done := s.CompletedLessons[l.ID]; done {
			completed++
		}
	}
	lines = append(lines, tr(lang,
		fmt.Sprintf("التقدم في %s: %d/%d دروس مكتملة.", content.LevelLabel(completedLevel, lang), completed, len(available)),
		fmt.Sprintf("Progress at %s: %d/%d lessons complete.", content.LevelLabel(completedLevel, lang), completed, len(available))))

	if completed == len(available) {
		next := content.NextLevel(s.Level)
		switch {
		case s.Level == content.LevelAdvanced && s.Access == content.AccessFree:
			lines = append(lines, tr(lang,
				"تم إكمال المحتوى التعريفي المتقدم. البريميوم يفتح الأطر المتقدمة والاحترافية الكاملة.",
				"Advanced preview complete. Premium unlocks the full advanced and professional frameworks."))
		case next == "":
			lines = append(lines, tr(lang,
				"أنهيت جميع المستويات المتاحة لملفك الحالي.",
				"You finished every level available for your profile."))
			lines = append(lines, completionThanksText(lang))
		case next == content.LevelProfessional && s.Access == content.AccessFree:
			lines = append(lines, tr(lang,
				"المحتوى الاحترافي مخصص للبريميوم فقط. واصل التدريب بالمحاكاة والتحدي اليومي.",
				"Professional content is premium only. Keep practicing with simulations and daily challenges."))
		default:
			s.Level = next
			lines = append(lines, tr(lang,
				fmt.Sprintf("✅ تم فتح مستوى جديد: %s.", content.LevelLabel(next, lang)),
				fmt.Sprintf("✅ New level unlocked: %s.", content.LevelLabel(next, lang))))
		}
	}

	lines = append(lines, content.RiskReminder(lang))
	return strings.Join(lines, "\n\n")
}

func prefixNote(note, body string) string {
	if note == "" {
		return body
	}
	return note + "\n\n" + body
}
