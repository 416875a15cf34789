package engine

import (
	"context"
	"strings"

	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/gateway"
	"github.com/israyx/sintrade/internal/session"
	"github.com/israyx/sintrade/internal/simulation"
)

func (e *Engine) handleSimulationRequest(ctx context.Context, s *session.Session) Reply {
	s.AssistantMode = false

	if flowBusy(s) {
		return Reply{Text: busyText(s.Language, s.ActiveFlow())}
	}

	var (
		scenario content.SimulationScenario
		note     string
	)
	generated := false
	if e.source != nil {
		ctx = gateway.WithPurpose(ctx, "simulation")
		if sc, ok := e.source.GenerateSimulation(ctx, s.Level, s.Focus, s.Language); ok {
			scenario = *sc
			generated = true
		} else {
			note = aiUnavailableNote(s.Language, e.source.LastErrorCode(), "simulation")
		}
	}
	if !generated {
		bank := content.Simulations()
		scenario = bank[e.pick(len(bank))]
	}

	s.Simulation = simulation.NewState(scenario)
	return Reply{
		Text:   renderScenarioIntro(scenario, s.Language, note),
		Prompt: PromptDirection,
	}
}

func (e *Engine) handleSimulationDirection(s *session.Session, value string) Reply {
	if s.Simulation == nil {
		return Reply{Text: tr(s.Language,
			"❌ لا توجد محاكاة نشطة. اطلب محاكاة أولًا.",
			"❌ No active simulation. Request one first.")}
	}
	d, ok := simulation.ParseDirection(value)
	if !ok {
		return Reply{Text: simulationStageText(s, &simulation.InputError{
			Stage:  simulation.StageDirection,
			Reason: simulation.ReasonBadDirection,
		}), Prompt: PromptDirection}
	}
	if err := s.Simulation.SubmitDirection(d); err != nil {
		return Reply{Text: simulationStageText(s, err.(*simulation.InputError)), Prompt: PromptDirection}
	}
	return Reply{Text: simulationStagePrompt(s), Prompt: PromptFreeText}
}

// handleSimulationInput advances the wizard with one free-text answer for
// whatever stage is active.
func (e *Engine) handleSimulationInput(s *session.Session, text string) Reply {
	sim := s.Simulation
	lang := s.Language

	switch sim.Stage {
	case simulation.StageDirection:
		return e.handleSimulationDirection(s, text)
	case simulation.StageStopLoss, simulation.StageTakeProfit, simulation.StageRiskPercent:
		v, ok := simulation.ExtractNumber(text)
		if !ok {
			return Reply{Text: simulationStageText(s, &simulation.InputError{
				Stage:  sim.Stage,
				Reason: simulation.ReasonNotANumber,
			}), Prompt: PromptFreeText}
		}
		var err error
		switch sim.Stage {
		case simulation.StageStopLoss:
			err = sim.SubmitStopLoss(v)
		case simulation.StageTakeProfit:
			err = sim.SubmitTakeProfit(v)
		case simulation.StageRiskPercent:
			err = sim.SubmitRiskPercent(v)
		}
		if err != nil {
			return Reply{Text: simulationStageText(s, err.(*simulation.InputError)), Prompt: PromptFreeText}
		}
	}

	if sim.Stage != simulation.StageDone {
		return Reply{Text: simulationStagePrompt(s), Prompt: PromptFreeText}
	}

	report := simulation.Evaluate(sim)
	// RenderFeedback already closes with the risk reminder.
	feedback := simulation.RenderFeedback(sim, report, lang)
	s.Simulation = nil
	s.AISimulationsCompleted++
	return Reply{Text: feedback}
}

// simulationStagePrompt asks the question for the wizard's current stage.
func simulationStagePrompt(s *session.Session) string {
	sim := s.Simulation
	lang := s.Language
	switch sim.Stage {
	case simulation.StageDirection:
		return tr(lang,
			"السؤال 1/4: اختر الاتجاه (long أو short).",
			"Question 1/4: choose the direction (long or short).")
	case simulation.StageStopLoss:
		return tr(lang,
			"السؤال 2/4: حدد سعر وقف الخسارة بالدينار.",
			"Question 2/4: set your stop-loss price in DZD.")
	case simulation.StageTakeProfit:
		return tr(lang,
			"السؤال 3/4: حدد سعر جني الأرباح بالدينار.",
			"Question 3/4: set your take-profit price in DZD.")
	case simulation.StageRiskPercent:
		return tr(lang,
			"السؤال 4/4: ما نسبة رأس المال التي تخاطر بها؟ (مثال: 1.5)",
			"Question 4/4: what percent of capital do you risk? (example: 1.5)")
	}
	return ""
}

// simulationStageText explains a rejected input, then re-asks the stage.
func simulationStageText(s *session.Session, err *simulation.InputError) string {
	lang := s.Language
	var reason string
	switch err.Reason {
	case simulation.ReasonBadDirection:
		reason = tr(lang,
			"❌ أجب بـ long أو short فقط.",
			"❌ Answer with long or short only.")
	case simulation.ReasonNotANumber:
		reason = tr(lang,
			"❌ أدخل رقمًا صالحًا.",
			"❌ Enter a valid number.")
	case simulation.ReasonStopSide:
		reason = tr(lang,
			"❌ وقف الخسارة في الجهة الخاطئة من سعر الدخول.",
			"❌ The stop-loss is on the wrong side of the entry price.")
	case simulation.ReasonTargetSide:
		reason = tr(lang,
			"❌ جني الأرباح في الجهة الخاطئة من سعر الدخول.",
			"❌ The take-profit is on the wrong side of the entry price.")
	case simulation.ReasonRiskRange:
		reason = tr(lang,
			"❌ نسبة المخاطرة يجب أن تكون بين 0 و 100.",
			"❌ Risk percent must be between 0 and 100.")
	default:
		reason = tr(lang,
			"❌ إدخال غير متوقع في هذه المرحلة.",
			"❌ Unexpected input for this step.")
	}
	return reason + "\n\n" + simulationStagePrompt(s)
}

func (e *Engine) handleDailyChallengeRequest(ctx context.Context, s *session.Session) Reply {
	s.AssistantMode = false

	if flowBusy(s) {
		return Reply{Text: busyText(s.Language, s.ActiveFlow())}
	}

	var (
		challenge content.DailyChallenge
		note      string
	)
	generated := false
	if e.source != nil {
		ctx = gateway.WithPurpose(ctx, "daily_challenge")
		if ch, ok := e.source.GenerateDailyChallenge(ctx, s.Level, s.Focus, s.Language); ok {
			challenge = *ch
			generated = true
		} else {
			note = aiUnavailableNote(s.Language, e.source.LastErrorCode(), "challenge")
		}
	}
	if !generated {
		bank := content.DailyChallenges()
		challenge = bank[e.pick(len(bank))]
	}

	s.DailyChallenge = &session.DailyChallengeState{
		Prompt:           challenge.Prompt,
		ExpectedKeywords: challenge.ExpectedKeywords,
	}
	instruction := tr(s.Language,
		"اكتب تحليلك الكامل في رسالة واحدة: الاتجاه، مستويات الدخول والخروج، وإدارة المخاطر.",
		"Write your full analysis in one message: direction, entry and exit levels, and risk management.")
	return Reply{
		Text:   prefixNote(note, challenge.Prompt+"\n\n"+instruction),
		Prompt: PromptFreeText,
	}
}

// handleChallengeAnswer grades a submitted challenge analysis. Depth is
// gated on word count first, then on expected-keyword coverage.
func (e *Engine) handleChallengeAnswer(s *session.Session, text string) Reply {
	challenge := s.DailyChallenge
	lang := s.Language

	if len(strings.Fields(text)) < 8 {
		return Reply{Text: tr(lang,
			"❌ التحليل قصير جدًا. اكتب 8 كلمات على الأقل تغطي الاتجاه والمستويات والمخاطر.",
			"❌ The analysis is too short. Write at least 8 words covering direction, levels, and risk."),
			Prompt: PromptFreeText}
	}

	lowered := strings.ToLower(text)
	hits := 0
	for _, kw := range challenge.ExpectedKeywords {
		if kw != "" && strings.Contains(lowered, strings.ToLower(kw)) {
			hits++
		}
	}

	var verdict string
	switch {
	case hits >= 3:
		verdict = tr(lang,
			"✅ تحليل قوي: غطيت العناصر الأساسية للتحدي.",
			"✅ Strong analysis: you covered the core elements of the challenge.")
	case hits == 2:
		verdict = tr(lang,
			"👍 تحليل مقبول. راجع العناصر الناقصة وأعد صياغة الخطة بدقة أكبر.",
			"👍 Adequate analysis. Review the missing elements and restate the plan more precisely.")
	default:
		verdict = tr(lang,
			"❌ التحليل عام جدًا. اربط إجابتك بعناصر السيناريو المحددة.",
			"❌ The analysis is too generic. Tie your answer to the specific scenario elements.")
	}

	s.DailyChallenge = nil
	s.AIChallengesCompleted++

	checklist := tr(lang,
		"للتحدي القادم: حدد الاتجاه، ثم مستويات الدخول والوقف والهدف، ثم نسبة المخاطرة.",
		"For the next challenge: state the direction, then entry, stop, and target levels, then risk percent.")
	return Reply{Text: verdict + "\n\n" + checklist + "\n\n" + content.RiskReminder(lang)}
}

func (e *Engine) handleAssistantRequest(s *session.Session) Reply {
	if flowBusy(s) {
		return Reply{Text: busyText(s.Language, s.ActiveFlow())}
	}
	s.AssistantMode = true
	return Reply{Text: assistantStartText(s.Language), Prompt: PromptAssistant}
}

func (e *Engine) handleKill(s *session.Session) Reply {
	killed := s.Kill()
	lang := s.Language
	if len(killed) == 0 {
		return Reply{Text: tr(lang,
			"لا يوجد نشاط جارٍ لإلغائه.",
			"Nothing active to cancel.")}
	}
	names := make([]string, len(killed))
	for i, f := range killed {
		names[i] = flowLabel(f, lang)
	}
	return Reply{Text: tr(lang,
		"تم الإلغاء: "+strings.Join(names, "، "),
		"Cancelled: "+strings.Join(names, ", "))}
}

func flowLabel(f session.Flow, lang content.Language) string {
	switch f {
	case session.FlowLesson:
		return tr(lang, "الدرس", "lesson")
	case session.FlowQuiz:
		return tr(lang, "الاختبار", "quiz")
	case session.FlowSimulation:
		return tr(lang, "المحاكاة", "simulation")
	case session.FlowDailyChallenge:
		return tr(lang, "تحدي اليوم", "daily challenge")
	case session.FlowAssistant:
		return tr(lang, "المساعد", "assistant")
	}
	return string(f)
}
