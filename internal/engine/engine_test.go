package engine

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/gateway"
	"github.com/israyx/sintrade/internal/session"
)

type stubSource struct {
	lesson    *content.Lesson
	quiz      []content.QuizQuestion
	scenario  *content.SimulationScenario
	challenge *content.DailyChallenge
	answer    string
	lastCode  string

	lessonCalls   int
	quizCalls     int
	lastQuizCount int
}

func (s *stubSource) AnswerQuestion(ctx context.Context, question string) (string, bool) {
	return s.answer, s.answer != ""
}

func (s *stubSource) GenerateLesson(ctx context.Context, p gateway.LessonParams) (*content.Lesson, bool) {
	s.lessonCalls++
	return s.lesson, s.lesson != nil
}

func (s *stubSource) GenerateQuizPack(ctx context.Context, p gateway.QuizPackParams) []content.QuizQuestion {
	s.quizCalls++
	s.lastQuizCount = p.QuizCount
	return s.quiz
}

func (s *stubSource) GenerateSimulation(ctx context.Context, level content.Level, focus content.Focus, lang content.Language) (*content.SimulationScenario, bool) {
	return s.scenario, s.scenario != nil
}

func (s *stubSource) GenerateDailyChallenge(ctx context.Context, level content.Level, focus content.Focus, lang content.Language) (*content.DailyChallenge, bool) {
	return s.challenge, s.challenge != nil
}

func (s *stubSource) StatusLabel(lang content.Language) string { return "stub content" }

func (s *stubSource) LastErrorCode() string { return s.lastCode }

func newTestEngine(t *testing.T, source ContentSource) (*Engine, *session.Store) {
	t.Helper()
	store := session.NewStore()
	e := New(store, source)
	e.pick = func(n int) int { return 0 }
	return e, store
}

func englishSession(store *session.Store, userID int64) *session.Session {
	s := store.Get(userID)
	s.Language = content.LangEnglish
	return s
}

func TestStaticLessonFlow(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 1)
	ctx := context.Background()

	reply := e.Handle(ctx, 1, Event{Kind: EventLessonRequest})
	if reply.Prompt != PromptComplete {
		t.Fatalf("prompt = %q, want %q", reply.Prompt, PromptComplete)
	}
	if reply.LessonID == "" {
		t.Fatal("lesson reply has no lesson id")
	}
	if s.PendingLesson == nil || s.PendingLesson.ID != reply.LessonID {
		t.Fatalf("pending lesson = %+v, want id %q", s.PendingLesson, reply.LessonID)
	}

	reply = e.Handle(ctx, 1, Event{Kind: EventLessonComplete, LessonID: reply.LessonID})
	if reply.Prompt != PromptQuiz {
		t.Fatalf("prompt = %q, want %q", reply.Prompt, PromptQuiz)
	}
	if s.Quiz == nil {
		t.Fatal("no quiz state after completion")
	}
	if s.Quiz.Dynamic {
		t.Fatal("static lesson produced a dynamic quiz")
	}

	lessonID := s.Quiz.LessonID
	for s.Quiz != nil {
		correct := s.Quiz.Questions[s.Quiz.CurrentIndex].Answer
		reply = e.Handle(ctx, 1, Event{Kind: EventQuizAnswer, Letter: correct})
	}
	if !strings.Contains(reply.Text, "Quiz complete") {
		t.Fatalf("summary missing, got %q", reply.Text)
	}
	if _, done := s.CompletedLessons[lessonID]; !done {
		t.Fatalf("lesson %q not recorded complete", lessonID)
	}
}

func TestQuizWrongAnswerShowsExplanation(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 1)
	ctx := context.Background()

	r := e.Handle(ctx, 1, Event{Kind: EventLessonRequest})
	e.Handle(ctx, 1, Event{Kind: EventLessonComplete, LessonID: r.LessonID})

	question := s.Quiz.Questions[0]
	wrong := "A"
	if question.Answer == "A" {
		wrong = "B"
	}
	reply := e.Handle(ctx, 1, Event{Kind: EventQuizAnswer, Letter: wrong})
	if !strings.Contains(reply.Text, question.Explanation) {
		t.Fatalf("explanation missing from %q", reply.Text)
	}
	if s.Quiz.Score != 0 {
		t.Fatalf("score = %d after wrong answer", s.Quiz.Score)
	}
}

func TestLessonRequestRefusedDuringQuiz(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 1)
	ctx := context.Background()

	r := e.Handle(ctx, 1, Event{Kind: EventLessonRequest})
	e.Handle(ctx, 1, Event{Kind: EventLessonComplete, LessonID: r.LessonID})

	reply := e.Handle(ctx, 1, Event{Kind: EventLessonRequest})
	if reply.Prompt == PromptComplete {
		t.Fatal("new lesson started while a quiz was active")
	}
	if s.Quiz == nil {
		t.Fatal("quiz state lost by refused lesson request")
	}
	if !strings.Contains(reply.Text, "active quiz") {
		t.Fatalf("refusal text = %q", reply.Text)
	}
}

func TestDynamicLessonFlow(t *testing.T) {
	source := &stubSource{
		lesson: &content.Lesson{
			ID:        content.DynamicIDPrefix + "0123456789",
			Level:     content.LevelBeginner,
			Title:     "Position sizing basics",
			Objective: "Size positions from risk, not conviction.",
			BulletPoints: []string{
				"Risk a fixed fraction per trade",
				"Distance to stop sets the size",
				"Never average into losers",
				"Log every trade",
			},
			Example: "Risking 1% with a 5% stop distance means a 20% position.",
		},
		quiz: []content.QuizQuestion{
			{
				Prompt:      "What sets position size?",
				Options:     map[string]string{"A": "Stop distance", "B": "Conviction", "C": "Luck", "D": "Leverage"},
				Answer:      "A",
				Explanation: "Size follows from risk per trade and stop distance.",
			},
			{
				Prompt:      "Max recommended risk per trade?",
				Options:     map[string]string{"A": "25%", "B": "2%", "C": "50%", "D": "10%"},
				Answer:      "B",
				Explanation: "Small fixed risk keeps drawdowns recoverable.",
			},
		},
	}
	e, store := newTestEngine(t, source)
	s := englishSession(store, 7)
	ctx := context.Background()

	reply := e.Handle(ctx, 7, Event{Kind: EventLessonRequest})
	if source.lessonCalls != 1 {
		t.Fatalf("lesson calls = %d", source.lessonCalls)
	}
	if !strings.Contains(reply.Text, "Position sizing basics") {
		t.Fatalf("lesson text missing title: %q", reply.Text)
	}

	e.Handle(ctx, 7, Event{Kind: EventLessonComplete, LessonID: reply.LessonID})
	if source.lastQuizCount != AIQuizPerLesson {
		t.Fatalf("requested quiz count = %d, want %d", source.lastQuizCount, AIQuizPerLesson)
	}
	if s.Quiz == nil || !s.Quiz.Dynamic {
		t.Fatalf("quiz state = %+v, want dynamic", s.Quiz)
	}

	e.Handle(ctx, 7, Event{Kind: EventQuizAnswer, Letter: "A"})
	final := e.Handle(ctx, 7, Event{Kind: EventQuizAnswer, Letter: "B"})
	if s.AILessonsCompleted != 1 {
		t.Fatalf("AILessonsCompleted = %d, want 1", s.AILessonsCompleted)
	}
	if !strings.Contains(final.Text, "2/2") {
		t.Fatalf("final summary = %q", final.Text)
	}
}

func TestLessonFallsBackWhenSourceFails(t *testing.T) {
	source := &stubSource{lastCode: "timeout"}
	e, store := newTestEngine(t, source)
	englishSession(store, 3)

	reply := e.Handle(context.Background(), 3, Event{Kind: EventLessonRequest})
	if reply.Prompt != PromptComplete {
		t.Fatalf("prompt = %q, want curated lesson", reply.Prompt)
	}
	if !strings.Contains(reply.Text, "timeout") {
		t.Fatalf("unavailability note missing from %q", reply.Text)
	}
}

func TestSimulationFullRun(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 2)
	ctx := context.Background()

	reply := e.Handle(ctx, 2, Event{Kind: EventSimulationRequest})
	if reply.Prompt != PromptDirection {
		t.Fatalf("prompt = %q, want %q", reply.Prompt, PromptDirection)
	}
	entry := s.Simulation.Scenario.Entry

	e.Handle(ctx, 2, Event{Kind: EventFreeText, Text: "going long here"})
	e.Handle(ctx, 2, Event{Kind: EventFreeText, Text: formatPrice(entry * 0.97)})
	e.Handle(ctx, 2, Event{Kind: EventFreeText, Text: formatPrice(entry * 1.06)})
	final := e.Handle(ctx, 2, Event{Kind: EventFreeText, Text: "1.5"})

	if s.Simulation != nil {
		t.Fatal("simulation state not cleared after the last stage")
	}
	if s.AISimulationsCompleted != 1 {
		t.Fatalf("AISimulationsCompleted = %d", s.AISimulationsCompleted)
	}
	if final.Text == "" {
		t.Fatal("empty feedback")
	}
	if got := strings.Count(final.Text, content.RiskReminder(content.LangEnglish)); got != 1 {
		t.Fatalf("risk reminder appears %d times, want exactly 1:\n%s", got, final.Text)
	}
}

func TestSimulationRejectsStopOnWrongSide(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 2)
	ctx := context.Background()

	e.Handle(ctx, 2, Event{Kind: EventSimulationRequest})
	entry := s.Simulation.Scenario.Entry
	e.Handle(ctx, 2, Event{Kind: EventFreeText, Text: "long"})

	reply := e.Handle(ctx, 2, Event{Kind: EventFreeText, Text: formatPrice(entry * 1.10)})
	if !strings.Contains(reply.Text, "wrong side") {
		t.Fatalf("rejection text = %q", reply.Text)
	}
	if s.Simulation.StopLoss != 0 {
		t.Fatal("invalid stop was recorded")
	}
}

func TestDailyChallengeScoring(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 4)
	ctx := context.Background()

	e.Handle(ctx, 4, Event{Kind: EventDailyChallengeRequest})
	if s.DailyChallenge == nil {
		t.Fatal("no challenge state")
	}

	short := e.Handle(ctx, 4, Event{Kind: EventFreeText, Text: "buy now"})
	if !strings.Contains(short.Text, "too short") {
		t.Fatalf("short answer verdict = %q", short.Text)
	}
	if s.DailyChallenge == nil {
		t.Fatal("short answer consumed the challenge")
	}

	keywords := s.DailyChallenge.ExpectedKeywords
	answer := "My plan covers " + strings.Join(keywords, " and ") +
		" with a clear entry level and a defined invalidation point"
	strong := e.Handle(ctx, 4, Event{Kind: EventFreeText, Text: answer})
	if !strings.Contains(strong.Text, "Strong analysis") {
		t.Fatalf("strong answer verdict = %q", strong.Text)
	}
	if s.DailyChallenge != nil {
		t.Fatal("challenge state not cleared")
	}
	if s.AIChallengesCompleted != 1 {
		t.Fatalf("AIChallengesCompleted = %d", s.AIChallengesCompleted)
	}
}

func TestFreeTextSafetyFilter(t *testing.T) {
	e, store := newTestEngine(t, nil)
	englishSession(store, 5)

	reply := e.Handle(context.Background(), 5, Event{Kind: EventFreeText, Text: "give me a guaranteed profit strategy"})
	if !strings.Contains(reply.Text, "No strategy wins every trade") {
		t.Fatalf("refusal missing: %q", reply.Text)
	}
}

func TestFreeTextFrustrationSupport(t *testing.T) {
	e, store := newTestEngine(t, nil)
	englishSession(store, 5)

	reply := e.Handle(context.Background(), 5, Event{Kind: EventFreeText, Text: "I lost money again today"})
	if !strings.Contains(reply.Text, "Checklist") {
		t.Fatalf("support text missing: %q", reply.Text)
	}
}

func TestFreeTextKeywordRouting(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 6)
	ctx := context.Background()

	reply := e.Handle(ctx, 6, Event{Kind: EventFreeText, Text: "teach me something new"})
	if reply.Prompt != PromptComplete {
		t.Fatalf("lesson keyword not routed, prompt = %q", reply.Prompt)
	}
	s.Kill()

	reply = e.Handle(ctx, 6, Event{Kind: EventFreeText, Text: "I want to practice"})
	if reply.Prompt != PromptDirection {
		t.Fatalf("practice keyword not routed, prompt = %q", reply.Prompt)
	}
	s.Kill()

	reply = e.Handle(ctx, 6, Event{Kind: EventFreeText, Text: "challenge please"})
	if s.DailyChallenge == nil {
		t.Fatalf("challenge keyword not routed, reply = %q", reply.Text)
	}
}

func TestFreeTextCompleteKeyword(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 6)
	ctx := context.Background()

	e.Handle(ctx, 6, Event{Kind: EventLessonRequest})
	reply := e.Handle(ctx, 6, Event{Kind: EventFreeText, Text: "complete"})
	if reply.Prompt != PromptQuiz {
		t.Fatalf("complete keyword did not start the quiz, prompt = %q", reply.Prompt)
	}
	if s.PendingLesson != nil {
		t.Fatal("pending lesson survived completion")
	}
}

func TestFreeTextCompleteKeywordIsExact(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 6)
	ctx := context.Background()

	e.Handle(ctx, 6, Event{Kind: EventLessonRequest})
	reply := e.Handle(ctx, 6, Event{Kind: EventFreeText, Text: "incomplete"})
	if reply.Prompt == PromptQuiz {
		t.Fatal("\"incomplete\" treated as a completion request")
	}
	if s.PendingLesson == nil {
		t.Fatal("pending lesson consumed by a non-completion message")
	}

	reply = e.Handle(ctx, 6, Event{Kind: EventFreeText, Text: "  Complete  "})
	if reply.Prompt != PromptQuiz {
		t.Fatalf("trimmed, case-folded keyword not accepted, prompt = %q", reply.Prompt)
	}
}

func TestAssistantFlow(t *testing.T) {
	source := &stubSource{answer: "Risk management comes first."}
	e, store := newTestEngine(t, source)
	s := englishSession(store, 8)
	ctx := context.Background()

	reply := e.Handle(ctx, 8, Event{Kind: EventAssistantRequest})
	if reply.Prompt != PromptAssistant {
		t.Fatalf("prompt = %q", reply.Prompt)
	}

	reply = e.Handle(ctx, 8, Event{Kind: EventFreeText, Text: "what matters most in trading?"})
	if !strings.HasPrefix(reply.Text, "💬 ") {
		t.Fatalf("answer = %q", reply.Text)
	}
	if !s.AssistantMode {
		t.Fatal("assistant mode dropped after one answer")
	}

	e.Handle(ctx, 8, Event{Kind: EventAssistantQuit})
	if s.AssistantMode {
		t.Fatal("assistant mode still set after quit")
	}
}

func TestAssistantClearedByLessonStart(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 8)
	ctx := context.Background()

	e.Handle(ctx, 8, Event{Kind: EventAssistantRequest})
	reply := e.Handle(ctx, 8, Event{Kind: EventLessonRequest})
	if reply.Prompt != PromptComplete {
		t.Fatalf("assistant mode blocked a lesson start: %q", reply.Text)
	}
	if s.AssistantMode {
		t.Fatal("assistant mode survived a lesson start")
	}
}

func TestKillCancelsActiveFlow(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 9)
	ctx := context.Background()

	reply := e.Handle(ctx, 9, Event{Kind: EventKill})
	if !strings.Contains(reply.Text, "Nothing active") {
		t.Fatalf("idle kill text = %q", reply.Text)
	}

	e.Handle(ctx, 9, Event{Kind: EventLessonRequest})
	reply = e.Handle(ctx, 9, Event{Kind: EventKill})
	if !strings.Contains(reply.Text, "Cancelled: lesson") {
		t.Fatalf("kill text = %q", reply.Text)
	}
	if s.PendingLesson != nil {
		t.Fatal("pending lesson survived kill")
	}
}

func TestAdminSetRequiresOperator(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 10)
	ctx := context.Background()

	reply := e.Handle(ctx, 10, Event{Kind: EventAdminSet, Setting: "level", Value: "advanced"})
	if !strings.Contains(reply.Text, "operator-only") {
		t.Fatalf("non-admin reply = %q", reply.Text)
	}
	if s.Level != content.LevelBeginner {
		t.Fatalf("level changed without admin flag: %q", s.Level)
	}

	reply = e.Handle(ctx, 10, Event{Kind: EventAdminSet, Setting: "level", Value: "advanced", Admin: true})
	if s.Level != content.LevelAdvanced {
		t.Fatalf("level = %q after admin set", s.Level)
	}
	if !strings.Contains(reply.Text, "preview") {
		t.Fatalf("free-access advanced note missing: %q", reply.Text)
	}
}

func TestAdminPremiumStaysLocked(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 10)

	reply := e.Handle(context.Background(), 10, Event{Kind: EventAdminSet, Setting: "access", Value: "premium", Admin: true})
	if s.Access != content.AccessFree {
		t.Fatalf("access = %q, want free", s.Access)
	}
	if !strings.Contains(reply.Text, developerContact) {
		t.Fatalf("contact missing from lock message: %q", reply.Text)
	}
}

func TestLanguageSelect(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := store.Get(11)
	ctx := context.Background()

	e.Handle(ctx, 11, Event{Kind: EventLanguageSelect, Value: "en"})
	if s.Language != content.LangEnglish {
		t.Fatalf("language = %q", s.Language)
	}
	reply := e.Handle(ctx, 11, Event{Kind: EventLanguageSelect, Value: "fr"})
	if !strings.Contains(reply.Text, "Unsupported") {
		t.Fatalf("invalid language reply = %q", reply.Text)
	}
}

func TestStatusShowsProgress(t *testing.T) {
	source := &stubSource{}
	e, store := newTestEngine(t, source)
	s := englishSession(store, 12)
	s.AILessonsCompleted = 3

	reply := e.Handle(context.Background(), 12, Event{Kind: EventStatus})
	if !strings.Contains(reply.Text, "AI lessons: 3/100") {
		t.Fatalf("AI progress missing: %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "stub content") {
		t.Fatalf("source status missing: %q", reply.Text)
	}
}

func TestResetReplacesSession(t *testing.T) {
	e, store := newTestEngine(t, nil)
	s := englishSession(store, 13)
	s.AILessonsCompleted = 9

	e.Handle(context.Background(), 13, Event{Kind: EventReset})
	if store.Get(13).AILessonsCompleted != 0 {
		t.Fatal("reset kept old progress")
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
