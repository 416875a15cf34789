// Package session holds the per-user conversation record and its repository.
// Sessions live only in process memory and are replaced wholesale on reset.
package session

import (
	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/simulation"
)

// Bounds for the recent-content memory used to steer generation away from
// repeats.
const (
	maxRecentLessonTitles = 30
	maxRecentQuizPrompts  = 80
)

// QuizState is the mutable state of an in-progress quiz.
type QuizState struct {
	LessonID     string
	Questions    []content.QuizQuestion
	CurrentIndex int
	Score        int

	// Dynamic marks AI-sourced quizzes, which count toward the AI
	// curriculum instead of the static completed-lesson set.
	Dynamic bool
	Level   content.Level
}

// DailyChallengeState is the pending daily analysis challenge.
type DailyChallengeState struct {
	Prompt           string
	ExpectedKeywords []string
}

// Flow identifies which learning flow is active, if any. At most one of the
// four flow states is set at a time; AssistantMode is an orthogonal toggle
// cleared whenever a flow starts.
type Flow string

const (
	FlowNone           Flow = ""
	FlowLesson         Flow = "lesson"
	FlowQuiz           Flow = "quiz"
	FlowSimulation     Flow = "simulation"
	FlowDailyChallenge Flow = "daily_challenge"
	FlowAssistant      Flow = "assistant"
)

// Session is one user's mutable conversation record.
type Session struct {
	UserID   int64
	Level    content.Level
	Access   content.Access
	Focus    content.Focus
	Language content.Language

	AssistantMode bool

	CompletedLessons map[string]struct{}

	// QuizVariantHistory records, per lesson, the variant signatures already
	// served to this user. It only grows or is wholesale cleared when a
	// lesson's combination space is exhausted; the space is bounded by
	// bank size x templates x option permutations.
	QuizVariantHistory map[string]map[string]struct{}

	RecentLessonTitles []string
	RecentQuizPrompts  []string

	AILessonsCompleted     int
	AISimulationsCompleted int
	AIChallengesCompleted  int

	PendingLesson  *content.Lesson
	Quiz           *QuizState
	Simulation     *simulation.State
	DailyChallenge *DailyChallengeState
}

// New returns a fresh default session for the user.
func New(userID int64) *Session {
	return &Session{
		UserID:             userID,
		Level:              content.LevelBeginner,
		Access:             content.AccessFree,
		Focus:              content.FocusBoth,
		Language:           content.LangArabic,
		CompletedLessons:   make(map[string]struct{}),
		QuizVariantHistory: make(map[string]map[string]struct{}),
	}
}

// ActiveFlow reports which flow currently holds the session.
func (s *Session) ActiveFlow() Flow {
	switch {
	case s.PendingLesson != nil:
		return FlowLesson
	case s.Quiz != nil:
		return FlowQuiz
	case s.Simulation != nil:
		return FlowSimulation
	case s.DailyChallenge != nil:
		return FlowDailyChallenge
	case s.AssistantMode:
		return FlowAssistant
	}
	return FlowNone
}

// Kill clears every active flow state and assistant mode, returning what was
// cancelled in a stable order. Empty when nothing was active.
func (s *Session) Kill() []Flow {
	var killed []Flow
	if s.PendingLesson != nil {
		s.PendingLesson = nil
		killed = append(killed, FlowLesson)
	}
	if s.Quiz != nil {
		s.Quiz = nil
		killed = append(killed, FlowQuiz)
	}
	if s.Simulation != nil {
		s.Simulation = nil
		killed = append(killed, FlowSimulation)
	}
	if s.DailyChallenge != nil {
		s.DailyChallenge = nil
		killed = append(killed, FlowDailyChallenge)
	}
	if s.AssistantMode {
		s.AssistantMode = false
		killed = append(killed, FlowAssistant)
	}
	return killed
}

// VariantHistory returns the signature set for a lesson, creating it on
// first use.
func (s *Session) VariantHistory(lessonID string) map[string]struct{} {
	h, ok := s.QuizVariantHistory[lessonID]
	if !ok {
		h = make(map[string]struct{})
		s.QuizVariantHistory[lessonID] = h
	}
	return h
}

// RememberLessonTitle appends a generated lesson title, keeping the last 30.
func (s *Session) RememberLessonTitle(title string) {
	s.RecentLessonTitles = appendBounded(s.RecentLessonTitles, maxRecentLessonTitles, title)
}

// RememberQuizPrompts appends generated quiz prompts, keeping the last 80.
func (s *Session) RememberQuizPrompts(prompts []string) {
	s.RecentQuizPrompts = appendBounded(s.RecentQuizPrompts, maxRecentQuizPrompts, prompts...)
}

func appendBounded(list []string, max int, items ...string) []string {
	list = append(list, items...)
	if len(list) > max {
		list = list[len(list)-max:]
	}
	return list
}

// SyncCurriculumLevel re-derives the level from AI curriculum progress.
// Thresholds: 25 lessons unlock intermediate, 50 advanced, 75 professional.
func (s *Session) SyncCurriculumLevel() {
	switch {
	case s.AILessonsCompleted >= 75:
		s.Level = content.LevelProfessional
	case s.AILessonsCompleted >= 50:
		s.Level = content.LevelAdvanced
	case s.AILessonsCompleted >= 25:
		s.Level = content.LevelIntermediate
	default:
		s.Level = content.LevelBeginner
	}
}
