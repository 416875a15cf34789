// Package engine is the conversation core: it receives transport-neutral
// events, advances the per-user session state machine, and renders
// localized replies. All generative content arrives through the
// ContentSource port and every flow degrades to the curated bank when the
// source is absent or unavailable.
package engine

import (
	"context"
	"math/rand/v2"

	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/gateway"
	"github.com/israyx/sintrade/internal/session"
)

// Curriculum caps for generated content.
const (
	AITotalLessons  = 100
	AIQuizPerLesson = 50
)

// EventKind identifies a transport-neutral user action.
type EventKind string

const (
	EventStart                 EventKind = "start"
	EventHelp                  EventKind = "help"
	EventLessonRequest         EventKind = "lesson_request"
	EventLessonComplete        EventKind = "lesson_complete"
	EventQuizAnswer            EventKind = "quiz_answer"
	EventSimulationRequest     EventKind = "simulation_request"
	EventSimulationDirection   EventKind = "simulation_direction"
	EventDailyChallengeRequest EventKind = "daily_challenge_request"
	EventAssistantRequest      EventKind = "assistant_request"
	EventAssistantQuit         EventKind = "assistant_quit"
	EventFreeText              EventKind = "free_text"
	EventKill                  EventKind = "kill"
	EventReset                 EventKind = "reset"
	EventStatus                EventKind = "status"
	EventAdminSet              EventKind = "admin_set"
	EventLanguageSelect        EventKind = "language_select"
)

// Event is one user action delivered by a transport adapter.
type Event struct {
	Kind EventKind

	// Text carries free-form input for free_text, quiz answers typed as
	// text, simulation stage inputs, and challenge analyses.
	Text string

	// Letter is the chosen quiz option for quiz_answer.
	Letter string

	// LessonID targets lesson_complete at a specific pending lesson.
	LessonID string

	// Setting and Value carry admin_set pairs (level/access/focus) and
	// the language for language_select.
	Setting string
	Value   string

	// Admin marks the caller as the operator; admin_set requires it.
	Admin bool
}

// PromptKind hints which follow-up input the transport should offer.
type PromptKind string

const (
	PromptNone       PromptKind = ""
	PromptComplete   PromptKind = "lesson_complete"
	PromptQuiz       PromptKind = "quiz_options"
	PromptDirection  PromptKind = "simulation_direction"
	PromptFreeText   PromptKind = "free_text"
	PromptAssistant  PromptKind = "assistant"
)

// Reply is the engine's rendered response to one event.
type Reply struct {
	Text     string
	Prompt   PromptKind
	LessonID string
}

// ContentSource is the generative gateway port. A nil source switches the
// engine to the curated bank alone.
type ContentSource interface {
	AnswerQuestion(ctx context.Context, question string) (string, bool)
	GenerateLesson(ctx context.Context, p gateway.LessonParams) (*content.Lesson, bool)
	GenerateQuizPack(ctx context.Context, p gateway.QuizPackParams) []content.QuizQuestion
	GenerateSimulation(ctx context.Context, level content.Level, focus content.Focus, lang content.Language) (*content.SimulationScenario, bool)
	GenerateDailyChallenge(ctx context.Context, level content.Level, focus content.Focus, lang content.Language) (*content.DailyChallenge, bool)
	StatusLabel(lang content.Language) string
	LastErrorCode() string
}

// Engine drives one session store. Callers must serialize events per user;
// different users may be handled concurrently because the store guards its
// own map.
type Engine struct {
	sessions *session.Store
	source   ContentSource

	// pick selects a curated fallback item. Replaceable in tests.
	pick func(n int) int
}

// New creates an Engine. source may be nil.
func New(sessions *session.Store, source ContentSource) *Engine {
	return &Engine{
		sessions: sessions,
		source:   source,
		pick:     rand.IntN,
	}
}

// Handle advances the user's session with one event and returns the reply.
func (e *Engine) Handle(ctx context.Context, userID int64, ev Event) Reply {
	s := e.sessions.Get(userID)

	switch ev.Kind {
	case EventStart:
		return Reply{Text: introText(s.Language)}
	case EventHelp:
		return Reply{Text: helpText(s.Language)}
	case EventLessonRequest:
		return e.handleLessonRequest(ctx, s)
	case EventLessonComplete:
		return e.handleLessonComplete(ctx, s, ev.LessonID)
	case EventQuizAnswer:
		return e.handleQuizAnswer(s, ev.Letter)
	case EventSimulationRequest:
		return e.handleSimulationRequest(ctx, s)
	case EventSimulationDirection:
		return e.handleSimulationDirection(s, ev.Value)
	case EventDailyChallengeRequest:
		return e.handleDailyChallengeRequest(ctx, s)
	case EventAssistantRequest:
		return e.handleAssistantRequest(s)
	case EventAssistantQuit:
		s.AssistantMode = false
		return Reply{Text: assistantQuitText(s.Language)}
	case EventFreeText:
		return e.handleFreeText(ctx, s, ev.Text)
	case EventKill:
		return e.handleKill(s)
	case EventReset:
		fresh := e.sessions.Reset(userID)
		return Reply{Text: resetText(fresh.Language)}
	case EventStatus:
		return e.handleStatus(s)
	case EventAdminSet:
		return e.handleAdminSet(s, ev)
	case EventLanguageSelect:
		return e.handleLanguageSelect(s, ev.Value)
	}
	return Reply{Text: fallbackText(s.Language)}
}

// flowBusy reports whether a learning flow holds the session. Assistant
// mode does not block flow starts; it is cleared by them instead.
func flowBusy(s *session.Session) bool {
	switch s.ActiveFlow() {
	case session.FlowNone, session.FlowAssistant:
		return false
	}
	return true
}
