package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/israyx/sintrade/internal/content"
	"github.com/israyx/sintrade/internal/simulation"
)

func TestNewDefaults(t *testing.T) {
	s := New(42)
	assert.Equal(t, int64(42), s.UserID)
	assert.Equal(t, content.LevelBeginner, s.Level)
	assert.Equal(t, content.AccessFree, s.Access)
	assert.Equal(t, content.FocusBoth, s.Focus)
	assert.Equal(t, content.LangArabic, s.Language)
	assert.Equal(t, FlowNone, s.ActiveFlow())
}

func TestActiveFlowPriority(t *testing.T) {
	s := New(1)
	s.AssistantMode = true
	assert.Equal(t, FlowAssistant, s.ActiveFlow())

	s.Quiz = &QuizState{}
	assert.Equal(t, FlowQuiz, s.ActiveFlow())

	s.PendingLesson = &content.Lesson{ID: "L1"}
	assert.Equal(t, FlowLesson, s.ActiveFlow())
}

func TestKillClearsEverything(t *testing.T) {
	s := New(1)
	s.PendingLesson = &content.Lesson{ID: "L1"}
	s.Simulation = simulation.NewState(content.SimulationScenario{Entry: 100})
	s.DailyChallenge = &DailyChallengeState{Prompt: "p"}
	s.AssistantMode = true

	killed := s.Kill()
	require.Equal(t, []Flow{FlowLesson, FlowSimulation, FlowDailyChallenge, FlowAssistant}, killed)
	assert.Equal(t, FlowNone, s.ActiveFlow())
	assert.Empty(t, s.Kill())
}

func TestVariantHistoryPersistsPerLesson(t *testing.T) {
	s := New(1)
	h := s.VariantHistory("L1")
	h["sig-1"] = struct{}{}

	again := s.VariantHistory("L1")
	_, ok := again["sig-1"]
	assert.True(t, ok)
	assert.Empty(t, s.VariantHistory("L2"))
}

func TestRecentMemoryIsBounded(t *testing.T) {
	s := New(1)
	for i := 0; i < 40; i++ {
		s.RememberLessonTitle(fmt.Sprintf("title-%d", i))
	}
	require.Len(t, s.RecentLessonTitles, 30)
	assert.Equal(t, "title-10", s.RecentLessonTitles[0])
	assert.Equal(t, "title-39", s.RecentLessonTitles[29])

	var prompts []string
	for i := 0; i < 100; i++ {
		prompts = append(prompts, fmt.Sprintf("q-%d", i))
	}
	s.RememberQuizPrompts(prompts)
	require.Len(t, s.RecentQuizPrompts, 80)
	assert.Equal(t, "q-20", s.RecentQuizPrompts[0])
}

func TestSyncCurriculumLevelThresholds(t *testing.T) {
	tests := []struct {
		done int
		want content.Level
	}{
		{0, content.LevelBeginner},
		{24, content.LevelBeginner},
		{25, content.LevelIntermediate},
		{49, content.LevelIntermediate},
		{50, content.LevelAdvanced},
		{74, content.LevelAdvanced},
		{75, content.LevelProfessional},
		{100, content.LevelProfessional},
	}
	for _, tt := range tests {
		s := New(1)
		s.AILessonsCompleted = tt.done
		s.SyncCurriculumLevel()
		assert.Equal(t, tt.want, s.Level, "lessons done: %d", tt.done)
	}
}

func TestStoreGetAndReset(t *testing.T) {
	store := NewStore()
	a := store.Get(1)
	a.AILessonsCompleted = 7
	assert.Same(t, a, store.Get(1))
	assert.Equal(t, 1, store.Len())

	b := store.Reset(1)
	assert.NotSame(t, a, b)
	assert.Zero(t, b.AILessonsCompleted)

	store.Get(2)
	assert.Equal(t, 2, store.Len())
}
