package content

import "strings"

// Language selects the content language. Arabic is the default for any
// unsupported tag.
type Language string

const (
	LangArabic  Language = "ar"
	LangEnglish Language = "en"
)

// NormalizeLanguage maps unsupported language tags to Arabic.
func NormalizeLanguage(lang Language) Language {
	if lang == LangEnglish {
		return LangEnglish
	}
	return LangArabic
}

// Level is the learner's curriculum level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelProfessional Level = "professional"
)

// LevelOrder lists levels from first to last.
var LevelOrder = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelProfessional}

// ValidLevel reports whether l is a known level.
func ValidLevel(l Level) bool {
	for _, lv := range LevelOrder {
		if l == lv {
			return true
		}
	}
	return false
}

// NextLevel returns the level after l, or "" when l is the last (or unknown).
func NextLevel(l Level) Level {
	for i, lv := range LevelOrder {
		if l == lv && i+1 < len(LevelOrder) {
			return LevelOrder[i+1]
		}
	}
	return ""
}

// Access is the learner's subscription tier.
type Access string

const (
	AccessFree    Access = "free"
	AccessPremium Access = "premium"
)

// ValidAccess reports whether a is a known access tier.
func ValidAccess(a Access) bool {
	return a == AccessFree || a == AccessPremium
}

// Focus is the market focus for generated content.
type Focus string

const (
	FocusSpot    Focus = "spot"
	FocusFutures Focus = "futures"
	FocusBoth    Focus = "both"
)

// ValidFocus reports whether f is a known focus.
func ValidFocus(f Focus) bool {
	return f == FocusSpot || f == FocusFutures || f == FocusBoth
}

// OptionKeys are the fixed quiz option keys, in display order.
var OptionKeys = [4]string{"A", "B", "C", "D"}

// QuizQuestion is an immutable four-option question.
type QuizQuestion struct {
	Prompt      string
	Options     map[string]string // keyed exactly A..D
	Answer      string            // one of A..D
	Explanation string
}

// CloneOptions returns a copy of the question's option map.
func (q QuizQuestion) CloneOptions() map[string]string {
	out := make(map[string]string, len(q.Options))
	for k, v := range q.Options {
		out[k] = v
	}
	return out
}

// DynamicIDPrefix marks lessons sourced from the generative gateway rather
// than the curated bank.
const DynamicIDPrefix = "AI-"

// Lesson is an immutable lesson value.
type Lesson struct {
	ID           string
	Level        Level
	Title        string
	Objective    string
	BulletPoints []string // exactly 4
	Example      string
	Quiz         []QuizQuestion
	PremiumOnly  bool
}

// IsDynamic reports whether the lesson came from the generative gateway.
func (l Lesson) IsDynamic() bool {
	return strings.HasPrefix(l.ID, DynamicIDPrefix)
}

// SimulationScenario is a trade setup used to seed the simulation wizard.
type SimulationScenario struct {
	Symbol     string
	Entry      float64
	Support    float64
	Resistance float64
	Context    string
}

// DailyChallenge is an analysis prompt with the keywords a good answer hits.
type DailyChallenge struct {
	Prompt           string
	ExpectedKeywords []string // exactly 4
}
