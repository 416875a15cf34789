package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/israyx/sintrade/internal/content"
)

// LessonParams describes one lesson-generation request.
type LessonParams struct {
	Level           content.Level
	Access          content.Access
	Focus           content.Focus
	RecentTitles    []string
	RecentQuestions []string
	LessonNumber    int
	TotalLessons    int
	Language        content.Language
}

// QuizPackParams describes one quiz-pack generation request.
type QuizPackParams struct {
	Lesson          content.Lesson
	Focus           content.Focus
	RecentQuestions []string
	QuizCount       int
	Language        content.Language
}

// Gateway mediates all generative content requests. Failures never
// propagate to callers: every operation degrades to a "not available"
// result and the failure is recorded on the breaker.
type Gateway struct {
	chat    ChatCompleter
	breaker Breaker
	cfg     Config
}

// New creates a Gateway over the given transport. A nil breaker gets a
// wall-clock CooldownBreaker.
func New(chat ChatCompleter, breaker Breaker, cfg Config) *Gateway {
	if breaker == nil {
		breaker = NewCooldownBreaker(nil)
	}
	return &Gateway{chat: chat, breaker: breaker, cfg: cfg}
}

// LastErrorCode returns the most recent failure code, or "" after a
// success.
func (g *Gateway) LastErrorCode() string {
	return g.breaker.LastCode()
}

// StatusLabel renders the gateway health line shown in status reports.
func (g *Gateway) StatusLabel(lang content.Language) string {
	lang = content.NormalizeLanguage(lang)
	if _, suspended := g.breaker.Suspended(); suspended && g.breaker.LastCode() != "" {
		if lang == content.LangEnglish {
			return fmt.Sprintf("❌ Dynamic AI content (temporarily unavailable: %s)", g.breaker.LastCode())
		}
		return fmt.Sprintf("❌ محتوى AI ديناميكي (غير متاح مؤقتًا: %s)", g.breaker.LastCode())
	}
	if lang == content.LangEnglish {
		return "✅ Dynamic AI content (unlimited)"
	}
	return "✅ محتوى AI ديناميكي (غير محدود)"
}

// AnswerQuestion answers a free-form trading question. The response
// language follows the question text: mostly-Arabic input gets an Arabic
// answer regardless of the profile language.
func (g *Gateway) AnswerQuestion(ctx context.Context, question string) (string, bool) {
	lang := content.LangEnglish
	if isMostlyArabic(question) {
		lang = content.LangArabic
	}
	return g.requestText(ctx, questionPrompt(question, lang), TempQuestion, lang)
}

// GenerateLesson produces one dynamic lesson, or nil when the provider is
// unavailable or returned an unusable payload.
func (g *Gateway) GenerateLesson(ctx context.Context, p LessonParams) (*content.Lesson, bool) {
	lang := content.NormalizeLanguage(p.Language)
	data, ok := g.requestJSON(ctx, lessonPrompt(p, lang), TempLesson, g.cfg.Timeout, true, lang)
	if !ok {
		return nil, false
	}
	lesson := parseLesson(data, p.Level, lang)
	if err := validateDoc(lessonSchema, lessonDoc(lesson)); err != nil {
		g.breaker.Note(CodeInvalidJSONShape)
		return nil, false
	}
	return lesson, true
}

// GenerateQuizPack produces exactly QuizCount questions for a lesson,
// requesting them in fixed-size chunks and padding any shortfall from the
// fallback bank. Chunk requests bypass the breaker in both directions:
// they proceed while suspended and their failures never open the window.
func (g *Gateway) GenerateQuizPack(ctx context.Context, p QuizPackParams) []content.QuizQuestion {
	if p.QuizCount <= 0 {
		return nil
	}
	lang := content.NormalizeLanguage(p.Language)
	totalChunks := (p.QuizCount + quizChunkSize - 1) / quizChunkSize

	var merged []content.QuizQuestion
	for chunk := 0; chunk < totalChunks; chunk++ {
		target := p.QuizCount - chunk*quizChunkSize
		if target > quizChunkSize {
			target = quizChunkSize
		}
		prompt := quizChunkPrompt(p, chunk, totalChunks, target, lang)
		data, ok := g.requestJSON(ctx, prompt, TempQuiz, g.cfg.QuizChunkTimeout, false, lang)
		if !ok {
			continue
		}
		questions := parseQuiz(data["quiz"], lang)
		if len(questions) > target {
			questions = questions[:target]
		}
		merged = append(merged, questions...)
	}

	merged = ensureQuizCount(merged, p.QuizCount, lang)
	if err := validateDoc(quizPackSchema, quizDoc(merged)); err != nil {
		g.breaker.Note(CodeInvalidJSONShape)
		return ensureQuizCount(nil, p.QuizCount, lang)
	}
	return merged
}

// GenerateSimulation produces one practice scenario with support below
// and resistance above the entry.
func (g *Gateway) GenerateSimulation(ctx context.Context, level content.Level, focus content.Focus, language content.Language) (*content.SimulationScenario, bool) {
	lang := content.NormalizeLanguage(language)
	data, ok := g.requestJSON(ctx, scenarioPrompt(level, focus, lang), TempScenario, g.cfg.Timeout, true, lang)
	if !ok {
		return nil, false
	}
	scenario := parseScenario(data, lang)
	if scenario == nil {
		g.breaker.Note(CodeInvalidJSONShape)
		return nil, false
	}
	if err := validateDoc(scenarioSchema, scenarioDoc(scenario)); err != nil {
		g.breaker.Note(CodeInvalidJSONShape)
		return nil, false
	}
	return scenario, true
}

// GenerateDailyChallenge produces one analysis challenge with its
// expected keywords.
func (g *Gateway) GenerateDailyChallenge(ctx context.Context, level content.Level, focus content.Focus, language content.Language) (*content.DailyChallenge, bool) {
	lang := content.NormalizeLanguage(language)
	data, ok := g.requestJSON(ctx, challengePrompt(level, focus, lang), TempChallenge, g.cfg.Timeout, true, lang)
	if !ok {
		return nil, false
	}
	challenge := parseChallenge(data, lang)
	if challenge == nil {
		g.breaker.Note(CodeInvalidJSONShape)
		return nil, false
	}
	if err := validateDoc(challengeSchema, challengeDoc(challenge)); err != nil {
		g.breaker.Note(CodeInvalidJSONShape)
		return nil, false
	}
	return challenge, true
}

// requestJSON issues one JSON-mode call and decodes the response into an
// object. gated requests honor and feed the breaker; ungated ones only
// note failure codes.
func (g *Gateway) requestJSON(ctx context.Context, userPrompt string, temperature float32, timeout time.Duration, gated bool, lang content.Language) (map[string]any, bool) {
	if gated && !g.breaker.Allow() {
		return nil, false
	}

	raw, err := g.chat.Complete(ctx, ChatRequest{
		System:      systemPrompt(lang),
		User:        userPrompt,
		Temperature: temperature,
		Timeout:     timeout,
		JSONObject:  true,
	})
	if err != nil {
		g.recordFailure(ClassifyError(err), gated)
		return nil, false
	}
	if strings.TrimSpace(raw) == "" {
		g.recordFailure(Classification{Code: CodeEmptyContent}, gated)
		return nil, false
	}

	data, code := decodeObject(ExtractJSONBlock(raw))
	if code != "" {
		g.recordFailure(Classification{Code: code}, gated)
		return nil, false
	}

	g.breaker.Clear()
	return data, true
}

// requestText issues one plain-text call with breaker gating.
func (g *Gateway) requestText(ctx context.Context, userPrompt string, temperature float32, lang content.Language) (string, bool) {
	if !g.breaker.Allow() {
		return "", false
	}

	raw, err := g.chat.Complete(ctx, ChatRequest{
		System:      systemPrompt(lang),
		User:        userPrompt,
		Temperature: temperature,
		Timeout:     g.cfg.Timeout,
	})
	if err != nil {
		g.recordFailure(ClassifyError(err), true)
		return "", false
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		g.recordFailure(Classification{Code: CodeEmptyContent}, true)
		return "", false
	}

	g.breaker.Clear()
	return text, true
}

func (g *Gateway) recordFailure(c Classification, gated bool) {
	if gated {
		g.breaker.Trip(c.Code, c.Cooldown)
	} else {
		g.breaker.Note(c.Code)
	}
}

// isMostlyArabic reports whether more than 30% of the runes fall in the
// Arabic blocks.
func isMostlyArabic(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	arabic := 0
	for _, r := range runes {
		if (r >= 0x0600 && r <= 0x06FF) || (r >= 0x0750 && r <= 0x077F) {
			arabic++
		}
	}
	return float64(arabic) > float64(len(runes))*0.3
}
