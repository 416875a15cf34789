package gateway

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// MinTimeout is the floor applied to any request timeout.
const MinTimeout = 3 * time.Second

// MinQuizChunkTimeout is the floor for quiz-pack chunk requests, which
// generate far more tokens than a single lesson or answer.
const MinQuizChunkTimeout = 90 * time.Second

// Sampling temperatures per request kind.
const (
	TempLesson    float32 = 1.0
	TempQuiz      float32 = 0.8
	TempQuestion  float32 = 0.7
	TempScenario  float32 = 1.0
	TempChallenge float32 = 1.0
)

// quizChunkSize is the number of questions requested per quiz-pack call.
const quizChunkSize = 25

var errMissingAPIKey = errors.New("API key is required")

// Config holds content gateway configuration.
type Config struct {
	// APIKey authorizes requests against the chat-completion endpoint.
	APIKey string

	// Model is the chat model identifier.
	Model string

	// BaseURL overrides the endpoint for OpenRouter or compatible APIs.
	BaseURL string

	// Timeout is the maximum duration for a single request. Default: 20s.
	Timeout time.Duration

	// QuizChunkTimeout is the per-chunk timeout for quiz-pack generation.
	// Never less than MinQuizChunkTimeout.
	QuizChunkTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:            "gpt-4o-mini",
		Timeout:          20 * time.Second,
		QuizChunkTimeout: MinQuizChunkTimeout,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("SINTRADE_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("SINTRADE_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("SINTRADE_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("SINTRADE_TIMEOUT_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

// Validate checks that required fields are set and clamps timeouts to
// their floors.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("SINTRADE_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model identifier is required")
	}
	if c.Timeout < MinTimeout {
		c.Timeout = MinTimeout
	}
	if c.QuizChunkTimeout < MinQuizChunkTimeout {
		c.QuizChunkTimeout = MinQuizChunkTimeout
	}
	if c.QuizChunkTimeout < c.Timeout {
		c.QuizChunkTimeout = c.Timeout
	}
	return nil
}
