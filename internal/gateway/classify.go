package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Failure codes produced by classification. Transport failures map from
// the SDK error; the content codes are assigned by the gateway when the
// provider answered but the payload was unusable.
const (
	CodeTimeout          = "timeout"
	CodeNetworkError     = "network_error"
	CodeEmptyContent     = "empty_content"
	CodeInvalidJSON      = "invalid_json"
	CodeInvalidJSONShape = "invalid_json_shape"
)

// Cooldown durations per failure class.
const (
	cooldownTimeout      = 20 * time.Second
	cooldownNetwork      = 60 * time.Second
	cooldownAuth         = 300 * time.Second
	cooldownQuota        = 1800 * time.Second
	cooldownRateLimit    = 120 * time.Second
	cooldownServerError  = 60 * time.Second
	maxClassifiedCodeLen = 80
)

// Classification pairs a short failure code with the cooldown it earns.
type Classification struct {
	Code     string
	Cooldown time.Duration
}

// ClassifyError maps a transport error to a failure code and cooldown.
func ClassifyError(err error) Classification {
	if errors.Is(err, context.DeadlineExceeded) {
		return Classification{Code: CodeTimeout, Cooldown: cooldownTimeout}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, apiCode(apiErr))
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode >= 400 {
		return classifyStatus(reqErr.HTTPStatusCode, "")
	}

	return Classification{Code: CodeNetworkError, Cooldown: cooldownNetwork}
}

func classifyStatus(status int, code string) Classification {
	if code == "" {
		code = fmt.Sprintf("http_%d", status)
	}
	switch {
	case status == 401 || status == 403:
		return Classification{Code: code, Cooldown: cooldownAuth}
	case status == 429 && strings.Contains(code, "insufficient_quota"):
		return Classification{Code: code, Cooldown: cooldownQuota}
	case status == 429:
		return Classification{Code: code, Cooldown: cooldownRateLimit}
	case status >= 400:
		return Classification{Code: code, Cooldown: cooldownServerError}
	default:
		return Classification{Code: CodeNetworkError, Cooldown: cooldownNetwork}
	}
}

// apiCode extracts a stable short code from the provider's error envelope,
// preferring the machine code over the type over the message.
func apiCode(e *openai.APIError) string {
	if s, ok := e.Code.(string); ok && strings.TrimSpace(s) != "" {
		return normalizeCode(s)
	}
	if e.Type != "" {
		return normalizeCode(e.Type)
	}
	return normalizeCode(e.Message)
}

func normalizeCode(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "_")
	if len(s) > maxClassifiedCodeLen {
		s = s[:maxClassifiedCodeLen]
	}
	return s
}
