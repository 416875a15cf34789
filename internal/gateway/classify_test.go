package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

func TestClassifyError_Timeout(t *testing.T) {
	err := fmt.Errorf("request failed: %w", context.DeadlineExceeded)
	c := ClassifyError(err)
	if c.Code != CodeTimeout {
		t.Fatalf("expected %q, got %q", CodeTimeout, c.Code)
	}
	if c.Cooldown != 20*time.Second {
		t.Fatalf("expected 20s cooldown, got %s", c.Cooldown)
	}
}

func TestClassifyError_AuthErrors(t *testing.T) {
	for _, status := range []int{401, 403} {
		err := &openai.APIError{HTTPStatusCode: status, Code: "invalid_api_key"}
		c := ClassifyError(err)
		if c.Code != "invalid_api_key" {
			t.Fatalf("status %d: expected provider code, got %q", status, c.Code)
		}
		if c.Cooldown != 300*time.Second {
			t.Fatalf("status %d: expected 300s cooldown, got %s", status, c.Cooldown)
		}
	}
}

func TestClassifyError_QuotaExhaustion(t *testing.T) {
	err := &openai.APIError{HTTPStatusCode: 429, Code: "insufficient_quota"}
	c := ClassifyError(err)
	if c.Cooldown != 1800*time.Second {
		t.Fatalf("quota exhaustion should cool down 1800s, got %s", c.Cooldown)
	}
}

func TestClassifyError_PlainRateLimit(t *testing.T) {
	err := &openai.APIError{HTTPStatusCode: 429, Code: "rate_limit_exceeded"}
	c := ClassifyError(err)
	if c.Cooldown != 120*time.Second {
		t.Fatalf("plain 429 should cool down 120s, got %s", c.Cooldown)
	}
}

func TestClassifyError_ServerError(t *testing.T) {
	err := &openai.APIError{HTTPStatusCode: 500}
	c := ClassifyError(err)
	if c.Code != "http_500" {
		t.Fatalf("missing provider code should fall back to status, got %q", c.Code)
	}
	if c.Cooldown != 60*time.Second {
		t.Fatalf("server error should cool down 60s, got %s", c.Cooldown)
	}
}

func TestClassifyError_CodeFromMessage(t *testing.T) {
	err := &openai.APIError{
		HTTPStatusCode: 400,
		Message:        "Something Went Badly Wrong",
	}
	c := ClassifyError(err)
	if c.Code != "something_went_badly_wrong" {
		t.Fatalf("message should normalize to a code, got %q", c.Code)
	}
}

func TestClassifyError_NetworkFallback(t *testing.T) {
	c := ClassifyError(errors.New("connection refused"))
	if c.Code != CodeNetworkError {
		t.Fatalf("expected %q, got %q", CodeNetworkError, c.Code)
	}
	if c.Cooldown != 60*time.Second {
		t.Fatalf("expected 60s cooldown, got %s", c.Cooldown)
	}
}
