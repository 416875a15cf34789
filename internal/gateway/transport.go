package gateway

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ChatRequest describes a single chat-completion call.
type ChatRequest struct {
	// System sets the assistant's role and constraints.
	System string

	// User is the instruction, including any embedded schema description.
	User string

	// Temperature controls sampling randomness.
	Temperature float32

	// Timeout bounds the whole call. Values below MinTimeout are raised.
	Timeout time.Duration

	// JSONObject requests a JSON-object response format from the provider.
	JSONObject bool
}

// ChatCompleter issues chat-completion requests and returns the raw message
// text. Implementations must honor the request timeout; errors are returned
// unclassified for the gateway to map.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
	ModelID() string
}

// OpenAIChat implements ChatCompleter using the OpenAI SDK. OpenRouter and
// other OpenAI-compatible endpoints work via BaseURL.
type OpenAIChat struct {
	client *openai.Client
	model  string
}

// NewOpenAIChat creates the production transport.
func NewOpenAIChat(cfg Config) (*OpenAIChat, error) {
	if cfg.APIKey == "" {
		return nil, errMissingAPIKey
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIChat{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

func (c *OpenAIChat) Complete(ctx context.Context, req ChatRequest) (string, error) {
	timeout := req.Timeout
	if timeout < MinTimeout {
		timeout = MinTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
	}
	if req.JSONObject {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return extractMessageText(resp.Choices[0].Message), nil
}

func (c *OpenAIChat) ModelID() string {
	return c.model
}

// extractMessageText handles both content shapes the envelope allows: a
// plain string or a list of typed segments, of which only text parts count.
func extractMessageText(msg openai.ChatCompletionMessage) string {
	if msg.Content != "" {
		return msg.Content
	}
	var parts []string
	for _, p := range msg.MultiContent {
		if p.Type == openai.ChatMessagePartTypeText && p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}
