package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Generator produces advice text from a rendered prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationError covers transport failures, non-2xx responses, and the
// empty-content case. Detail carries the provider's error body for operator
// logs; it is never returned verbatim to end users.
type GenerationError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *GenerationError) Error() string {
	if e.Detail != "" && e.StatusCode == 0 && e.Err == nil {
		return e.Detail
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("advice generation failed (status %d)", e.StatusCode)
	}
	return "advice generation failed"
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

const (
	// The provider picks the underlying model that serves each request.
	autoModel = "openrouter/auto"
	// Output-token budget per completion.
	maxOutputTokens = 3000
)

// OpenRouterClient sends prompts to OpenRouter's chat-completions endpoint
type OpenRouterClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenRouterClient creates an OpenRouter chat-completions client
func NewOpenRouterClient(baseURL, apiKey string, logger *slog.Logger) *OpenRouterClient {
	return &OpenRouterClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		FinishReason string `json:"finish_reason"`
		Message      struct {
			Content string `json:"content"`
			// OpenRouter sometimes leaves content empty and puts the
			// generated text in this field instead.
			Reasoning string `json:"reasoning"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message and extracts the
// completion text. Extraction is a two-tier fallback: the first choice's
// content when non-blank, otherwise that choice's reasoning field, otherwise
// failure. No retry is attempted.
func (c *OpenRouterClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: autoModel,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: maxOutputTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	c.logger.Info("calling chat completions",
		"model", autoModel,
		"prompt_chars", len(prompt),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("chat completions request failed", "error", err.Error())
		return "", &GenerationError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("chat completions returned error",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return "", &GenerationError{
			StatusCode: resp.StatusCode,
			Detail:     string(body),
		}
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		c.logger.Error("chat completions payload parse failed", "error", err.Error())
		return "", &GenerationError{Err: err}
	}

	finishReason := ""
	if len(out.Choices) > 0 {
		finishReason = out.Choices[0].FinishReason
	}
	c.logger.Info("chat completions response received",
		"status", resp.StatusCode,
		"choices", len(out.Choices),
		"finish_reason", finishReason,
	)

	if len(out.Choices) == 0 {
		return "", &GenerationError{Detail: "no advice content received"}
	}

	advice := out.Choices[0].Message.Content
	if strings.TrimSpace(advice) == "" && out.Choices[0].Message.Reasoning != "" {
		c.logger.Warn("content empty, using reasoning field as advice")
		advice = out.Choices[0].Message.Reasoning
	}
	if strings.TrimSpace(advice) == "" {
		return "", &GenerationError{Detail: "no advice content received"}
	}

	c.logger.Info("advice generated", "content_chars", len(advice))
	return advice, nil
}

var _ Generator = (*OpenRouterClient)(nil)
