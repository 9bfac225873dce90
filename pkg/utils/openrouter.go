package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenRouterConfig holds the immutable client configuration. It is built once
// at startup and injected; nothing mutates it afterwards.
type OpenRouterConfig struct {
	APIKey         string
	Endpoint       string  // e.g. "https://openrouter.ai/api/v1/chat/completions"
	Model          string  // e.g. "gpt-4o-mini"
	Temperature    float32 // default 0.7
	MaxTokens      int     // default 1000
	SystemMessage  string
	RequestTimeout time.Duration
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequestBody struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatCompletion is the loosely-typed response of the chat endpoint. OpenRouter
// proxies many providers, so the payload arrives either as a direct
// {content, role} object or as the usual chat-completion {choices: [...]}
// shape. Both are decoded here; ExtractPlanText decides which one applies.
type ChatCompletion struct {
	Content string          `json:"content"`
	Role    string          `json:"role"`
	Error   json.RawMessage `json:"error"`
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
			Role    string  `json:"role"`
		} `json:"message"`
	} `json:"choices"`
}

type ChatClientInterface interface {
	SendChatRequest(ctx context.Context, prompt string) (*ChatCompletion, error)
}

type OpenRouterClient struct {
	config     OpenRouterConfig
	httpClient *http.Client
}

func NewOpenRouterClient(config OpenRouterConfig) ChatClientInterface {
	return &OpenRouterClient{
		config:     config,
		httpClient: &http.Client{},
	}
}

// SendChatRequest performs exactly one outbound call. No retries, no caching;
// the caller decides what to do when it fails.
func (o *OpenRouterClient) SendChatRequest(ctx context.Context, prompt string) (*ChatCompletion, error) {
	if o.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.RequestTimeout)
		defer cancel()
	}

	messages := make([]ChatMessage, 0, 2)
	if o.config.SystemMessage != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: o.config.SystemMessage})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequestBody{
		Model:       o.config.Model,
		Messages:    messages,
		Temperature: o.config.Temperature,
		MaxTokens:   o.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.config.APIKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrLLMUpstream, resp.StatusCode, payload)
	}

	var completion ChatCompletion
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLLMResponse, err)
	}

	return &completion, nil
}

// ExtractPlanText pulls the plan text out of a chat completion. A non-empty
// direct content field is trusted first, then an explicit error payload is
// rejected, then the first choice's message content. Only the first choice is
// ever read so identical responses always yield identical text.
func ExtractPlanText(completion *ChatCompletion) (string, error) {
	if completion == nil {
		return "", ErrMalformedLLMResponse
	}

	if completion.Content != "" {
		return completion.Content, nil
	}

	if len(completion.Error) > 0 && string(completion.Error) != "null" {
		return "", fmt.Errorf("%w: %s", ErrLLMUpstream, completion.Error)
	}

	if len(completion.Choices) > 0 && completion.Choices[0].Message.Content != nil {
		return *completion.Choices[0].Message.Content, nil
	}

	return "", ErrMalformedLLMResponse
}
