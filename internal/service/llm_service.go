package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"spendlens/pkg/config"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Generator produces a single text reply for a single prompt. The RAG core
// depends on nothing more than this string-in, string-out contract.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// LLMService talks to Groq's OpenAI-compatible chat-completion endpoint.
type LLMService struct {
	client *openai.Client
	config *config.GroqConfig
	logger *zap.Logger
}

func NewLLMService(cfg *config.GroqConfig, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GROQ_API_KEY is not set")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	logger.Info("LLM service initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
	)

	return &LLMService{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
		logger: logger,
	}, nil
}

func (s *LLMService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userPrompt},
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Messages:    messages,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
