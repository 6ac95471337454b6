package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/techq/techq-be/internal/config"
	"github.com/techq/techq-be/internal/model"
)

// historyWindow is how many of the most recent turns are forwarded upstream.
const historyWindow = 10

const systemPrompt = `You are Mpho, a friendly and knowledgeable AI assistant for Tech Q.
Your job is to:
- Answer customer questions accurately about Tech Q's AI automation and web development services.
- Always be polite, concise, and use simple language.
- If you are not sure, ask the user to clarify or suggest contacting support.
- Never make up facts; only answer from your knowledge base and instructions.
- If the request is urgent or cannot be solved in chat, respond with:
  "I'm not sure I can help with that. Please provide your contact details, and our support team will reach out to you."

Tech Q offers:
- AI Automation services to streamline business processes
- Web Development for modern, responsive websites
- Custom solutions for businesses
- 24/7 support and consultation

For pricing and detailed consultations, direct users to contact the team.`

// ChatCompletionClient is the part of the OpenAI client the chat service uses.
type ChatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewOpenAIClient builds a completion client on top of the shared upstream
// http.Client.
func NewOpenAIClient(cfg config.ChatConfig, httpClient *http.Client) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = httpClient
	return openai.NewClientWithConfig(clientConfig)
}

type ChatService struct {
	client      ChatCompletionClient
	model       string
	maxTokens   int
	temperature float32
}

func NewChatService(client ChatCompletionClient, cfg config.ChatConfig) *ChatService {
	return &ChatService{
		client:      client,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// BuildMessages returns the system preamble, the last historyWindow turns and
// the trimmed user message, in that order.
func BuildMessages(message string, history []model.ChatTurn) []openai.ChatCompletionMessage {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: strings.TrimSpace(message),
	})
	return messages
}

// Reply makes exactly one completion call and returns the first choice.
func (s *ChatService) Reply(ctx context.Context, message string, history []model.ChatTurn) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    BuildMessages(message, history),
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: status %d: %s", ErrUpstreamUnavailable, apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices (id=%q)", ErrInvalidUpstreamResponse, resp.ID)
	}

	return resp.Choices[0].Message.Content, nil
}
