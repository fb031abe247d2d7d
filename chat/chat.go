package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Responder produces a conversational reply for input that matched no
// game command.
type Responder interface {
	Respond(ctx context.Context, input, mode, task string) (string, error)
}

// GeminiResponder talks to the Gemini API.
type GeminiResponder struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiResponder creates a responder against the given model. Call
// Close when done with it.
func NewGeminiResponder(ctx context.Context, apiKey, modelName string) (*GeminiResponder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.SetMaxOutputTokens(100)

	return &GeminiResponder{client: client, model: model}, nil
}

func (g *GeminiResponder) Respond(ctx context.Context, input, mode, task string) (string, error) {
	session := g.model.StartChat()
	resp, err := session.SendMessage(ctx, genai.Text(BuildPrompt(input, mode, task)))
	if err != nil {
		log.WithFields(log.Fields{
			"mode": mode,
			"task": task,
		}).WithError(err).Warn("Chat completion failed")
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	reply := strings.TrimSpace(responseText(resp))
	if reply == "" {
		return "", errors.New("chat completion returned no text")
	}
	return reply, nil
}

// Close releases the underlying API client.
func (g *GeminiResponder) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}

// Unavailable is the responder used when no API key is configured.
type Unavailable struct{}

func (Unavailable) Respond(ctx context.Context, input, mode, task string) (string, error) {
	return "", errors.New("chat responder is not configured")
}
