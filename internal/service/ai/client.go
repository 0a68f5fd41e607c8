package ai

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/config"
)

// StreamChunk is one increment of a streamed reply.
type StreamChunk struct {
	Content string
	Done    bool
	Err     error
}

// ChatSession is one conversational exchange context seeded with history.
type ChatSession interface {
	// SendStream delivers the reply as increments over a channel. The
	// channel is closed after the Done or Err chunk.
	SendStream(ctx context.Context, prompt string) (<-chan StreamChunk, error)
	// Send issues a non-incremental request on the same conversation.
	Send(ctx context.Context, prompt string) (string, error)
}

// Client abstracts the hosted model transport so the orchestrator can be
// exercised without the network.
type Client interface {
	StartChat(ctx context.Context, system string, history []*genai.Content) (ChatSession, error)
	// Generate issues a stateless call carrying no conversation history.
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type geminiClient struct {
	client *genai.Client
	cfg    config.AIConfig
}

func newGeminiClient(ctx context.Context, cfg config.AIConfig) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &geminiClient{client: client, cfg: cfg}, nil
}

func (g *geminiClient) generateConfig(system string) *genai.GenerateContentConfig {
	out := &genai.GenerateContentConfig{}
	if system != "" {
		out.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if g.cfg.Temperature != nil {
		out.Temperature = genai.Ptr(float32(*g.cfg.Temperature))
	}
	if g.cfg.TopP != nil {
		out.TopP = genai.Ptr(float32(*g.cfg.TopP))
	}
	if g.cfg.MaxTokens != nil {
		out.MaxOutputTokens = int32(*g.cfg.MaxTokens)
	}
	return out
}

func (g *geminiClient) StartChat(ctx context.Context, system string, history []*genai.Content) (ChatSession, error) {
	chat, err := g.client.Chats.Create(ctx, g.cfg.Model, g.generateConfig(system), history)
	if err != nil {
		return nil, err
	}
	return &geminiSession{chat: chat}, nil
}

func (g *geminiClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), g.generateConfig(system))
	if err != nil {
		return "", err
	}
	return responseText(res), nil
}

type geminiSession struct {
	chat *genai.Chat
}

func (s *geminiSession) SendStream(ctx context.Context, prompt string) (<-chan StreamChunk, error) {
	out := make(chan StreamChunk)

	go func() {
		defer close(out)
		for res, err := range s.chat.SendMessageStream(ctx, genai.Part{Text: prompt}) {
			if err != nil {
				out <- StreamChunk{Err: err}
				return
			}
			if text := responseText(res); text != "" {
				out <- StreamChunk{Content: text}
			}
		}
		out <- StreamChunk{Done: true}
	}()

	return out, nil
}

func (s *geminiSession) Send(ctx context.Context, prompt string) (string, error) {
	res, err := s.chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	return responseText(res), nil
}

// responseText pulls the text fragments out of a model response. A
// response without candidates or parts (e.g. a safety block) yields the
// empty string; callers decide how to surface that.
func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil {
			builder.WriteString(part.Text)
		}
	}
	return builder.String()
}
