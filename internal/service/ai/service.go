package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/config"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
)

// Tier identifies which stage of the fallback ladder produced a reply.
type Tier string

const (
	TierStream    Tier = "stream"
	TierSingle    Tier = "single"
	TierStateless Tier = "stateless"
	TierFailed    Tier = "failed"
)

// Sentinels surfaced to the user in place of missing model output.
const (
	emptyReplyText = "(빈 응답)"
	errorReplyFmt  = "(오류) %v"
)

// Reply carries the final text of one reply request. Text is never
// empty: when every tier fails it holds a user-visible error string and
// Err records the underlying cause.
type Reply struct {
	Text string `json:"text"`
	Tier Tier   `json:"tier"`
	Err  error  `json:"-"`
}

// Failed reports whether the reply is the terminal error text rather
// than model output.
func (r Reply) Failed() bool {
	return r.Tier == TierFailed
}

// Service orchestrates reply generation against the hosted model,
// walking a three-tier ladder: streamed conversational reply, then a
// non-streamed retry on the same session, then a stateless call without
// history. Each tier runs at most once.
type Service struct {
	client Client
	cfg    config.AIConfig
}

// NewService creates the AI service backed by the Gemini API.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	client, err := newGeminiClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	return &Service{client: client, cfg: cfg}, nil
}

func newServiceWithClient(client Client, cfg config.AIConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// StreamingEnabled indicates whether the stream tier is attempted at all.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// MaxHistory exposes the configured conversation window.
func (s *Service) MaxHistory() int {
	return s.cfg.MaxHistory
}

// Reply generates one reply for userMessage given the prior history.
// mood, when present, is folded into the prompt as bracketed context
// tags. emit, when non-nil, receives each text increment as it arrives;
// those increments are display-only and the returned Text is the single
// source of truth. Reply always returns usable text and never panics
// past its boundary.
func (s *Service) Reply(ctx context.Context, prof *profile.Profile, history []chat.Message, userMessage string, mood *chat.MoodEntry, emit func(string)) Reply {
	prompt := withMoodContext(userMessage, mood)
	system := ""
	if prof != nil {
		system = prof.SystemPrompt
	}
	turns := toProviderHistory(history, s.cfg.MaxHistory)

	session, err := s.client.StartChat(ctx, system, turns)
	if err != nil {
		log.Printf("[ai] chat session unavailable, falling back to stateless call: %v", err)
		return s.statelessReply(ctx, system, prompt, err)
	}

	var lastErr error
	if s.cfg.StreamResponse {
		acc, streamErr := s.streamReply(ctx, session, prompt, emit)
		if strings.TrimSpace(acc) != "" {
			// Partial output before a mid-stream failure still counts as
			// the reply; the user already saw it.
			return Reply{Text: acc, Tier: TierStream, Err: streamErr}
		}
		lastErr = streamErr
		if streamErr != nil {
			log.Printf("[ai] stream attempt yielded no text: %v", streamErr)
		}
	}

	text, err := session.Send(ctx, prompt)
	if err == nil {
		if strings.TrimSpace(text) == "" {
			text = emptyReplyText
		}
		return Reply{Text: text, Tier: TierSingle}
	}
	lastErr = err
	log.Printf("[ai] single-response attempt failed: %v", err)

	return s.statelessReply(ctx, system, prompt, lastErr)
}

// streamReply consumes the incremental channel, surfacing each chunk
// through emit and returning the accumulated text alongside the error
// that interrupted the stream, if any.
func (s *Service) streamReply(ctx context.Context, session ChatSession, prompt string, emit func(string)) (string, error) {
	chunks, err := session.SendStream(ctx, prompt)
	if err != nil {
		return "", err
	}

	var acc strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			return acc.String(), chunk.Err
		}
		if chunk.Content != "" {
			acc.WriteString(chunk.Content)
			if emit != nil {
				emit(chunk.Content)
			}
		}
		if chunk.Done {
			break
		}
	}
	return acc.String(), nil
}

func (s *Service) statelessReply(ctx context.Context, system, prompt string, cause error) Reply {
	text, err := s.client.Generate(ctx, system, prompt)
	if err == nil {
		if strings.TrimSpace(text) == "" {
			text = emptyReplyText
		}
		return Reply{Text: text, Tier: TierStateless}
	}

	log.Printf("[ai] stateless attempt failed: %v", err)
	if cause == nil {
		cause = err
	}
	return Reply{Text: fmt.Sprintf(errorReplyFmt, err), Tier: TierFailed, Err: cause}
}
