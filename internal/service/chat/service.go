package chat

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
)

var (
	ErrProfileRequired = errors.New("profile id is required")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidMood     = errors.New("mood must be between 0 and 10")
)

// Service encapsulates in-memory conversation state: session records,
// their message history and the per-day mood log. Session state lives
// and dies with the process.
type Service struct {
	mu         sync.RWMutex
	profiles   profile.Store
	maxHistory int
	sessions   map[string]chat.Session
	messages   map[string][]chat.Message
	moods      map[string]map[string]chat.MoodEntry
}

// NewService bootstraps the in-memory chat service. maxHistory bounds
// the retained turns per session; older turns are discarded first.
func NewService(profiles profile.Store, maxHistory int) *Service {
	if maxHistory < 1 {
		maxHistory = 1
	}
	return &Service{
		profiles:   profiles,
		maxHistory: maxHistory,
		sessions:   make(map[string]chat.Session),
		messages:   make(map[string][]chat.Message),
		moods:      make(map[string]map[string]chat.MoodEntry),
	}
}

// CreateSession provisions an anonymous session bound to a coach profile
// and seeds its history with the profile's greeting turn.
func (s *Service) CreateSession(_ context.Context, profileID, displayName string) (chat.Session, error) {
	if profileID == "" {
		return chat.Session{}, ErrProfileRequired
	}

	prof, ok := s.profiles.FindByID(profileID)
	if !ok {
		return chat.Session{}, ErrProfileNotFound
	}

	if displayName == "" {
		displayName = "친구"
	}

	session := chat.Session{
		ID:          uuid.NewString(),
		ProfileID:   profileID,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = []chat.Message{greetingTurn(session.ID, prof.Greeting)}
	s.mu.Unlock()

	return session, nil
}

// ResetSession clears the history back to a single reset-greeting turn.
// The session identity and mood log survive the reset.
func (s *Service) ResetSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	prof, ok := s.profiles.FindByID(session.ProfileID)
	if !ok {
		return ErrProfileNotFound
	}

	s.messages[sessionID] = []chat.Message{greetingTurn(sessionID, prof.ResetGreeting)}
	return nil
}

// SaveMessage appends a message to the session history, trimming the
// oldest turns past the configured window.
func (s *Service) SaveMessage(_ context.Context, message chat.Message) error {
	if message.SessionID == "" {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[message.SessionID]; !ok {
		return ErrSessionNotFound
	}

	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	history := append(s.messages[message.SessionID], message)
	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}
	s.messages[message.SessionID] = history
	return nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// LoadTranscript returns a copy of the stored messages for the session.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// SaveMood upserts the mood check-in for the entry's calendar date.
func (s *Service) SaveMood(_ context.Context, sessionID string, entry chat.MoodEntry) error {
	if entry.Mood < 0 || entry.Mood > 10 {
		return ErrInvalidMood
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}

	record, ok := s.moods[sessionID]
	if !ok {
		record = make(map[string]chat.MoodEntry)
		s.moods[sessionID] = record
	}
	record[entry.Date] = entry
	return nil
}

// MoodOn returns the mood recorded for the given date, if any.
func (s *Service) MoodOn(_ context.Context, sessionID, date string) (chat.MoodEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.moods[sessionID][date]
	return entry, ok
}

// MoodLog returns every recorded mood entry sorted by date.
func (s *Service) MoodLog(_ context.Context, sessionID string) ([]chat.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}

	record := s.moods[sessionID]
	entries := make([]chat.MoodEntry, 0, len(record))
	for _, entry := range record {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

func greetingTurn(sessionID, content string) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Sender:    "assistant",
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
