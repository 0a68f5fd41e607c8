package chat_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatHandler "github.com/tpgus72513/for-UnderDog-Revolution/internal/handler/chat"
	chatModel "github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
	chatService "github.com/tpgus72513/for-UnderDog-Revolution/internal/service/chat"
)

func newTestServer(t *testing.T) (*httptest.Server, *chatService.Service) {
	t.Helper()

	svc := chatService.NewService(profile.NewMemoryStore(profile.Seed()), 30)
	r := chi.NewRouter()
	chatHandler.New(svc).RegisterRoutes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, svc
}

func TestCreateSession(t *testing.T) {
	server, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"profileId":"mindset-coach","displayName":"소연"}`)
	resp, err := http.Post(server.URL+"/session", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var session chatModel.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected session ID to be set")
	}
	if session.ProfileID != "mindset-coach" {
		t.Fatalf("unexpected profile ID: %s", session.ProfileID)
	}
	if session.DisplayName != "소연" {
		t.Fatalf("unexpected display name: %s", session.DisplayName)
	}
}

func TestCreateSessionMissingProfile(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/session", "application/json", bytes.NewBufferString(`{}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateSessionUnknownProfile(t *testing.T) {
	server, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"profileId":"nope"}`)
	resp, err := http.Post(server.URL+"/session", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestResetSession(t *testing.T) {
	server, svc := newTestServer(t)

	session, err := svc.CreateSession(context.Background(), "mindset-coach", "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	resp, err := http.Post(server.URL+"/session/"+session.ID+"/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestResetSessionNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/session/missing/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestTranscript(t *testing.T) {
	server, svc := newTestServer(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "mindset-coach", "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	if err := svc.SaveMessage(ctx, chatModel.Message{SessionID: session.ID, Sender: "user", Content: "오늘 너무 지쳤어"}); err != nil {
		t.Fatalf("SaveMessage err: %v", err)
	}

	resp, err := http.Get(server.URL + "/session/" + session.ID + "/messages")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var messages []chatModel.Message
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected greeting plus one turn, got %d", len(messages))
	}
	if messages[1].Content != "오늘 너무 지쳤어" {
		t.Fatalf("unexpected last message: %q", messages[1].Content)
	}
}

func TestSaveMessage(t *testing.T) {
	server, svc := newTestServer(t)

	session, err := svc.CreateSession(context.Background(), "mindset-coach", "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	body := bytes.NewBufferString(`{"sessionId":"` + session.ID + `","sender":"user","content":"hi"}`)
	resp, err := http.Post(server.URL+"/messages", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
}

func TestSaveMessageUnknownSession(t *testing.T) {
	server, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"sessionId":"missing","sender":"user","content":"hi"}`)
	resp, err := http.Post(server.URL+"/messages", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
