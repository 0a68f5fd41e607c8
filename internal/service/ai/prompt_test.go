package ai

import (
	"testing"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
)

func TestWithMoodContextNoMood(t *testing.T) {
	if got := withMoodContext("hello", nil); got != "hello" {
		t.Fatalf("prompt should be untouched, got %q", got)
	}
}

func TestWithMoodContextMoodAndNote(t *testing.T) {
	mood := &chat.MoodEntry{Date: "2025-01-01", Mood: 4, Note: "시험이 걱정된다"}

	got := withMoodContext("오늘 계획 짜줘", mood)
	want := "[오늘의 기분: 4/10]\n[메모: 시험이 걱정된다]\n오늘 계획 짜줘"
	if got != want {
		t.Fatalf("unexpected prompt:\n got %q\nwant %q", got, want)
	}
}

func TestWithMoodContextBlankNoteOmitted(t *testing.T) {
	mood := &chat.MoodEntry{Date: "2025-01-01", Mood: 8, Note: "   "}

	got := withMoodContext("hi", mood)
	want := "[오늘의 기분: 8/10]\nhi"
	if got != want {
		t.Fatalf("unexpected prompt %q", got)
	}
}
