package quiz_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/daily"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/vocab"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/service/quiz"
)

func dailyWords(t time.Time) []vocab.Entry {
	return daily.Pick(vocab.Bank(), t, 12)
}

func TestBuildDailyDeterministic(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 0, 0, 0, daily.KST)
	words := dailyWords(date)

	first := quiz.BuildDaily(words, date)
	second := quiz.BuildDaily(words, date)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same date must yield identical quiz sets")
	}
	if first.Date != "2025-03-14" {
		t.Fatalf("unexpected date label: %s", first.Date)
	}
}

func TestBuildDailyDiffersAcrossDates(t *testing.T) {
	d1 := time.Date(2025, 3, 14, 9, 0, 0, 0, daily.KST)
	d2 := time.Date(2025, 3, 15, 9, 0, 0, 0, daily.KST)

	s1 := quiz.BuildDaily(dailyWords(d1), d1)
	s2 := quiz.BuildDaily(dailyWords(d2), d2)

	if reflect.DeepEqual(s1.Choices, s2.Choices) && reflect.DeepEqual(s1.Fills, s2.Fills) {
		t.Fatal("consecutive dates produced identical quizzes")
	}
}

func TestBuildDailyChoices(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 0, 0, 0, daily.KST)
	words := dailyWords(date)

	set := quiz.BuildDaily(words, date)
	if len(set.Choices) != len(words) {
		t.Fatalf("expected one choice question per word, got %d", len(set.Choices))
	}

	for _, q := range set.Choices {
		if len(q.Options) != 4 {
			t.Fatalf("question %q has %d options, want 4", q.Word, len(q.Options))
		}

		found := 0
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			if seen[opt] {
				t.Fatalf("question %q repeats option %q", q.Word, opt)
			}
			seen[opt] = true
			if opt == q.Answer {
				found++
			}
		}
		if found != 1 {
			t.Fatalf("question %q must contain its answer exactly once", q.Word)
		}
	}
}

func TestBuildDailyFills(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 0, 0, 0, daily.KST)
	words := dailyWords(date)

	set := quiz.BuildDaily(words, date)
	if len(set.Fills) != 5 {
		t.Fatalf("expected 5 fill questions, got %d", len(set.Fills))
	}

	for _, q := range set.Fills {
		if !strings.Contains(q.Prompt, "____") {
			t.Fatalf("prompt %q has no blank", q.Prompt)
		}
		if strings.Contains(q.Prompt, q.Answer) {
			t.Fatalf("prompt %q leaks the answer %q", q.Prompt, q.Answer)
		}
		if q.Answer == "" {
			t.Fatal("fill question has empty answer")
		}
	}
}

func TestBuildDailyFewWords(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 0, 0, 0, daily.KST)
	words := daily.Pick(vocab.Bank(), date, 3)

	set := quiz.BuildDaily(words, date)
	if len(set.Fills) != 3 {
		t.Fatalf("fill count must not exceed word count, got %d", len(set.Fills))
	}
	for _, q := range set.Choices {
		// Two distractors plus the answer is all three words allow.
		if len(q.Options) != 3 {
			t.Fatalf("question %q has %d options, want 3", q.Word, len(q.Options))
		}
	}
}

func TestGradeChoice(t *testing.T) {
	q := quiz.Choice{Word: "improve", Options: []string{"a", "b"}, Answer: "개선하다"}

	if !quiz.GradeChoice(q, "개선하다") {
		t.Fatal("correct option rejected")
	}
	if quiz.GradeChoice(q, "a") {
		t.Fatal("wrong option accepted")
	}
}

func TestGradeFill(t *testing.T) {
	q := quiz.Fill{Prompt: "____ : ...", Answer: "improve"}

	cases := []struct {
		typed string
		want  bool
	}{
		{"improve", true},
		{"  Improve  ", true},
		{"IMPROVE", true},
		{"improv", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := quiz.GradeFill(q, tc.typed); got != tc.want {
			t.Errorf("GradeFill(%q) = %t, want %t", tc.typed, got, tc.want)
		}
	}
}
