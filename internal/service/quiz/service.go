// Package quiz builds the deterministic daily vocabulary quizzes. Every
// question set is a pure function of the word list and the calendar
// date, so reloading the page never reshuffles a half-answered quiz.
package quiz

import (
	"strings"
	"time"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/daily"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/vocab"
)

// Seed offsets keep the two quiz kinds on distinct deterministic
// sequences while staying tied to the same calendar date.
const (
	choiceSeedOffset = 7
	fillSeedOffset   = 13
)

const maxFillQuestions = 5

// Choice is a multiple-choice question: pick the meaning of Word.
type Choice struct {
	Word    string   `json:"word"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Fill is a fill-in-the-blank question built from a word's example
// sentence.
type Fill struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Set bundles both quiz kinds for one day.
type Set struct {
	Date    string   `json:"date"`
	Choices []Choice `json:"choices"`
	Fills   []Fill   `json:"fills"`
}

// BuildDaily assembles the quiz set for the given date from the already
// selected daily words.
func BuildDaily(words []vocab.Entry, t time.Time) Set {
	return Set{
		Date:    daily.DateString(t),
		Choices: buildChoices(words, t),
		Fills:   buildFills(words, t),
	}
}

func buildChoices(words []vocab.Entry, t time.Time) []Choice {
	rng := daily.New(t, choiceSeedOffset)

	meanings := make([]string, 0, len(words))
	for _, w := range words {
		meanings = append(meanings, w.Meaning)
	}

	choices := make([]Choice, 0, len(words))
	for _, w := range words {
		pool := make([]string, 0, len(meanings))
		for _, m := range meanings {
			if m != w.Meaning {
				pool = append(pool, m)
			}
		}

		wrongCount := 3
		if len(pool) < wrongCount {
			wrongCount = len(pool)
		}

		options := append(daily.Sample(rng, pool, wrongCount), w.Meaning)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		choices = append(choices, Choice{Word: w.Word, Options: options, Answer: w.Meaning})
	}
	return choices
}

func buildFills(words []vocab.Entry, t time.Time) []Fill {
	rng := daily.New(t, fillSeedOffset)

	count := maxFillQuestions
	if len(words) < count {
		count = len(words)
	}

	fills := make([]Fill, 0, count)
	for _, w := range daily.Sample(rng, words, count) {
		prompt := "____ : " + w.Example
		if strings.Contains(w.Example, w.Word) {
			prompt = strings.ReplaceAll(w.Example, w.Word, "____")
		}
		fills = append(fills, Fill{Prompt: prompt, Answer: w.Word})
	}
	return fills
}

// GradeChoice reports whether the selected option is the meaning asked
// for.
func GradeChoice(q Choice, selected string) bool {
	return selected == q.Answer
}

// GradeFill accepts a typed answer, ignoring case and surrounding
// whitespace.
func GradeFill(q Fill, typed string) bool {
	return strings.EqualFold(strings.TrimSpace(typed), q.Answer)
}
