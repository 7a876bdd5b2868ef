package game

import (
	"errors"
	"strconv"
	"testing"

	"fizzquiz/internal/models"
)

var fizzBuzzRules = []models.GameRule{
	{ID: 1, GameID: 1, Divisor: 3, Word: "Fizz"},
	{ID: 2, GameID: 1, Divisor: 5, Word: "Buzz"},
}

func TestIsAnswerCorrect(t *testing.T) {
	tests := []struct {
		name    string
		number  int
		answer  string
		rules   []models.GameRule
		correct bool
	}{
		{
			name:    "no match accepts the decimal string",
			number:  7,
			answer:  "7",
			rules:   fizzBuzzRules,
			correct: true,
		},
		{
			name:    "no match accepts zero-padded numeric form",
			number:  7,
			answer:  "007",
			rules:   fizzBuzzRules,
			correct: true,
		},
		{
			name:    "no match accepts surrounding whitespace",
			number:  7,
			answer:  " 7 ",
			rules:   fizzBuzzRules,
			correct: true,
		},
		{
			name:    "no match rejects a word answer",
			number:  7,
			answer:  "Fizz",
			rules:   fizzBuzzRules,
			correct: false,
		},
		{
			name:    "no match rejects a different number",
			number:  7,
			answer:  "8",
			rules:   fizzBuzzRules,
			correct: false,
		},
		{
			name:    "no rules at all falls back to the number",
			number:  15,
			answer:  "15",
			rules:   nil,
			correct: true,
		},
		{
			name:    "single match accepts the word",
			number:  9,
			answer:  "Fizz",
			rules:   fizzBuzzRules,
			correct: true,
		},
		{
			name:    "single match is case-insensitive",
			number:  9,
			answer:  "fIzZ",
			rules:   fizzBuzzRules,
			correct: true,
		},
		{
			name:    "single match rejects the numeric string",
			number:  9,
			answer:  "9",
			rules:   fizzBuzzRules,
			correct: false,
		},
		{
			name:    "double match accepts rule order",
			number:  15,
			answer:  "FizzBuzz",
			rules:   fizzBuzzRules,
			correct: true,
		},
		{
			name:    "double match accepts reversed order",
			number:  15,
			answer:  "buzzfizz",
			rules:   fizzBuzzRules,
			correct: true,
		},
		{
			name:    "double match rejects the numeric string",
			number:  15,
			answer:  "15",
			rules:   fizzBuzzRules,
			correct: false,
		},
		{
			name:    "double match rejects a separator",
			number:  15,
			answer:  "Fizz Buzz",
			rules:   fizzBuzzRules,
			correct: false,
		},
		{
			name:    "double match rejects a single word",
			number:  15,
			answer:  "Fizz",
			rules:   fizzBuzzRules,
			correct: false,
		},
		{
			name:   "redundant divisors both contribute",
			number: 18,
			answer: "FizzPop",
			rules: []models.GameRule{
				{Divisor: 3, Word: "Fizz"},
				{Divisor: 9, Word: "Pop"},
			},
			correct: true,
		},
		{
			name:   "duplicate words collapse to one concatenation",
			number: 6,
			answer: "FizzFizz",
			rules: []models.GameRule{
				{Divisor: 2, Word: "Fizz"},
				{Divisor: 3, Word: "Fizz"},
			},
			correct: false,
		},
		{
			name:   "duplicate words still require the single word",
			number: 6,
			answer: "Fizz",
			rules: []models.GameRule{
				{Divisor: 2, Word: "Fizz"},
				{Divisor: 3, Word: "Fizz"},
			},
			correct: true,
		},
		{
			name:   "zero divisor never matches",
			number: 4,
			answer: "4",
			rules: []models.GameRule{
				{Divisor: 0, Word: "Boom"},
			},
			correct: true,
		},
		{
			name:    "zero is divisible by everything",
			number:  0,
			answer:  "BuzzFizz",
			rules:   fizzBuzzRules,
			correct: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAnswerCorrect(tt.number, tt.answer, tt.rules)
			if err != nil {
				t.Fatalf("IsAnswerCorrect() error = %v", err)
			}
			if got != tt.correct {
				t.Errorf("IsAnswerCorrect(%d, %q) = %v, want %v", tt.number, tt.answer, got, tt.correct)
			}
		})
	}
}

func TestIsAnswerCorrectNegativeNumber(t *testing.T) {
	_, err := IsAnswerCorrect(-1, "anything", fizzBuzzRules)
	if !errors.Is(err, ErrNegativeNumber) {
		t.Fatalf("expected ErrNegativeNumber, got %v", err)
	}
}

func TestIsAnswerCorrectTooManyMatches(t *testing.T) {
	// Nine distinct words all matching the number exceeds the permutation cap
	rules := make([]models.GameRule, 9)
	for i := range rules {
		rules[i] = models.GameRule{Divisor: 1, Word: "word" + strconv.Itoa(i)}
	}

	_, err := IsAnswerCorrect(10, "whatever", rules)
	if !errors.Is(err, ErrTooManyRules) {
		t.Fatalf("expected ErrTooManyRules, got %v", err)
	}
}

func TestIsAnswerCorrectThreeWordPermutations(t *testing.T) {
	rules := []models.GameRule{
		{Divisor: 2, Word: "A"},
		{Divisor: 3, Word: "B"},
		{Divisor: 5, Word: "C"},
	}

	accepted := []string{"ABC", "ACB", "BAC", "BCA", "CAB", "CBA", "abc", "cba"}
	for _, answer := range accepted {
		ok, err := IsAnswerCorrect(30, answer, rules)
		if err != nil {
			t.Fatalf("IsAnswerCorrect() error = %v", err)
		}
		if !ok {
			t.Errorf("expected %q to be accepted for 30", answer)
		}
	}

	rejected := []string{"AB", "ABCA", "30", ""}
	for _, answer := range rejected {
		ok, err := IsAnswerCorrect(30, answer, rules)
		if err != nil {
			t.Fatalf("IsAnswerCorrect() error = %v", err)
		}
		if ok {
			t.Errorf("expected %q to be rejected for 30", answer)
		}
	}
}

func TestMatchedWordsPreservesOrderAndDuplicates(t *testing.T) {
	rules := []models.GameRule{
		{Divisor: 5, Word: "Buzz"},
		{Divisor: 3, Word: "Fizz"},
		{Divisor: 15, Word: "Bang"},
	}

	got := MatchedWords(15, rules)
	want := []string{"Buzz", "Fizz", "Bang"}
	if len(got) != len(want) {
		t.Fatalf("MatchedWords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MatchedWords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewRandSourceBounds(t *testing.T) {
	src := NewRandSource()
	for i := 0; i < 1000; i++ {
		n := src.IntN(21)
		if n < 0 || n > 20 {
			t.Fatalf("IntN(21) = %d, out of range", n)
		}
	}
}
