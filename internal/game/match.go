// Package game implements the rule-matching answer validation at the heart
// of FizzQuiz. It is pure and stateless: services hand it a question number,
// a candidate answer, and the game's rules, and it decides correctness.
package game

import (
	"errors"
	"strconv"
	"strings"

	"fizzquiz/internal/models"
)

// maxMatchedWords bounds permutation enumeration. Matching n distinct words
// produces n! accepted concatenations, so validation refuses rule sets that
// would match more than this many distinct words (8! = 40320 permutations).
const maxMatchedWords = 8

var (
	// ErrNegativeNumber is returned when a negative question number is
	// passed in. The generator never produces one; this guards misuse.
	ErrNegativeNumber = errors.New("negative numbers are not allowed")

	// ErrTooManyRules is returned when more than maxMatchedWords distinct
	// words match the number and the accepted set cannot be enumerated.
	ErrTooManyRules = errors.New("too many matching rules to validate answer")
)

// IsAnswerCorrect reports whether answer is an accepted answer for number
// under the given rules.
//
// Rules whose divisor evenly divides number contribute their word, in rule
// order, duplicates included. If no rule matches, the only accepted answer
// is the decimal representation of number (any string strconv parses to the
// same value, so "007" is accepted for 7). If rules match, the accepted
// answers are the concatenations of every permutation of the matched words,
// compared case-insensitively, and numeric answers are never accepted.
func IsAnswerCorrect(number int, answer string, rules []models.GameRule) (bool, error) {
	if number < 0 {
		return false, ErrNegativeNumber
	}

	matched := MatchedWords(number, rules)
	if len(matched) == 0 {
		parsed, err := strconv.Atoi(strings.TrimSpace(answer))
		return err == nil && parsed == number, nil
	}

	accepted, err := acceptedAnswers(matched)
	if err != nil {
		return false, err
	}

	_, ok := accepted[strings.ToLower(answer)]
	return ok, nil
}

// MatchedWords returns the words of every rule whose divisor evenly divides
// number, preserving rule order and retaining duplicates. Non-positive
// divisors never match; rule validation rejects them at write time and this
// keeps corrupt rows from causing a division by zero.
func MatchedWords(number int, rules []models.GameRule) []string {
	var matched []string
	for _, r := range rules {
		if r.Divisor > 0 && number%r.Divisor == 0 {
			matched = append(matched, r.Word)
		}
	}
	return matched
}

// acceptedAnswers builds the lowercase set of permutation concatenations for
// the matched words. Identical words (case-insensitively) collapse to
// identical concatenations no matter where they sit in a permutation, so
// they are de-duplicated first; that keeps the accepted set unchanged while
// shrinking the factorial.
func acceptedAnswers(matched []string) (map[string]struct{}, error) {
	seen := make(map[string]struct{}, len(matched))
	words := make([]string, 0, len(matched))
	for _, w := range matched {
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, key)
	}

	if len(words) > maxMatchedWords {
		return nil, ErrTooManyRules
	}

	accepted := make(map[string]struct{})
	forEachPermutation(words, func(p []string) {
		accepted[strings.Join(p, "")] = struct{}{}
	})
	return accepted, nil
}

// forEachPermutation invokes fn with every permutation of words, using
// Heap's algorithm. The slice is permuted in place and must not be retained
// by fn beyond the call.
func forEachPermutation(words []string, fn func([]string)) {
	if len(words) == 0 {
		return
	}

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			fn(words)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				words[i], words[k-1] = words[k-1], words[i]
			} else {
				words[0], words[k-1] = words[k-1], words[0]
			}
		}
	}
	generate(len(words))
}
