package answers

import (
	"math"
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// segmentPattern splits a canonical answer into top-level parenthesized and
// bare segments, e.g. "Mount Everest (Sagarmatha)" -> two segments.
var segmentPattern = regexp.MustCompile(`\([^()]*\)|[^()]+`)

// Result is the outcome of evaluating a submission against an answer
type Result struct {
	// Correct indicates the submission counts as a full match
	Correct bool

	// Partial is the number of required answer tokens the submission hit.
	// Only meaningful when Correct is false.
	Partial int

	// Ratio is the character-similarity ratio against the canonical answer.
	// Unset when an alternative segment matched.
	Ratio float64
}

// Config holds configuration for the matcher
type Config struct {
	// SimilarityThreshold is the character-similarity ratio at or above
	// which a submission is correct. Defaults to 0.75.
	SimilarityThreshold float64

	// CoverageThreshold is the fraction of required answer tokens a
	// submission must cover to be correct. Defaults to 1.0 (every token).
	CoverageThreshold float64
}

// Matcher decides whether a free-text submission answers a clue
type Matcher struct {
	similarityThreshold float64
	coverageThreshold   float64
}

// New creates a new matcher
func New(cfg *Config) *Matcher {
	similarity := 0.75
	coverage := 1.0

	if cfg != nil && cfg.SimilarityThreshold > 0 {
		similarity = cfg.SimilarityThreshold
	}

	if cfg != nil && cfg.CoverageThreshold > 0 {
		coverage = cfg.CoverageThreshold
	}

	return &Matcher{
		similarityThreshold: similarity,
		coverageThreshold:   coverage,
	}
}

// Evaluate checks a tokenized submission against a canonical answer.
//
// A submission is correct when its joined characters are similar enough to
// the canonical answer, or when its normalized tokens cover every required
// (non-stopword) token of the answer, order and extra words ignored.
// Answers written as "Answer (alternate phrasing)" accept either segment
// alone.
func (m *Matcher) Evaluate(submitted []string, answer string) *Result {
	segments := segmentPattern.FindAllString(answer, -1)

	if len(segments) == 2 {
		for _, segment := range segments {
			segment = strings.NewReplacer("(", "", ")", "").Replace(segment)

			if m.Evaluate(submitted, segment).Correct {
				return &Result{Correct: true}
			}
		}
	}

	result := &Result{}

	joined := strings.Join(submitted, "")
	matcher := difflib.NewMatcher(strings.Split(joined, ""), strings.Split(answer, ""))
	result.Ratio = matcher.Ratio()

	if result.Ratio >= m.similarityThreshold {
		result.Correct = true
	}

	submittedSet := make(map[string]struct{}, len(submitted))
	for _, token := range submitted {
		submittedSet[Normalize(token)] = struct{}{}
	}

	answerSet := make(map[string]struct{})
	for _, word := range strings.Fields(answer) {
		normalized := Normalize(word)
		if !IsStopword(normalized) {
			answerSet[normalized] = struct{}{}
		}
	}

	matched := 0
	for token := range answerSet {
		if _, ok := submittedSet[token]; ok {
			matched++
		}
	}

	result.Partial = matched

	// An answer made entirely of stopwords has nothing to cover; only the
	// ratio test can pass it.
	if len(answerSet) > 0 && matched >= m.requiredTokens(len(answerSet)) {
		result.Correct = true
	}

	return result
}

func (m *Matcher) requiredTokens(total int) int {
	required := int(math.Ceil(m.coverageThreshold * float64(total)))
	if required < 1 {
		required = 1
	}
	if required > total {
		required = total
	}
	return required
}
