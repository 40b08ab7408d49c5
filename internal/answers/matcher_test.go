package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "lowercases", token: "Gatsby", expected: "gatsbi"},
		{name: "strips punctuation", token: "don't!", expected: "dont"},
		{name: "stems morphological variants", token: "running", expected: "run"},
		{name: "leaves short words alone", token: "ox", expected: "ox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.token))
		})
	}
}

func TestNormalizeCollapsesVariants(t *testing.T) {
	// "run", "running" and "runs" must all compare equal after normalization
	assert.Equal(t, Normalize("run"), Normalize("running"))
	assert.Equal(t, Normalize("run"), Normalize("runs"))
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("of"))
	assert.False(t, IsStopword("gatsby"))
	assert.False(t, IsStopword("everest"))
}

func TestEvaluateTokenCoverage(t *testing.T) {
	m := New(nil)

	// All required tokens present, order irrelevant, stopword dropped
	result := m.Evaluate([]string{"gatsby", "great"}, "The Great Gatsby")
	assert.True(t, result.Correct)

	// Extra words in the submission are ignored
	result = m.Evaluate([]string{"uh", "the", "great", "gatsby", "maybe"}, "The Great Gatsby")
	assert.True(t, result.Correct)

	// Morphological variants still cover
	result = m.Evaluate([]string{"running", "man"}, "The Running Man")
	assert.True(t, result.Correct)
}

func TestEvaluatePartial(t *testing.T) {
	m := New(nil)

	result := m.Evaluate([]string{"great"}, "The Great Gatsby")
	assert.False(t, result.Correct)
	assert.Equal(t, 1, result.Partial)
}

func TestEvaluateWrong(t *testing.T) {
	m := New(nil)

	result := m.Evaluate([]string{"moby", "dick"}, "The Great Gatsby")
	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.Partial)
}

func TestEvaluateCharacterRatio(t *testing.T) {
	m := New(nil)

	// A near-exact copy passes on character similarity alone
	result := m.Evaluate([]string{"the", "great", "gatsby"}, "the great gatsby")
	assert.True(t, result.Correct)
	assert.GreaterOrEqual(t, result.Ratio, 0.75)
}

func TestEvaluateAlternativeAnswers(t *testing.T) {
	m := New(nil)

	// Either the main answer or the parenthetical alternative is accepted
	result := m.Evaluate([]string{"mount", "everest"}, "Mount Everest (Sagarmatha)")
	assert.True(t, result.Correct)

	result = m.Evaluate([]string{"sagarmatha"}, "Mount Everest (Sagarmatha)")
	assert.True(t, result.Correct)

	result = m.Evaluate([]string{"kilimanjaro"}, "Mount Everest (Sagarmatha)")
	assert.False(t, result.Correct)
}

func TestEvaluateDegenerateAnswer(t *testing.T) {
	m := New(nil)

	// An answer that is all stopwords must not auto-pass the coverage test
	result := m.Evaluate([]string{"zebra"}, "the")
	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.Partial)
}

func TestEvaluateConfigurableThresholds(t *testing.T) {
	strict := New(&Config{SimilarityThreshold: 0.99})
	result := strict.Evaluate([]string{"the", "grate", "gatsby"}, "the great gatsby")
	assert.False(t, result.Correct)

	loose := New(&Config{CoverageThreshold: 0.5})
	result = loose.Evaluate([]string{"gatsby"}, "Great Gatsby")
	assert.True(t, result.Correct)
}
