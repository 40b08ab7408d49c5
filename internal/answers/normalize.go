package answers

import (
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball"
)

// asciiPunctuation matches Python's string.punctuation, which the original
// token pipeline stripped before stemming.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize turns a raw token into its comparable form: lower case, no
// punctuation, stemmed. Deterministic and side-effect free.
func Normalize(token string) string {
	token = strings.ToLower(token)

	token = strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, token)

	stemmed, err := snowball.Stem(token, "english", true)
	if err != nil {
		// Non-English input falls back to the cleaned token
		return token
	}

	return stemmed
}

// IsStopword reports whether the token carries no answer information on its
// own ("the", "a", "of", ...).
func IsStopword(token string) bool {
	return strings.TrimSpace(stopwords.CleanString(token, "en", false)) == ""
}
