// Package answercheck yazılan bir cevabın kart cevabıyla eşleşip eşleşmediğini gevşek kurallarla kontrol eder.
package answercheck

import (
	"regexp"
	"strings"
)

// WordMatchThreshold kelime bazlı eşleşme için gereken minimum oran.
const WordMatchThreshold = 0.7

var (
	punctuation = regexp.MustCompile(`[^\w\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Normalize küçük harfe çevirir, noktalama işaretlerini siler ve boşlukları tekilleştirir.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = punctuation.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Match sırasıyla tam eşleşme, içerme ve kelime örtüşmesine bakar.
func Match(given, expected string) bool {
	if strings.TrimSpace(given) == "" || strings.TrimSpace(expected) == "" {
		return false
	}

	g := Normalize(given)
	e := Normalize(expected)
	if g == "" || e == "" {
		return false
	}
	if g == e {
		return true
	}
	if strings.Contains(g, e) || strings.Contains(e, g) {
		return true
	}

	givenWords := significantWords(g)
	expectedWords := significantWords(e)
	if len(givenWords) == 0 || len(expectedWords) == 0 {
		return false
	}

	matching := 0
	for _, w := range givenWords {
		for _, ew := range expectedWords {
			if strings.Contains(ew, w) || strings.Contains(w, ew) {
				matching++
				break
			}
		}
	}

	denom := len(givenWords)
	if len(expectedWords) > denom {
		denom = len(expectedWords)
	}
	return float64(matching)/float64(denom) >= WordMatchThreshold
}

// significantWords 2 karakterden uzun kelimeleri döndürür.
func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Split(s, " ") {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}
