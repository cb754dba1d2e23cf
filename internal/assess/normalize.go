package assess

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)

// Sentence is one sentence of the input with both token views: Words keeps
// stop words (structural analysis needs them), Tokens is the stemmed
// content-only form.
type Sentence struct {
	Raw        string
	Words      []string
	Tokens     []string
	Terminated bool
}

// Normalized is the shared intermediate every scorer consumes. A zero
// value (no sentences, no tokens) represents empty or whitespace-only
// input and is valid; it is the trigger for "unanswered" handling.
type Normalized struct {
	Raw       string
	Sentences []Sentence
	Words     []string
	Tokens    []string
}

// IsEmpty reports whether the input contained no words at all.
func (n Normalized) IsEmpty() bool {
	return len(n.Words) == 0
}

// Normalize tokenizes and normalizes raw text: sentence splitting,
// case-folding, punctuation stripping, stop-word removal and light
// stemming. Empty input yields an empty Normalized, never an error.
func Normalize(text string) Normalized {
	n := Normalized{Raw: text}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return n
	}

	for _, rawSentence := range splitSentences(trimmed) {
		sentence := Sentence{Raw: rawSentence.text, Terminated: rawSentence.terminated}
		for _, match := range wordPattern.FindAllString(rawSentence.text, -1) {
			word := strings.Trim(strings.ToLower(match), "'")
			if word == "" {
				continue
			}
			sentence.Words = append(sentence.Words, word)
			if IsStopWord(word) || len(word) < 2 {
				continue
			}
			sentence.Tokens = append(sentence.Tokens, Stem(word))
		}
		if len(sentence.Words) == 0 {
			continue
		}
		n.Sentences = append(n.Sentences, sentence)
		n.Words = append(n.Words, sentence.Words...)
		n.Tokens = append(n.Tokens, sentence.Tokens...)
	}
	return n
}

type rawSentence struct {
	text       string
	terminated bool
}

// splitSentences splits on sentence terminators, remembering whether each
// piece actually ended with one (the writing analyzer checks this).
func splitSentences(text string) []rawSentence {
	var sentences []rawSentence
	var current strings.Builder

	flush := func(terminated bool) {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s != "" {
			sentences = append(sentences, rawSentence{text: s, terminated: terminated})
		}
	}

	for _, r := range text {
		switch r {
		case '.', '!', '?':
			flush(true)
		case '\n':
			flush(false)
		default:
			current.WriteRune(r)
		}
	}
	flush(false)
	return sentences
}

// Stem reduces a word to a rough root form: plural endings and the most
// common verbal suffixes. Deliberately conservative; collapsing too
// aggressively creates false concept matches.
func Stem(word string) string {
	if len(word) <= 3 {
		return word
	}
	if strings.HasSuffix(word, "'s") {
		word = word[:len(word)-2]
	}
	switch {
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-4] + "ss"
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"):
		// Sibilant plurals take "-es": boxes/box, matches/match. Plain
		// "-s" stripping would leave a dangling e on these.
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "us") && !strings.HasSuffix(word, "is"):
		word = word[:len(word)-1]
	}
	switch {
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		word = word[:len(word)-3]
	case strings.HasSuffix(word, "ed") && len(word) > 5:
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ly") && len(word) > 5:
		word = word[:len(word)-2]
	}
	return word
}

// Bigrams returns adjacent content-token pairs of a sentence, joined by a
// single space.
func (s Sentence) Bigrams() []string {
	if len(s.Tokens) < 2 {
		return nil
	}
	bigrams := make([]string, 0, len(s.Tokens)-1)
	for i := 0; i < len(s.Tokens)-1; i++ {
		bigrams = append(bigrams, s.Tokens[i]+" "+s.Tokens[i+1])
	}
	return bigrams
}
