package assess

import (
	"regexp"
	"strings"
)

// CriticalResult is the outcome of the critical-thinking detector.
type CriticalResult struct {
	Score   float64
	Signals []string
}

// Signal caps. Each family of markers contributes a bounded increment so
// no single device can be stacked for credit.
const (
	exampleIncrement     = 0.20
	exampleCap           = 0.40
	connectiveIncrement  = 0.10
	connectiveCap        = 0.30
	enumerationIncrement = 0.15
	enumerationCap       = 0.20
	cooccurIncrement     = 0.15
	cooccurCap           = 0.45
)

var exampleMarkers = []string{
	"for example", "for instance", "such as", "e.g", "to illustrate",
	"as an example", "consider the case",
}

var connectives = []string{
	"because", "therefore", "thus", "hence", "since", "consequently",
	"however", "although", "whereas", "unlike", "instead", "otherwise",
	"moreover", "furthermore", "nevertheless",
}

var enumerationWords = []string{
	"first", "second", "third", "fourth", "finally", "lastly", "next",
}

var bulletPattern = regexp.MustCompile(`(?m)^\s*(\d+[.)]|[-*•])\s+`)

// ScoreCriticalThinking scans for structural markers of analysis:
// examples, causal and contrastive connectives, enumerated structure, and
// sentences that relate two or more key concepts. It works on the
// pre-stop-word token stream because the connective words it looks for
// are exactly the ones the normalizer would otherwise drop.
func ScoreCriticalThinking(n Normalized, concepts ConceptSet) CriticalResult {
	if n.IsEmpty() {
		return CriticalResult{}
	}

	result := CriticalResult{}
	lower := strings.ToLower(n.Raw)

	var examples float64
	for _, marker := range exampleMarkers {
		if strings.Contains(lower, marker) {
			examples += exampleIncrement
			result.Signals = append(result.Signals, "example:"+marker)
		}
	}
	result.Score += capped(examples, exampleCap)

	wordSet := make(map[string]bool, len(n.Words))
	for _, w := range n.Words {
		wordSet[w] = true
	}
	var reasoning float64
	for _, connective := range connectives {
		if wordSet[connective] {
			reasoning += connectiveIncrement
			result.Signals = append(result.Signals, "connective:"+connective)
		}
	}
	result.Score += capped(reasoning, connectiveCap)

	var enumeration float64
	if bulletPattern.MatchString(n.Raw) {
		enumeration += enumerationIncrement
		result.Signals = append(result.Signals, "enumeration:bullets")
	}
	ordinals := 0
	for _, w := range enumerationWords {
		if wordSet[w] {
			ordinals++
		}
	}
	if ordinals >= 2 {
		enumeration += enumerationIncrement
		result.Signals = append(result.Signals, "enumeration:ordinals")
	}
	result.Score += capped(enumeration, enumerationCap)

	var relational float64
	for _, sentence := range n.Sentences {
		if distinctConceptsIn(sentence, concepts) >= 2 {
			relational += cooccurIncrement
		}
	}
	if relational > 0 {
		result.Signals = append(result.Signals, "relational:co-occurrence")
	}
	result.Score += capped(relational, cooccurCap)

	if result.Score > 1 {
		result.Score = 1
	}
	return result
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

func distinctConceptsIn(sentence Sentence, concepts ConceptSet) int {
	canonical := CanonicalSet(sentence.Tokens)
	seen := make(map[string]bool)
	for _, concept := range concepts.Concepts {
		if concept.Bigram {
			continue
		}
		term := Canonical(concept.Term)
		if canonical[term] {
			seen[term] = true
		}
	}
	return len(seen)
}
