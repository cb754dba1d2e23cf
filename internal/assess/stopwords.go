package assess

import "strings"

// stopWords is the fixed stop-word list used by the normalizer. Connective
// words (because, however, ...) are intentionally present here: they carry
// no content weight, and the critical-thinking detector works on the
// pre-stop-word token stream where they survive.
var stopWords = buildStopWords(`
a about above after again against all am an and any are as at be because
been before being below between both but by can cannot could did do does
doing down during each few for from further had has have having he her
here hers herself him himself his how i if in into is it its itself just
me more most my myself no nor not now of off on once only or other our
ours ourselves out over own same she should so some such than that the
their theirs them themselves then there these they this those through to
too under until up very was we were what when where which while who whom
why will with would you your yours yourself yourselves
also may might must shall am isnt arent wasnt werent dont doesnt didnt
its thats
`)

func buildStopWords(raw string) map[string]bool {
	words := strings.Fields(raw)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// IsStopWord reports whether the (lowercase) word is on the stop-word list.
func IsStopWord(word string) bool {
	return stopWords[word]
}
