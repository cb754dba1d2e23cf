package assess

// synonymGroups lists alternate forms that should count as the same
// concept. The first entry of each group is the representative. Entries
// are written as natural words; the lookup table is built on their stems
// so either surface form matches.
//
// The table is a curated heuristic, biased toward technical/CS vocabulary
// plus common academic alternates. It only needs to be good enough to
// tolerate paraphrase, not to be a thesaurus.
var synonymGroups = [][]string{
	{"inherit", "extends", "derives", "subclass", "superclass"},
	{"method", "function", "operation", "behavior"},
	{"attribute", "field", "property", "member"},
	{"object", "instance"},
	{"class", "type", "blueprint"},
	{"encapsulation", "hiding"},
	{"polymorphism", "overriding", "overloading"},
	{"abstraction", "abstract"},
	{"interface", "contract"},
	{"error", "exception", "fault", "failure"},
	{"data", "information"},
	{"program", "application", "software"},
	{"create", "make", "build", "construct", "instantiate"},
	{"modify", "change", "alter", "update"},
	{"use", "utilize", "employ", "apply"},
	{"show", "display", "present", "demonstrate", "illustrate"},
	{"important", "key", "crucial", "essential", "significant"},
	{"big", "large", "huge"},
	{"small", "tiny", "little"},
	{"fast", "quick", "rapid"},
	{"begin", "start", "commence"},
	{"end", "finish", "conclude", "terminate"},
	{"part", "component", "element", "portion"},
	{"reduce", "decrease", "lower", "minimize"},
	{"increase", "raise", "grow", "maximize"},
	{"allow", "enable", "permit", "let"},
	{"store", "save", "persist", "keep"},
	{"retrieve", "fetch", "get", "access"},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]string {
	index := make(map[string]string)
	for _, group := range synonymGroups {
		representative := Stem(group[0])
		for _, word := range group {
			index[Stem(word)] = representative
		}
	}
	return index
}

// Canonical maps a stemmed term to its synonym-group representative, or
// returns the term unchanged when it belongs to no group.
func Canonical(stem string) string {
	if representative, ok := synonymIndex[stem]; ok {
		return representative
	}
	return stem
}

// CanonicalSet converts a token list into the set of canonical forms.
func CanonicalSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[Canonical(token)] = true
	}
	return set
}
