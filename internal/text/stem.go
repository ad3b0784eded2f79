package text

// caseSuffixes lists the group-3 suffixes in match order; the first
// one that fits is stripped and the search stops.
var caseSuffixes = []string{
	"nda", "nde", "dan", "den", "nin", "nun", "nan", "nen",
	"yi", "yu", "ya", "ye", "da", "de", "ta", "te",
}

// Stem strips at most one suffix from each of three ordered groups and
// reports whether anything was removed. It mutates nothing; the
// result is always a prefix of token, sharing its backing array.
//
// Group 2 removes the last two bytes whenever the word ends in any of
// im/in/um/un. Since all four candidates are two bytes long, the bytes
// removed are always exactly the suffix that matched.
func Stem(token []byte) ([]byte, bool) {
	if len(token) < 5 {
		return token, false
	}

	modified := false
	word := token

	if hasSuffix(word, "lar") || hasSuffix(word, "ler") {
		word = word[:len(word)-3]
		modified = true
	}

	if len(word) >= 4 {
		if hasSuffix(word, "im") || hasSuffix(word, "in") ||
			hasSuffix(word, "um") || hasSuffix(word, "un") {
			word = word[:len(word)-2]
			modified = true
		}
	}

	if len(word) >= 4 {
		for _, suf := range caseSuffixes {
			if hasSuffix(word, suf) {
				word = word[:len(word)-len(suf)]
				modified = true
				break
			}
		}
	}

	return word, modified
}

func hasSuffix(word []byte, suffix string) bool {
	if len(word) < len(suffix) {
		return false
	}
	return string(word[len(word)-len(suffix):]) == suffix
}
