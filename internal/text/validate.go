package text

// IsValidTerm reports whether term is acceptable for indexing: at
// least 2 bytes long and containing at least one ASCII letter. The
// letter check is ASCII-only, so a token made up entirely of non-ASCII
// letters (e.g. "çığ") is rejected even though it reads as a real
// Turkish word.
func IsValidTerm(term []byte) bool {
	if len(term) < 2 {
		return false
	}
	for _, c := range term {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}
