// Package text implements the analysis pipeline shared by the builder
// and the searcher: tokenisation, case folding, optional stemming, and
// term validation. Every function here operates on raw bytes rather
// than runes because the on-disk index format is byte-based, not
// codepoint-based: a token is a run of token bytes, full stop, with no
// UTF-8 decoding step in between.
package text

// MaxTermLength is the maximum byte length of a token or a term after
// normalisation. Longer runs are truncated, not rejected.
const MaxTermLength = 255

// isTokenByte reports whether b continues (or starts) a token: ASCII
// alphanumeric, underscore, or any byte with the high bit set. High
// bytes are included unconditionally, without UTF-8 validation — a
// stray continuation byte between two letter runs joins them into one
// token, which is the documented, preserved behaviour of this format.
func isTokenByte(b byte) bool {
	if b >= 0x80 {
		return true
	}
	if b >= '0' && b <= '9' {
		return true
	}
	if b >= 'a' && b <= 'z' {
		return true
	}
	if b >= 'A' && b <= 'Z' {
		return true
	}
	return b == '_'
}

// Tokenize splits data into maximal runs of token bytes. Each returned
// slice aliases data and is truncated to MaxTermLength bytes. Callers
// that need to retain a token past the next call must copy it.
func Tokenize(data []byte) [][]byte {
	var tokens [][]byte
	start := -1
	for i := 0; i <= len(data); i++ {
		var tokenByte bool
		if i < len(data) {
			tokenByte = isTokenByte(data[i])
		}
		switch {
		case tokenByte && start < 0:
			start = i
		case !tokenByte && start >= 0:
			end := i
			if end-start > MaxTermLength {
				end = start + MaxTermLength
			}
			tokens = append(tokens, data[start:end])
			start = -1
		}
	}
	return tokens
}
