// Package query implements the boolean query language: a lexer, a
// recursive-descent parser/evaluator, and the sorted-posting-list
// algebra it evaluates against.
package query

// Intersect returns the sorted, duplicate-free set of doc IDs present
// in both a and b, via a merge-style two-pointer walk. Linear in
// len(a)+len(b).
func Intersect(a, b []uint32) []uint32 {
	result := make([]uint32, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			result = append(result, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return result
}

// Union returns the sorted, duplicate-free set of doc IDs present in
// either a or b.
func Union(a, b []uint32) []uint32 {
	result := make([]uint32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			result = append(result, a[i])
			i++
			j++
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		default:
			result = append(result, b[j])
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}

// Complement returns every doc ID in 1..=totalDocs that is not present
// in a. a is assumed to be a subset of 1..=totalDocs; if the assigned
// doc IDs have gaps, those gap IDs count as "not present" too and are
// included in the result even though no document ever used them.
func Complement(a []uint32, totalDocs uint32) []uint32 {
	result := make([]uint32, 0, totalDocs)
	j := 0
	for docID := uint32(1); docID <= totalDocs; docID++ {
		if j < len(a) && a[j] == docID {
			j++
			continue
		}
		result = append(result, docID)
	}
	return result
}
