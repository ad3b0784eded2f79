package index

import "sort"

// TermEntry pairs a normalised term with its posting list.
type TermEntry struct {
	Term   string
	DocIDs []uint32
}

// PostingMap is the build-time term -> ordered doc-ID-set map. The
// initial bucket hint only sizes the backing Go map; growth beyond it
// is handled by the runtime map implementation.
type PostingMap struct {
	entries map[string][]uint32
}

// DefaultBucketHint mirrors the ~10^5 initial bucket count the source
// indexer requests from its hash map constructor.
const DefaultBucketHint = 100000

// NewPostingMap creates an empty posting map sized for bucketHint
// distinct terms.
func NewPostingMap(bucketHint int) *PostingMap {
	return &PostingMap{entries: make(map[string][]uint32, bucketHint)}
}

// Append records that term occurs in docID. It is a no-op if docID is
// already present in term's posting list; the check is a full linear
// scan of the current list because the same term can recur many times
// within one document before its list is deduplicated.
func (pm *PostingMap) Append(term string, docID uint32) {
	list := pm.entries[term]
	for _, existing := range list {
		if existing == docID {
			return
		}
	}
	pm.entries[term] = append(list, docID)
}

// Len returns the number of distinct terms recorded so far.
func (pm *PostingMap) Len() int {
	return len(pm.entries)
}

// SortedEntries sorts every posting list ascending (ingest already
// guarantees no duplicates) and returns all terms ordered by
// lexicographic byte comparison of the term string, ready for
// serialisation.
func (pm *PostingMap) SortedEntries() []TermEntry {
	out := make([]TermEntry, 0, len(pm.entries))
	for term, ids := range pm.entries {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out = append(out, TermEntry{Term: term, DocIDs: ids})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out
}
