package index

import "github.com/ermug/turkindex/internal/text"

// Builder accumulates documents into a posting map and a document
// table. It owns every term string and posting list until store.Save
// writes them to disk.
type Builder struct {
	Stemming bool

	postings *PostingMap
	table    Table
}

// NewBuilder creates a Builder with a posting map sized for
// bucketHint distinct terms. A bucketHint <= 0 falls back to
// DefaultBucketHint.
func NewBuilder(stemming bool, bucketHint int) *Builder {
	if bucketHint <= 0 {
		bucketHint = DefaultBucketHint
	}
	return &Builder{
		Stemming: stemming,
		postings: NewPostingMap(bucketHint),
	}
}

// AddDocument tokenises content and title, indexes every accepted term
// against docID, and appends a new Document to the table. Content is
// tokenised before title, matching the ingest order the on-disk
// token_count depends on.
func (b *Builder) AddDocument(docID uint32, url, title, content string) {
	idx := b.table.Add(Document{
		DocID:         docID,
		URL:           url,
		Title:         title,
		ContentLength: uint32(len(content)),
	})

	b.indexText(idx, docID, []byte(content))
	b.indexText(idx, docID, []byte(title))
}

func (b *Builder) indexText(idx int, docID uint32, data []byte) {
	for _, raw := range text.Tokenize(data) {
		term := text.FoldCase(raw)
		if b.Stemming {
			term, _ = text.Stem(term)
		}
		if !text.IsValidTerm(term) {
			continue
		}
		b.postings.Append(string(term), docID)
		b.table.IncrementTokenCount(idx)
	}
}

// Documents returns the document table in ingest order.
func (b *Builder) Documents() []Document {
	return b.table.Documents()
}

// DocumentCount returns the number of documents ingested so far.
func (b *Builder) DocumentCount() int {
	return b.table.Len()
}

// SortedTerms sorts and returns every term entry, ready for
// serialisation (see store.Save).
func (b *Builder) SortedTerms() []TermEntry {
	return b.postings.SortedEntries()
}

// TermCount returns the number of distinct terms indexed so far.
func (b *Builder) TermCount() int {
	return b.postings.Len()
}
