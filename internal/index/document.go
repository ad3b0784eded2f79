package index

// Document is one indexed record's metadata. It is created once on
// ingest and only TokenCount mutates afterward, incrementing per
// accepted term occurrence attributed to the document.
type Document struct {
	DocID         uint32
	URL           string
	Title         string
	ContentLength uint32
	TokenCount    uint32
	UniqueTerms   uint32 // always 0; reserved for future use
}

// Table is the ordered sequence of documents in ingest order, exactly
// as the builder writes them to the forward index.
type Table struct {
	docs []Document
}

// Add appends a new document and returns its index within the table.
func (t *Table) Add(doc Document) int {
	t.docs = append(t.docs, doc)
	return len(t.docs) - 1
}

// IncrementTokenCount bumps TokenCount for the document at idx.
func (t *Table) IncrementTokenCount(idx int) {
	t.docs[idx].TokenCount++
}

// Len returns the number of documents ingested so far.
func (t *Table) Len() int {
	return len(t.docs)
}

// Documents returns the underlying slice in ingest order. Callers
// must not retain it past the next Add.
func (t *Table) Documents() []Document {
	return t.docs
}
