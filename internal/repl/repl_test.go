package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ermug/turkindex/internal/index"
)

type fakeIndex struct {
	terms map[string][]uint32
	docs  map[uint32]*index.Document
	total uint32
}

func (f fakeIndex) Lookup(term string) ([]uint32, bool) {
	ids, ok := f.terms[term]
	return ids, ok
}

func (f fakeIndex) TotalDocuments() uint32 {
	return f.total
}

func (f fakeIndex) GetDocument(docID uint32) (*index.Document, bool) {
	doc, ok := f.docs[docID]
	return doc, ok
}

func newFakeIndex() fakeIndex {
	return fakeIndex{
		terms: map[string][]uint32{
			"osmanlı": {1, 2},
			"tarih":   {1},
		},
		docs: map[uint32]*index.Document{
			1: {DocID: 1, URL: "http://a", Title: "Title A"},
			2: {DocID: 2, URL: "http://b", Title: "Title B"},
		},
		total: 2,
	}
}

func TestRunOneRendersMatches(t *testing.T) {
	var out bytes.Buffer
	n := RunOne(&out, newFakeIndex(), "osmanlı", 10)

	assert.Equal(t, 2, n)
	rendered := out.String()
	assert.Contains(t, rendered, "found 2 document(s)")
	assert.Contains(t, rendered, "Title A")
	assert.Contains(t, rendered, "Title B")
}

func TestRunOneNoMatches(t *testing.T) {
	var out bytes.Buffer
	n := RunOne(&out, newFakeIndex(), "nonexistent", 10)

	assert.Equal(t, 0, n)
	assert.Contains(t, out.String(), "found 0 document(s)")
}

func TestRunOnePaginatesResults(t *testing.T) {
	var out bytes.Buffer
	n := RunOne(&out, newFakeIndex(), "osmanlı", 1)

	assert.Equal(t, 2, n)
	assert.Contains(t, out.String(), "... and 1 more")
}

func TestRunOneSkipsUnresolvedDocIDs(t *testing.T) {
	idx := newFakeIndex()
	idx.terms["gap"] = []uint32{1, 999}

	var out bytes.Buffer
	n := RunOne(&out, idx, "gap", 10)

	assert.Equal(t, 2, n)
	assert.Contains(t, out.String(), "Title A")
}

func TestRunLoopProcessesEachLine(t *testing.T) {
	in := strings.NewReader("osmanlı\n\ntarih\n")
	var out bytes.Buffer
	RunLoop(&out, in, newFakeIndex(), 10)

	rendered := out.String()
	assert.Contains(t, rendered, "query: osmanlı")
	assert.Contains(t, rendered, "query: tarih")
	assert.Equal(t, 2, strings.Count(rendered, "query:"))
}
