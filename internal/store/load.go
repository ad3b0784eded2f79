package store

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/ermug/turkindex/internal/index"
	"go.uber.org/zap"
)

// Term is a loaded term entry: its normalised form and its posting
// list, in the exact order read from .inverted (already lexicographic,
// since the builder sorted it before writing).
type Term struct {
	Term   string
	DocIDs []uint32
}

// Loader holds everything read from the three index files. It is the
// searcher-side counterpart of index.Builder: once loaded, both the
// document table and the term array are read-only.
type Loader struct {
	Meta      Metadata
	Documents []index.Document
	Terms     []Term

	log *zap.Logger
}

// LoadOptions configures the loader. Logger's configured level decides
// whether FindTerm's binary-search trace is emitted; the caller (the
// search binary) enables debug level when DEBUG_SEARCH is set, so the
// loader itself never reads the environment directly.
type LoadOptions struct {
	Logger *zap.Logger
}

// Load reads <base>.meta, <base>.forward and <base>.inverted and
// returns a ready-to-query Loader. Every file handle opened is closed
// on every exit path, including error paths.
func Load(base string, opts LoadOptions) (*Loader, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loader{log: logger}

	meta, err := loadMeta(base + ".meta")
	if err != nil {
		return nil, err
	}
	l.Meta = meta

	docs, err := loadForward(base + ".forward")
	if err != nil {
		return nil, err
	}
	l.Documents = docs

	terms, err := loadInverted(base + ".inverted")
	if err != nil {
		return nil, err
	}
	l.Terms = terms

	return l, nil
}

func loadMeta(path string) (Metadata, error) {
	var meta Metadata

	f, err := os.Open(path)
	if err != nil {
		return meta, &ErrIO{Path: path, Err: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var magic uint32
	if err := readField(r, path, &magic); err != nil {
		return meta, err
	}
	if magic != Magic {
		return meta, &ErrInvalidFormat{Path: path, Msg: "magic mismatch"}
	}

	fields := []any{
		&meta.Version,
		&meta.Flags,
		&meta.TotalDocuments,
		&meta.TotalUniqueTerms,
		&meta.Timestamp,
		&meta.ForwardOffset,
		&meta.ForwardSize,
		&meta.InvertedOffset,
		&meta.InvertedSize,
	}
	for _, field := range fields {
		if err := readField(r, path, field); err != nil {
			return meta, err
		}
	}

	reserved := make([]byte, reservedMetaBytes)
	if _, err := io.ReadFull(r, reserved); err != nil {
		return meta, &ErrTruncated{Path: path, Want: reservedMetaBytes, Got: 0}
	}

	return meta, nil
}

func loadForward(path string) ([]index.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrIO{Path: path, Err: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var numDocs, reserved uint32
	if err := readField(r, path, &numDocs); err != nil {
		return nil, err
	}
	if err := readField(r, path, &reserved); err != nil {
		return nil, err
	}

	docs := make([]index.Document, numDocs)
	for i := range docs {
		var urlLen, titleLen uint16
		if err := readField(r, path, &docs[i].DocID); err != nil {
			return nil, err
		}
		if err := readField(r, path, &urlLen); err != nil {
			return nil, err
		}
		url := make([]byte, urlLen)
		if _, err := io.ReadFull(r, url); err != nil {
			return nil, &ErrTruncated{Path: path, Want: int(urlLen), Got: 0}
		}
		docs[i].URL = string(url)

		if err := readField(r, path, &titleLen); err != nil {
			return nil, err
		}
		title := make([]byte, titleLen)
		if _, err := io.ReadFull(r, title); err != nil {
			return nil, &ErrTruncated{Path: path, Want: int(titleLen), Got: 0}
		}
		docs[i].Title = string(title)

		if err := readField(r, path, &docs[i].ContentLength); err != nil {
			return nil, err
		}
		if err := readField(r, path, &docs[i].TokenCount); err != nil {
			return nil, err
		}
		if err := readField(r, path, &docs[i].UniqueTerms); err != nil {
			return nil, err
		}
	}

	return docs, nil
}

func loadInverted(path string) ([]Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrIO{Path: path, Err: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var numTerms, reserved uint32
	if err := readField(r, path, &numTerms); err != nil {
		return nil, err
	}
	if err := readField(r, path, &reserved); err != nil {
		return nil, err
	}

	terms := make([]Term, numTerms)
	for i := range terms {
		var termLen uint16
		if err := readField(r, path, &termLen); err != nil {
			return nil, err
		}
		termBytes := make([]byte, termLen)
		if _, err := io.ReadFull(r, termBytes); err != nil {
			return nil, &ErrTruncated{Path: path, Want: int(termLen), Got: 0}
		}
		terms[i].Term = string(termBytes)

		var df uint32
		if err := readField(r, path, &df); err != nil {
			return nil, err
		}
		ids := make([]uint32, df)
		for j := range ids {
			if err := readField(r, path, &ids[j]); err != nil {
				return nil, err
			}
		}
		terms[i].DocIDs = ids
	}

	return terms, nil
}

func readField(r io.Reader, path string, field any) error {
	if err := binary.Read(r, binary.LittleEndian, field); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return &ErrTruncated{Path: path, Want: 1, Got: 0}
		}
		return &ErrIO{Path: path, Err: err}
	}
	return nil
}

// FindTerm performs a binary search over the loaded, lexicographically
// sorted term array. The lookup key must already be case-folded the
// way the caller wants; FindTerm does no normalisation of its own.
func (l *Loader) FindTerm(term string) (*Term, bool) {
	i := sort.Search(len(l.Terms), func(i int) bool {
		return l.Terms[i].Term >= term
	})
	if l.log.Core().Enabled(zap.DebugLevel) {
		l.log.Debug("term binary search",
			zap.String("term", term),
			zap.Int("total_terms", len(l.Terms)),
			zap.Int("landed_index", i),
		)
	}
	if i < len(l.Terms) && l.Terms[i].Term == term {
		return &l.Terms[i], true
	}
	return nil, false
}

// TotalDocuments returns the document count recorded in metadata,
// satisfying query.TermSource for the posting-algebra complement
// operator.
func (l *Loader) TotalDocuments() uint32 {
	return l.Meta.TotalDocuments
}

// Lookup satisfies query.TermSource: it looks up term (already
// case-folded by the caller) and returns its posting list.
func (l *Loader) Lookup(term string) ([]uint32, bool) {
	t, ok := l.FindTerm(term)
	if !ok {
		return nil, false
	}
	return t.DocIDs, true
}

// GetDocument performs a linear scan of the document table and
// returns the matching entry. A linear scan is fine here: lookup is
// only invoked to format the handful of hits a query actually
// displays, never on a hot path over the whole table.
func (l *Loader) GetDocument(docID uint32) (*index.Document, bool) {
	for i := range l.Documents {
		if l.Documents[i].DocID == docID {
			return &l.Documents[i], true
		}
	}
	return nil, false
}
