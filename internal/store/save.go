package store

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/ermug/turkindex/internal/index"
)

// Options controls flags recorded in the metadata record.
type Options struct {
	Stemmed bool
}

// Save writes <base>.meta, <base>.forward and <base>.inverted for the
// given documents (in ingest order) and terms (already sorted
// lexicographically, e.g. by index.Builder.SortedTerms). Every file
// handle is closed on every exit path, including error paths.
func Save(base string, opts Options, docs []index.Document, terms []index.TermEntry) error {
	var flags uint16
	if opts.Stemmed {
		flags |= FlagStemmed
	}

	meta := Metadata{
		Version:          Version,
		Flags:            flags,
		TotalDocuments:   uint32(len(docs)),
		TotalUniqueTerms: uint32(len(terms)),
		Timestamp:        uint64(time.Now().Unix()),
	}

	if err := saveMeta(base+".meta", meta); err != nil {
		return err
	}
	if err := saveForward(base+".forward", docs); err != nil {
		return err
	}
	if err := saveInverted(base+".inverted", terms); err != nil {
		return err
	}
	return nil
}

func saveMeta(path string, meta Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fields := []any{
		Magic,
		meta.Version,
		meta.Flags,
		meta.TotalDocuments,
		meta.TotalUniqueTerms,
		meta.Timestamp,
		meta.ForwardOffset,
		meta.ForwardSize,
		meta.InvertedOffset,
		meta.InvertedSize,
	}
	for _, field := range fields {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
	}
	if _, err := w.Write(make([]byte, reservedMetaBytes)); err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	return nil
}

func saveForward(path string, docs []index.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	numDocs := uint32(len(docs))
	if err := binary.Write(w, binary.LittleEndian, numDocs); err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	if err := binary.Write(w, binary.LittleEndian, numDocs); err != nil {
		return &ErrIO{Path: path, Err: err}
	}

	for _, doc := range docs {
		url := []byte(truncate(doc.URL, maxURLLen))
		title := []byte(truncate(doc.Title, maxTitleLen))

		if err := writeAll(w,
			doc.DocID,
			uint16(len(url)),
		); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
		if _, err := w.Write(url); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(title))); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
		if _, err := w.Write(title); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
		if err := writeAll(w,
			doc.ContentLength,
			doc.TokenCount,
			doc.UniqueTerms,
		); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
	}

	if err := w.Flush(); err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	return nil
}

func saveInverted(path string, terms []index.TermEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	numTerms := uint32(len(terms))
	if err := writeAll(w, numTerms, numTerms); err != nil {
		return &ErrIO{Path: path, Err: err}
	}

	for _, term := range terms {
		termBytes := []byte(truncate(term.Term, maxTermLen))
		if err := binary.Write(w, binary.LittleEndian, uint16(len(termBytes))); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
		if _, err := w.Write(termBytes); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
		df := uint32(len(term.DocIDs))
		if err := binary.Write(w, binary.LittleEndian, df); err != nil {
			return &ErrIO{Path: path, Err: err}
		}
		for _, id := range term.DocIDs {
			if err := binary.Write(w, binary.LittleEndian, id); err != nil {
				return &ErrIO{Path: path, Err: err}
			}
		}
	}

	if err := w.Flush(); err != nil {
		return &ErrIO{Path: path, Err: err}
	}
	return nil
}

func writeAll(w *bufio.Writer, fields ...any) error {
	for _, field := range fields {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("write field: %v", err)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
