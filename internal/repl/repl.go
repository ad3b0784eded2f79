// Package repl implements the interactive prompt loop and the
// one-shot query mode for the search binary. It sits outside the
// query engine proper: it only ever hands the core a single query
// string and formats the resulting doc IDs.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/ermug/turkindex/internal/index"
	"github.com/ermug/turkindex/internal/query"
)

// Index is the subset of store.Loader the REPL needs: evaluate a
// query and resolve doc IDs back to display metadata.
type Index interface {
	query.TermSource
	GetDocument(docID uint32) (*index.Document, bool)
}

// RunOne evaluates a single query and writes a formatted result table
// to out. It returns the number of doc IDs the query matched,
// including any that don't resolve to a document: the complement of a
// sparse ID space can name IDs no document ever used, and those are
// simply skipped when rendering rather than shown as blank rows.
func RunOne(out io.Writer, idx Index, q string, pageSize int) int {
	results := query.NewEvaluator(q, idx).Evaluate()
	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })

	rows := make([][]string, 0, pageSize)
	shown := 0
	for _, docID := range results {
		if shown >= pageSize {
			break
		}
		doc, ok := idx.GetDocument(docID)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", docID),
			doc.Title,
			doc.URL,
		})
		shown++
	}

	fmt.Fprintf(out, "found %d document(s)\n", len(results))
	if len(rows) > 0 {
		table := tablewriter.NewWriter(out)
		table.Header([]string{"doc_id", "title", "url"})
		table.Bulk(rows)
		table.Render()
	}
	if len(results) > len(rows) {
		fmt.Fprintf(out, "... and %d more\n", len(results)-len(rows))
	}
	return len(results)
}

// RunLoop reads queries line by line from in until EOF, running each
// through RunOne. Blank lines are skipped.
func RunLoop(out io.Writer, in io.Reader, idx Index, pageSize int) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		q := scanner.Text()
		if q == "" {
			continue
		}
		fmt.Fprintf(out, "query: %s\n", q)
		RunOne(out, idx, q, pageSize)
		fmt.Fprintln(out)
	}
}
