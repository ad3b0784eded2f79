// Command dump_index prints the first N terms of a built index's
// inverted file, for quick inspection. It shares internal/store's
// loader rather than re-parsing the binary format itself.
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ermug/turkindex/internal/store"
)

func main() {
	var limit int

	cmd := &cobra.Command{
		Use:   "dump_index <index_base>",
		Short: "List the first N terms of a built index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], limit)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of terms to list")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(indexBase string, limit int) error {
	loader, err := store.Load(indexBase, store.LoadOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading index: %v\n", err)
		return err
	}

	fmt.Printf("total terms: %d\n\n", len(loader.Terms))

	rows := make([][]string, 0, limit)
	for i, term := range loader.Terms {
		if i >= limit {
			break
		}
		rows = append(rows, []string{term.Term, fmt.Sprintf("%d", len(term.DocIDs))})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"term", "df"})
	table.Bulk(rows)
	table.Render()

	return nil
}
