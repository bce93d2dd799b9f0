package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ytget/hog-gallery/internal/catalog"
	"github.com/ytget/hog-gallery/internal/gallery"
)

// listCmd prints the catalog the way the search field filters it
var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print the catalog entries matching query",
	Long: `Loads the catalog and prints the display name and filename of every
entry whose name contains query, case-insensitively. Without a query the
whole catalog is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	loader := catalog.NewService(cfg.Index, httpClient, logger)
	filenames, err := loader.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	cards := gallery.Render(cfg.Assets, filenames, query)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, card := range cards {
		fmt.Fprintf(tw, "%s\t%s\n", card.DisplayName, card.Filename)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s of %s hogs\n",
		humanize.Comma(int64(len(cards))), humanize.Comma(int64(len(filenames))))
	return nil
}
