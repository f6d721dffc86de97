package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"companyatlas/internal/backends/models"
)

var (
	searchService string
	searchLimit   int
)

var searchCmd = &cobra.Command{
	Use:   "search <backend> <term>",
	Short: "Run an ad-hoc search against one backend",
	Long: `Run an ad-hoc search against one backend.

Failures are never fatal: an unknown backend, a disabled service or a
backend error all print an empty result.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchService, "service", "data", "Service to query (data, documents, events)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum rows (default from settings)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := models.ParseService(searchService)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	a, err := openApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	results := a.Backends.Search(ctx, args[0], svc, args[1], searchLimit)
	return render(cmd.OutOrStdout(), results.All(), func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tDENOMINATION\tSIREN\tSIRET\tSINCE")
		for _, r := range results.Iter() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.String(),
				r.Normalized["siren"], r.Normalized["siret"], r.Normalized["since"])
		}
		fmt.Fprintf(tw, "(%d rows)\n", results.Count())
	})
}
