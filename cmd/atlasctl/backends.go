package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"companyatlas/internal/backends/models"
	"companyatlas/internal/backends/service"
	"companyatlas/internal/virtual"
)

var (
	backendsQuery     string
	backendsStatus    string
	backendsContinent string
	backendsCountry   string
	backendsOrder     string
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List configured backends with their diagnostics",
	Args:  cobra.NoArgs,
	RunE:  runBackends,
}

var backendCmd = &cobra.Command{
	Use:   "backend <name>",
	Short: "Show one backend's packages, configuration and costs",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackend,
}

func init() {
	backendsCmd.Flags().StringVarP(&backendsQuery, "query", "q", "", "Search name, display name, country code and continent")
	backendsCmd.Flags().StringVar(&backendsStatus, "status", "", "Filter by status")
	backendsCmd.Flags().StringVar(&backendsContinent, "continent", "", "Filter by continent")
	backendsCmd.Flags().StringVar(&backendsCountry, "country", "", "Filter by country code")
	backendsCmd.Flags().StringVar(&backendsOrder, "order", "", "Comma separated ordering, prefix with - for descending")
	rootCmd.AddCommand(backendsCmd, backendCmd)
}

func runBackends(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	list := a.Backends.ListBackends(ctx).Search(backendsQuery, service.SearchFields...)
	lookup := virtual.Lookup{}
	if backendsStatus != "" {
		lookup["status"] = backendsStatus
	}
	if backendsContinent != "" {
		lookup["continent"] = backendsContinent
	}
	if backendsCountry != "" {
		lookup["country_code"] = strings.ToUpper(backendsCountry)
	}
	if len(lookup) > 0 {
		list = list.Filter(lookup)
	}
	if backendsOrder != "" {
		list = list.OrderBy(strings.Split(backendsOrder, ",")...)
	}

	return render(cmd.OutOrStdout(), list.All(), func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "NAME\tCONTINENT\tCOUNTRY\tDATA\tDOCS\tEVENTS\tSTATUS")
		for _, s := range list.Iter() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.Name, s.Continent, s.CountryCode,
				yesNo(s.Can(models.CapabilityCompanyData)),
				yesNo(s.Can(models.CapabilityDocuments)),
				yesNo(s.Can(models.CapabilityEvents)),
				s.Status.Label(),
			)
		}
	})
}

func runBackend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	snap, ok := a.Backends.GetBackend(ctx, args[0])
	if !ok {
		return fmt.Errorf("backend %q not found", args[0])
	}

	return render(cmd.OutOrStdout(), snap, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Name:\t%s\n", snap.Name)
		fmt.Fprintf(tw, "Display name:\t%s\n", snap.String())
		fmt.Fprintf(tw, "Location:\t%s %s %s\n", snap.CountryFlag, snap.CountryCode, snap.Continent)
		fmt.Fprintf(tw, "Status:\t%s\n", snap.Status.Label())
		for _, p := range snap.Packages {
			fmt.Fprintf(tw, "Package %s:\t%s\n", p.Name, installed(p.Satisfied, "installed", "missing"))
		}
		for _, c := range snap.Config {
			fmt.Fprintf(tw, "Config %s:\t%s\n", c.Name, installed(c.Satisfied, "present", "missing"))
		}
		for _, c := range models.Capabilities {
			fmt.Fprintf(tw, "%s:\t%s (%s)\n", c, yesNo(snap.Can(c)), snap.Costs[c])
		}
		if snap.DocumentationURL != "" {
			fmt.Fprintf(tw, "Documentation:\t%s\n", snap.DocumentationURL)
		}
	})
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func installed(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
