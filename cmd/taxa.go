package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/ui/i18n"
)

var taxaCmd = &cobra.Command{
	Use:   "taxa",
	Short: "Browse the reference catalog",
}

var taxaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog taxa (optionally filtered by name or order)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := cliLogger(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		query, _ := cmd.Flags().GetString("query")
		taxa := catalog.New(catalog.WithLogger(logger)).Search(query)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-14s  %-16s  %-16s  %3s  %4s  %3s  %3s\n",
			"ID", "Name", "Order", "Tol", "BMWP", "ABI", "IBF")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, t := range taxa {
			fmt.Fprintf(out, "%-14s  %-16s  %-16s  %3d  %4d  %3d  %3d\n",
				t.ID, t.Name, t.Order, t.Tolerance, t.BMWP, t.ABI, t.IBF)
		}
		fmt.Fprintf(out, "\n%d taxa\n", len(taxa))
		return nil
	},
}

var taxaShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every field of one taxon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := cliLogger(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		t, err := catalog.New(catalog.WithLogger(logger)).Get(args[0])
		if err != nil {
			logger.Debug("taxon lookup failed", zap.String("id", args[0]), zap.Error(err))
			return err
		}

		str := i18n.For(cfg.Lang())
		group := catalog.GroupFor(t.Tolerance)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s)\n\n", t.Image, t.Name, t.Order)
		if t.Description != "" {
			fmt.Fprintf(out, "%s\n\n", t.Description)
		}
		fmt.Fprintf(out, "  %-12s %s\n", str.Habitat+":", t.Habitat)
		fmt.Fprintf(out, "  %-12s %d  %s (%s)\n", str.Tolerance+":", t.Tolerance, str.GroupLabel(group), group.Range())
		fmt.Fprintf(out, "  %-12s %d\n", "BMWP:", t.BMWP)
		fmt.Fprintf(out, "  %-12s %d\n", "ABI:", t.ABI)
		fmt.Fprintf(out, "  %-12s %d\n", "IBF:", t.IBF)
		fmt.Fprintf(out, "  %-12s %s\n", "Color:", t.Color)
		return nil
	},
}

func init() {
	taxaListCmd.Flags().StringP("query", "q", "", "Case-insensitive substring of name or order")

	taxaCmd.AddCommand(taxaListCmd)
	taxaCmd.AddCommand(taxaShowCmd)
}
