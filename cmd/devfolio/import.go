package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio/internal/cli"
	loamadapter "github.com/aretw0/devfolio/pkg/adapters/loam"
	"github.com/aretw0/devfolio/pkg/portfolio"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Validate a directory of portfolios and store the valid ones",
	Long: `Reads every JSON/YAML document of <dir> and saves the valid ones in the
configured store under their file IDs. Invalid documents are listed and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, v, err := setup(cmd, "cli")
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("store") {
			cfg.Store.Driver, _ = cmd.Flags().GetString("store")
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		src, err := loamadapter.Open(args[0])
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		b, err := cli.OpenBackend(sigCtx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer b.Close()

		opts := []portfolio.Option{
			portfolio.WithValidator(v),
			portfolio.WithLogger(logger),
			portfolio.WithSource("cli"),
		}
		if b.Locker != nil {
			opts = append(opts, portfolio.WithLocker(b.Locker))
		}
		report, err := portfolio.NewManager(b.Store, opts...).Import(sigCtx, src)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			for _, id := range report.Stored {
				fmt.Fprintf(out, "✓ %s\n", id)
			}
			rejected := make([]string, 0, len(report.Rejected))
			for id := range report.Rejected {
				rejected = append(rejected, id)
			}
			sort.Strings(rejected)
			for _, id := range rejected {
				fmt.Fprintf(out, "✗ %s\n", id)
				for i, msg := range report.Rejected[id] {
					fmt.Fprintf(out, "  %d. %s\n", i+1, msg)
				}
			}
		}

		if n := len(report.Rejected); n > 0 {
			return fmt.Errorf("%d document(s) rejected", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("store", "memory", "Store driver: memory, file, redis or postgres")
	importCmd.Flags().Bool("json", false, "Print the import report as JSON")
}
