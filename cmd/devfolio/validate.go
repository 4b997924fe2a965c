package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio/internal/cli"
	loamadapter "github.com/aretw0/devfolio/pkg/adapters/loam"
	"github.com/aretw0/devfolio/pkg/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate portfolio documents",
	Long: `Validates each file (JSON or YAML, by extension) and every document of --dir.
Use "-" to read standard input. Exits non-zero when any document is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, v, err := setup(cmd, "cli")
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		stats, _ := cmd.Flags().GetBool("stats")
		asJSON, _ := cmd.Flags().GetBool("json")
		format, _ := cmd.Flags().GetString("format")
		watch, _ := cmd.Flags().GetBool("watch")

		if len(args) == 0 && dir == "" {
			return fmt.Errorf("nothing to validate: pass files, '-' or --dir")
		}

		opts := cli.ValidateOptions{
			Paths:       args,
			Dir:         dir,
			StdinFormat: loader.Format(format),
			Stats:       stats,
			JSON:        asJSON,
			Stdin:       cmd.InOrStdin(),
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		if watch {
			if dir == "" {
				return fmt.Errorf("--watch requires --dir")
			}
			source, err := loamadapter.Open(dir)
			if err != nil {
				return err
			}
			return cli.RunWatch(sigCtx, v, source, opts, cmd.OutOrStdout(), logger)
		}

		failed, err := cli.RunValidate(sigCtx, v, opts, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d invalid document(s)", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("dir", "", "Validate every JSON/YAML document in a directory")
	validateCmd.Flags().Bool("stats", false, "Print entry counts for valid documents")
	validateCmd.Flags().Bool("json", false, "Print one JSON report per document")
	validateCmd.Flags().String("format", string(loader.FormatJSON), "Encoding of standard input: json or yaml")
	validateCmd.Flags().Bool("watch", false, "Keep validating --dir documents as they change")
}
