package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/internal/presentation/tui"
	"github.com/aretw0/devfolio/pkg/loader"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Render an overview of a valid portfolio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, v, err := setup(cmd, "cli")
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetBool("raw")

		data, err := loader.Load(args[0])
		if err != nil {
			return err
		}
		res := v.Validate(data)
		if !res.Success {
			fmt.Fprintln(cmd.OutOrStdout(), devfolio.FormatErrors(res.Errors))
			return fmt.Errorf("%s is not a valid portfolio", args[0])
		}

		md := tui.Summary(res.Data)
		if raw {
			_, err := fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		}

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		out, err := tui.NewRenderer(os.Stdout)(md)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Bool("raw", false, "Print the markdown without rendering")
}
