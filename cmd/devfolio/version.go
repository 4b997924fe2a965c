package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of devfolio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "devfolio version %s (schema %s)\n", devfolio.Version, devfolio.SchemaURL)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
