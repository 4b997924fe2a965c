package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/pkg/loader"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a minimal portfolio document",
	Long:  `Writes the smallest valid portfolio for <name>. The output encoding follows the file extension (JSON or YAML).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		force, _ := cmd.Flags().GetBool("force")

		doc := devfolio.NewMinimal(args[0])
		if !devfolio.IsValid(doc) {
			return fmt.Errorf("name must not be empty")
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if loader.FormatOf(output) == loader.FormatYAML {
			var m map[string]any
			if err := json.Unmarshal(data, &m); err != nil {
				return err
			}
			if data, err = yaml.Marshal(m); err != nil {
				return err
			}
		} else {
			data = append(data, '\n')
		}

		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if _, err := os.Stat(output); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", output)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write portfolio: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Portfolio written to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("output", "o", "", "File to write (.json, .yaml or .yml); stdout when empty")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
