package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio/internal/cli"
	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/jsonschema"
	"github.com/aretw0/devfolio/pkg/loader"
	"github.com/aretw0/devfolio/pkg/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Export the portfolio JSON Schema (draft-07)",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		definition, _ := cmd.Flags().GetString("definition")
		strict, _ := cmd.Flags().GetBool("strict")

		opts := []jsonschema.Option{}
		if definition != "" {
			opts = append(opts, jsonschema.WithDefinition(definition))
		}
		if strict {
			opts = append(opts, jsonschema.WithUnknownKeys(schema.Reject))
		}

		data, err := jsonschema.Marshal(catalog.Document(), opts...)
		if err != nil {
			return err
		}
		data = append(data, '\n')

		if output == "" || output == loader.Stdin {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write schema: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "JSON Schema written to %s\n", output)
		return nil
	},
}

var checkSchemaCmd = &cobra.Command{
	Use:   "check-schema <file>",
	Short: "Cross-check a document with the built-in and the JSON Schema validators",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, v, err := setup(cmd, "cli")
		if err != nil {
			return err
		}
		policy, err := schema.ParseUnknownKeys(cfg.Validation.UnknownKeys)
		if err != nil {
			return err
		}
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			policy = schema.Reject
		}

		data, err := loader.Load(args[0])
		if err != nil {
			return err
		}
		check, err := cli.CheckSchema(v, policy, data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "native:      %d violation(s)\n", len(check.Native))
		for _, msg := range check.Native {
			fmt.Fprintf(out, "  %s\n", msg)
		}
		fmt.Fprintf(out, "json schema: %d violation(s)\n", len(check.JSONSchema))
		for _, msg := range check.JSONSchema {
			fmt.Fprintf(out, "  %s\n", msg)
		}
		if !check.Agree() {
			return fmt.Errorf("validators disagree on %s", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(checkSchemaCmd)

	schemaCmd.Flags().StringP("output", "o", "", "Write the schema to a file instead of stdout")
	schemaCmd.Flags().String("definition", "", "Nest the schema under definitions/<name> and reference it")
}
