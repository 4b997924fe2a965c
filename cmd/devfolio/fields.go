package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio/internal/presentation/graph"
	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/loader"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [record]",
	Short: "List record types and their fields",
	Long: `Without arguments, lists every record type with its required fields.
With a record name (e.g. Work or work), lists all of its fields.
--mermaid prints a diagram of the schema instead; --overlay highlights the
collections a document fills in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		overlayPath, _ := cmd.Flags().GetString("overlay")

		if mermaid {
			var overlay *graph.Overlay
			if overlayPath != "" {
				_, _, v, err := setup(cmd, "cli")
				if err != nil {
					return err
				}
				data, err := loader.Load(overlayPath)
				if err != nil {
					return err
				}
				res := v.Validate(data)
				if !res.Success {
					return fmt.Errorf("%s is not a valid portfolio", overlayPath)
				}
				overlay = &graph.Overlay{Counts: map[string]int{}}
				for _, c := range res.Data.Stats().Counts() {
					overlay.Counts[c.Collection] = c.N
				}
			}
			_, err := fmt.Fprint(out, graph.GenerateMermaid(catalog.Document(), overlay))
			return err
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		defer w.Flush()

		if len(args) == 1 {
			rt, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown record type %q", args[0])
			}
			fmt.Fprintln(w, "FIELD\tTYPE\tREQUIRED\tDESCRIPTION")
			for _, f := range rt.Schema.Fields {
				req := ""
				if f.Required {
					req = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Type.Name(), req, f.Description)
			}
			return nil
		}

		fmt.Fprintln(w, "RECORD\tCOLLECTION\tREQUIRED FIELDS")
		for _, rt := range catalog.RecordTypes() {
			collection := rt.Collection
			if collection == "" {
				collection = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Name, collection, strings.Join(rt.Schema.RequiredFields(), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)

	fieldsCmd.Flags().Bool("mermaid", false, "Print a Mermaid diagram of the schema")
	fieldsCmd.Flags().String("overlay", "", "Portfolio file whose collections are highlighted in the diagram")
}
