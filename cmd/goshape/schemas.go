package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/jsonschema"
)

func newSchemasCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List registered schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range a.reg.Names() {
				if !verbose {
					fmt.Fprintln(out, name)
					continue
				}
				s, _ := a.reg.Lookup(name)
				fmt.Fprintf(out, "%s\n", name)
				describe(out, s, "  ")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the fields of each schema")
	return cmd
}

func describe(out io.Writer, s goshape.Schema, indent string) {
	for _, f := range s {
		req := ""
		if f.Type != nil && f.Type.IsRequired() {
			req = " (required)"
		}
		kind := goshape.Kind("?")
		if f.Type != nil {
			kind = f.Type.Kind()
		}
		fmt.Fprintf(out, "%s%s: %s%s\n", indent, f.Name, kind, req)
		switch t := f.Type.(type) {
		case goshape.Object:
			describe(out, t.Records, indent+"  ")
		case goshape.Array:
			if o, ok := t.Element.(goshape.Object); ok {
				describe(out, o.Records, indent+"  ")
			}
		}
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export NAME",
		Short: "Print a registered schema as JSON Schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := a.reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown schema %q", args[0])
			}
			b, err := json.MarshalIndent(jsonschema.Export(s), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
			return err
		},
	}
}
