package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/jsonschema"
	"github.com/reoring/goshape/kubeopenapi"
	"github.com/reoring/goshape/source"
)

type checkOptions struct {
	schema     string
	schemaFile string
	crdKind    string
	component  string
	format     string
	name       string
	allDocs    bool
	dump       bool
}

func newCheckCmd(a *app) *cobra.Command {
	o := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check (--schema NAME | --schema-file FILE) FILE...",
		Short: "Validate documents against a schema",
		Long: `Decodes each FILE (or stdin for "-") and validates it against the named schema.
The schema is either registered (--schema) or imported from a JSON Schema,
OpenAPI v3 or CustomResourceDefinition file (--schema-file).
Prints one line per document and exits with status 1 when any document is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, o, args)
		},
	}
	cmd.Flags().StringVarP(&o.schema, "schema", "s", "", "registered schema name (see `goshape schemas`)")
	cmd.Flags().StringVar(&o.schemaFile, "schema-file", "", "import the schema from a JSON Schema, OpenAPI or CRD file")
	cmd.Flags().StringVar(&o.crdKind, "crd-kind", "", "with --schema-file, pick the CRD of this kind from a YAML bundle")
	cmd.Flags().StringVar(&o.component, "component", "", "with --schema-file, use this components.schemas entry of an OpenAPI document")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "input format (json, yaml); guessed from the extension when empty")
	cmd.Flags().StringVar(&o.name, "name", "", "root label used in messages (defaults to the schema name)")
	cmd.Flags().BoolVar(&o.allDocs, "all-docs", false, "validate every document of a YAML stream")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "dump each decoded document to stderr")
	cmd.MarkFlagsOneRequired("schema", "schema-file")
	cmd.MarkFlagsMutuallyExclusive("schema", "schema-file")
	cmd.MarkFlagsMutuallyExclusive("crd-kind", "component")
	return cmd
}

func runCheck(cmd *cobra.Command, a *app, o *checkOptions, files []string) error {
	s, label, err := o.resolveSchema(cmd, a)
	if err != nil {
		return err
	}
	var forced source.Format
	if o.format != "" {
		f, err := source.ParseFormat(o.format)
		if err != nil {
			return err
		}
		forced = f
	}
	name := o.name
	if name == "" {
		name = label
	}
	v := goshape.New(goshape.WithName(name), goshape.WithLogger(a.logger(cmd.ErrOrStderr())))
	out := cmd.OutOrStdout()

	failed := false
	for _, file := range files {
		data, err := readInput(cmd, file)
		if err != nil {
			return err
		}
		format := forced
		if format == "" {
			format = source.FormatFromPath(file)
		}
		docs, err := decodeDocs(data, format, o.allDocs)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", file, err)
			failed = true
			continue
		}
		for i, doc := range docs {
			label := file
			if len(docs) > 1 {
				label = fmt.Sprintf("%s#%d", file, i)
			}
			if o.dump {
				spew.Fdump(cmd.ErrOrStderr(), doc)
			}
			if err := v.Validate(cmd.Context(), s, doc); err != nil {
				var se *goshape.SchemaError
				if errors.As(err, &se) && se.Code != goshape.CodeInputNotObject {
					return err
				}
				fmt.Fprintf(out, "%s: %v\n", label, err)
				failed = true
				continue
			}
			fmt.Fprintf(out, "%s: ok\n", label)
		}
	}
	if failed {
		return errInvalid
	}
	return nil
}

// resolveSchema returns the schema to check against and its default root label.
func (o *checkOptions) resolveSchema(cmd *cobra.Command, a *app) (goshape.Schema, string, error) {
	if o.schemaFile == "" {
		s, ok := a.reg.Lookup(o.schema)
		if !ok {
			return nil, "", fmt.Errorf("unknown schema %q", o.schema)
		}
		return s, o.schema, nil
	}
	data, err := os.ReadFile(o.schemaFile)
	if err != nil {
		return nil, "", err
	}
	var (
		s        goshape.Schema
		warnings []string
		label    = goshape.DefaultName
	)
	switch {
	case o.component != "":
		js, err := jsonschema.FromOpenAPI(data, o.component)
		if err != nil {
			return nil, "", err
		}
		if s, warnings, err = jsonschema.Compile(js); err != nil {
			return nil, "", err
		}
		label = o.component
	case o.crdKind != "":
		imported, diag, err := kubeopenapi.ImportYAMLForCRDKind(data, o.crdKind)
		if err != nil {
			return nil, "", err
		}
		s, warnings, label = imported, diag.Warnings(), o.crdKind
	default:
		doc, err := source.Decode(data, source.FormatFromPath(o.schemaFile))
		if err != nil {
			return nil, "", err
		}
		imported, diag, err := kubeopenapi.Import(doc)
		if err != nil {
			return nil, "", err
		}
		s, warnings = imported, diag.Warnings()
	}
	log := a.logger(cmd.ErrOrStderr())
	for _, w := range warnings {
		log.Warn("schema import", slog.String("file", o.schemaFile), slog.String("warning", w))
	}
	return s, label, nil
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(file)
}

func decodeDocs(data []byte, f source.Format, all bool) ([]any, error) {
	if f == source.FormatYAML && all {
		return source.YAMLDocuments(data)
	}
	doc, err := source.Decode(data, f)
	if err != nil {
		return nil, err
	}
	return []any{doc}, nil
}
