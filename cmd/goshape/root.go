package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
)

// errInvalid marks a run where at least one document failed validation.
var errInvalid = errors.New("one or more documents are invalid")

type app struct {
	reg       *goshape.Registry
	logLevel  string
	logFormat string
	lang      string
}

func newRootCmd(reg *goshape.Registry) *cobra.Command {
	a := &app{reg: reg}
	root := &cobra.Command{
		Use:           "goshape",
		Short:         "Validate JSON and YAML documents against registered schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := parseLevel(a.logLevel); err != nil {
				return err
			}
			i18n.SetLanguage(a.lang)
			return nil
		},
	}
	lang := os.Getenv("GOSHAPE_LANG")
	if lang == "" {
		lang = "en"
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")
	root.PersistentFlags().StringVar(&a.lang, "lang", lang, "message language ("+strings.Join(i18n.Languages(), ", ")+"); defaults to $GOSHAPE_LANG")

	root.AddCommand(newCheckCmd(a), newSchemasCmd(a), newExportCmd(a))
	return root
}

func (a *app) logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(a.logLevel)
	opts := &slog.HandlerOptions{Level: level}
	if a.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q", s)
	}
	return l, nil
}

// Execute runs the CLI and returns the process exit code.
func Execute(reg *goshape.Registry, args []string) int {
	root := newRootCmd(reg)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(root.ErrOrStderr(), "goshape:", err)
			return 2
		}
		return 1
	}
	return 0
}
