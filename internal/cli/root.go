// Package cli implements the strict-check command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/term"

	"github.com/LerianStudio/lib-strict/strict/assert"
	"github.com/LerianStudio/lib-strict/strict/kind"
	"github.com/LerianStudio/lib-strict/strict/ok"
	"github.com/LerianStudio/lib-strict/strict/zap"
)

// ErrCheckFailed is returned when the document does not match the kind.
var ErrCheckFailed = errors.New("check failed")

// Options holds the flags of the root command.
type Options struct {
	Kind     string `validate:"required"`
	Context  string
	Format   string `validate:"oneof=auto json yaml"`
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`
	Path     string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewRootCommand creates the strict-check command.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "strict-check <file>",
		Short: "Check a JSON or YAML document against a kind expression",
		Long: `Decode a JSON or YAML document and narrow it to a kind expression.

Kind expressions combine the names listed by --help with "?" for nullable,
"list<...>", "map<...>" and "|" for alternatives, e.g. "map<string|list<int>>".`,
		Example:       `  strict-check --kind 'map<?string>' config.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]

			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			logger, err := newLogger(opts.LogLevel, os.Stderr)
			if err != nil {
				return err
			}

			defer func() { _ = logger.Sync(context.Background()) }()

			if err := assert.InitMetrics(otel.Meter(zap.DefaultLibraryName)); err != nil {
				return err
			}

			return Run(cmd.Context(), opts, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "kind expression ("+strings.Join(kind.Names(), ", ")+")")
	cmd.Flags().StringVar(&opts.Context, "context", "", "label used in mismatch messages (defaults to the file name)")
	cmd.Flags().StringVar(&opts.Format, "format", "auto", "input format (auto|json|yaml)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func newLogger(level string, stderr *os.File) (*zap.Logger, error) {
	cfg := zap.ConfigFromEnv()
	if level != "" {
		cfg.Level = level
	}

	if term.IsTerminal(int(stderr.Fd())) {
		cfg.Encoding = zap.EncodingConsole
	}

	logger, _, err := zap.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

// Run decodes the document at opts.Path and narrows it with opts.Kind,
// writing "ok" or the mismatch message to out.
func Run(ctx context.Context, opts *Options, out io.Writer, logger assert.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	k, err := kind.Parse(opts.Kind)
	if err != nil {
		return err
	}

	a := assert.New(ctx, logger, "strict-check", "check")

	data, err := ok.ReadFile(opts.Path)
	if err = a.Succeeds(ctx, "ReadFile", err); err != nil {
		return err
	}

	var doc any

	switch resolveFormat(opts.Format, opts.Path) {
	case "yaml":
		doc, err = ok.DecodeYAML(data)
	default:
		doc, err = ok.DecodeJSON(data, ok.DefaultDepth)
	}

	if err = a.Succeeds(ctx, "Decode", err); err != nil {
		return err
	}

	label := opts.Context
	if label == "" {
		label = filepath.Base(opts.Path)
	}

	if _, err := assert.Narrow(ctx, a, k, doc, label); err != nil {
		_, _ = fmt.Fprintln(out, err.Error())

		return fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}

	_, _ = fmt.Fprintln(out, "ok")

	return nil
}

func resolveFormat(format, path string) string {
	if format != "auto" && format != "" {
		return format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
