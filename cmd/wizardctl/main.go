// Package main provides wizardctl, a command line front end for the design
// wizard. It runs the prompt, suggestion and preview pipeline over schema
// documents locally and can talk to a running wizard server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/interchange"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "wizardctl"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are shared by every subcommand.
type options struct {
	schemaPath string
	fallback   bool
	logLevel   string
	serverURL  string

	logger *zap.Logger
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Turn a site schema into a build prompt, suggestions and a preview",
		Long: `wizardctl reads a site schema document (the wizard's JSON interchange
format) and derives the build prompt, the design suggestions or the
preview tree from it.

The schema is read from --schema, or from stdin when the flag is empty
or "-". Documents are decoded strictly; with --fallback an unreadable
document is replaced by the default schema instead.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.schemaPath, "schema", "s", "", `Schema document path ("-" or empty for stdin)`)
	flags.BoolVar(&opts.fallback, "fallback", false, "Use the default schema when the document cannot be read")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.serverURL, "server", "http://localhost:8080", "Wizard server URL for remote commands")

	cmd.AddCommand(
		promptCmd(opts),
		suggestCmd(opts),
		previewCmd(opts),
		exportCmd(opts),
		presetCmd(),
		defaultCmd(),
		optionsCmd(),
		remoteCmd(opts),
	)

	return cmd
}

// newLogger builds a development logger writing to w, which keeps stdout
// free for command output.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// loadSchema reads the schema document named by the flags.
func (o *options) loadSchema(cmd *cobra.Command) (entity.SiteSchema, error) {
	data, err := o.readDocument(cmd)
	if err != nil {
		return entity.SiteSchema{}, err
	}

	if o.fallback {
		return interchange.LoadOrDefault(data, o.logger), nil
	}

	s, err := interchange.Decode(data)
	if err != nil {
		return entity.SiteSchema{}, fmt.Errorf("read schema: %w", err)
	}
	return s, nil
}

func (o *options) readDocument(cmd *cobra.Command) ([]byte, error) {
	if o.schemaPath == "" || o.schemaPath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(o.schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	o.logger.Debug("schema loaded", zap.String("path", o.schemaPath), zap.Int("bytes", len(data)))
	return data, nil
}
