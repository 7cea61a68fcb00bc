package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/interchange"
	"github.com/futig/design-wizard/internal/pkg/formatter"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/futig/design-wizard/internal/preview"
	"github.com/futig/design-wizard/internal/prompt"
	"github.com/futig/design-wizard/internal/suggestion"
	"github.com/futig/design-wizard/internal/usecase/project"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func promptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print the build prompt for the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSchema(cmd)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), prompt.Assemble(s))
			return err
		},
	}
}

func suggestCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List design suggestions for the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSchema(cmd)
			if err != nil {
				return err
			}

			findings := suggestion.Evaluate(s)
			opts.logger.Info("suggestions evaluated", zap.Int("count", len(findings)))

			if output != "" {
				return writeStructured(cmd.OutOrStdout(), output, findings)
			}

			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				_, err := fmt.Fprintln(out, "No suggestions.")
				return err
			}
			for _, f := range findings {
				if _, err := fmt.Fprintf(out, "[%s] %s\n  fix: %s\n", f.Severity, f.Reason, f.Fix); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Structured output (json, yaml)")
	return cmd
}

func previewCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the preview tree for the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSchema(cmd)
			if err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), output, preview.Render(s))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format (json, yaml)")
	return cmd
}

func exportCmd(opts *options) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the schema document or the prompt as a file",
		Long: `Render an export artifact. json writes the interchange document;
markdown, pdf and docx carry the build prompt. Binary formats need --out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := entity.ExportFormat(format)
			if !f.IsValid() {
				return fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
			}
			if outPath == "" && (f == entity.FormatPDF || f == entity.FormatDOCX) {
				return fmt.Errorf("%s export needs --out", f)
			}

			s, err := opts.loadSchema(cmd)
			if err != nil {
				return err
			}

			res, err := project.RenderArtifact(s, f, formatter.NewFactory())
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(res.Data)
				return err
			}
			if err := os.WriteFile(outPath, res.Data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			opts.logger.Info("export written",
				zap.String("path", outPath),
				zap.String("suggested_name", res.Filename),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(entity.FormatJSON), "Export format (json, markdown, pdf, docx)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write to this file instead of stdout")
	return cmd
}

func presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "preset <name>",
		Short:     "Print the schema document for a preset",
		Args:      cobra.ExactArgs(1),
		ValidArgs: preset.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := preset.Apply(args[0])
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), s)
		},
	}
}

func defaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the default schema document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDocument(cmd.OutOrStdout(), preset.Default())
		},
	}
}

func optionsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the option catalogs the wizard offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeStructured(cmd.OutOrStdout(), output, preset.AllOptions())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format (json, yaml)")
	return cmd
}

func writeDocument(w io.Writer, s entity.SiteSchema) error {
	data, err := interchange.Encode(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func writeStructured(w io.Writer, output string, v any) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output %q, want json or yaml", output)
	}
}
