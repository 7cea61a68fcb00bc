package main

import (
	"fmt"
	"time"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/pkg/client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func remoteCmd(opts *options) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Work with projects stored on a wizard server",
	}
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	newClient := func() *client.Client {
		return client.New(opts.serverURL,
			client.WithRequestTimeout(timeout),
			client.WithRequestLogging(opts.logger),
		)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create [name]",
			Short: "Create a project from the schema document and print its ID",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := opts.readDocument(cmd)
				if err != nil {
					return err
				}

				c := newClient()
				req := entity.CreateProjectRequest{}
				if len(args) == 1 {
					req.Name = args[0]
				}
				proj, err := c.CreateProject(cmd.Context(), req)
				if err != nil {
					return fmt.Errorf("create project: %w", err)
				}
				if _, err := c.Import(cmd.Context(), proj.ID, data); err != nil {
					return fmt.Errorf("import schema into %s: %w", proj.ID, err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), proj.ID)
				return err
			},
		},
		&cobra.Command{
			Use:   "pull <project-id>",
			Short: "Print a project's schema document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := newClient().Export(cmd.Context(), args[0], entity.FormatJSON)
				if err != nil {
					return fmt.Errorf("pull %s: %w", args[0], err)
				}
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			},
		},
		&cobra.Command{
			Use:   "push <project-id>",
			Short: "Replace a project's schema with the schema document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := opts.readDocument(cmd)
				if err != nil {
					return err
				}

				res, err := newClient().Import(cmd.Context(), args[0], data)
				if err != nil {
					return fmt.Errorf("push %s: %w", args[0], err)
				}
				if res.Repaired {
					opts.logger.Warn("server repaired the document before storing it",
						zap.String("project_id", args[0]))
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Status)
				return err
			},
		},
		&cobra.Command{
			Use:   "generate <project-id>",
			Short: "Generate and print the prompt stored on a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := newClient().Generate(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("generate %s: %w", args[0], err)
				}
				for sev, n := range res.Severities {
					if n > 0 {
						opts.logger.Info("suggestions", zap.String("severity", string(sev)), zap.Int("count", n))
					}
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), res.Prompt)
				return err
			},
		},
	)

	return cmd
}
