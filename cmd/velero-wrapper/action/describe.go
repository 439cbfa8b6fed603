package action

import (
	"context"

	"github.com/alapatipavan/velero-wrapper/cmd/velero-wrapper/options"
	"github.com/alapatipavan/velero-wrapper/pkg/signals"
	"github.com/alapatipavan/velero-wrapper/pkg/velero"
	"github.com/spf13/cobra"
)

func NewDescribeCommand(g *options.Global) *cobra.Command {
	o := options.NewDescribeOption()

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe an existing backup or restore",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return runDescribe(signals.SetupSignalContext(), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.State, "state", "", o.State, "kind of object to describe, backup or restore")
	flags.StringVarP(&o.Name, "name", "", o.Name, "name of the existing backup or restore")

	return cmd
}

func runDescribe(ctx context.Context, o *options.DescribeOption) error {
	runner := velero.NewRunner()
	if err := velero.CheckVersion(ctx, runner); err != nil {
		return err
	}

	spec := velero.DescribeSpec{
		State: o.State,
		Name:  o.Name,
	}
	return runner.Run(ctx, spec.Args()...)
}
