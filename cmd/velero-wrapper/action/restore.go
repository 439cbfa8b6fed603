package action

import (
	"context"

	"github.com/alapatipavan/velero-wrapper/cmd/velero-wrapper/options"
	"github.com/alapatipavan/velero-wrapper/pkg/signals"
	"github.com/alapatipavan/velero-wrapper/pkg/velero"
	"github.com/spf13/cobra"
)

func NewRestoreCommand(g *options.Global) *cobra.Command {
	o := options.NewRestoreOption()

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the cluster from an existing backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return runRestore(signals.SetupSignalContext(), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.FromBackup, "from-backup", "", o.FromBackup, "name of the backup to restore from")
	flags.BoolVarP(&o.Wait, "wait", "", o.Wait, "wait for the restore to finish")

	return cmd
}

func runRestore(ctx context.Context, o *options.RestoreOption) error {
	runner := velero.NewRunner()
	if err := velero.CheckVersion(ctx, runner); err != nil {
		return err
	}

	spec := velero.RestoreSpec{
		FromBackup: o.FromBackup,
		Wait:       o.Wait,
	}
	return runner.Run(ctx, spec.Args()...)
}
