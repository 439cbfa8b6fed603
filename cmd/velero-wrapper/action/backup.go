package action

import (
	"context"

	"github.com/alapatipavan/velero-wrapper/cmd/velero-wrapper/options"
	"github.com/alapatipavan/velero-wrapper/pkg/signals"
	"github.com/alapatipavan/velero-wrapper/pkg/velero"
	"github.com/spf13/cobra"
)

func NewBackupCommand(g *options.Global) *cobra.Command {
	o := options.NewBackupOption()

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a backup of the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return runBackup(signals.SetupSignalContext(), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.Name, "name", "", o.Name, "name of the backup to create, generated when empty")
	flags.StringSliceVarP(&o.ExcludeNamespaces, "exclude-namespaces", "", o.ExcludeNamespaces, "namespaces to exclude from the backup")
	flags.BoolVarP(&o.Wait, "wait", "", o.Wait, "wait for the backup to finish")

	return cmd
}

func runBackup(ctx context.Context, o *options.BackupOption) error {
	runner := velero.NewRunner()
	if err := velero.CheckVersion(ctx, runner); err != nil {
		return err
	}

	spec := velero.BackupSpec{
		Name:              o.Name,
		ExcludeNamespaces: o.ExcludeNamespaces,
		Wait:              o.Wait,
	}
	return runner.Run(ctx, spec.Args()...)
}
