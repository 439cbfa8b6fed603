package action

import (
	"context"

	"github.com/alapatipavan/velero-wrapper/cmd/velero-wrapper/options"
	"github.com/alapatipavan/velero-wrapper/pkg/signals"
	"github.com/alapatipavan/velero-wrapper/pkg/velero"
	"github.com/spf13/cobra"
)

func NewScheduleCommand(g *options.Global) *cobra.Command {
	o := options.NewScheduleOption()

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Create a recurring backup schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return runSchedule(signals.SetupSignalContext(), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.Name, "name", "", o.Name, "name of the backup schedule to create")
	flags.StringSliceVarP(&o.IncludeNamespaces, "include-namespaces", "", o.IncludeNamespaces, "namespaces to include in the scheduled backup")
	flags.IntVarP(&o.EveryHours, "every", "", o.EveryHours, "run the backup every N hours")
	flags.StringVarP(&o.Cron, "cron", "", o.Cron, "cron expression for the backup cadence, alternative to --every")
	flags.IntVarP(&o.TTLHours, "ttl", "", o.TTLHours, "hours to keep scheduled backups")

	return cmd
}

func runSchedule(ctx context.Context, o *options.ScheduleOption) error {
	runner := velero.NewRunner()
	if err := velero.CheckVersion(ctx, runner); err != nil {
		return err
	}

	spec := velero.ScheduleSpec{
		Name:              o.Name,
		Schedule:          o.Schedule,
		IncludeNamespaces: o.IncludeNamespaces,
		TTLHours:          o.TTLHours,
	}
	return runner.Run(ctx, spec.Args()...)
}
