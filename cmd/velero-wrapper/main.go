package main

import (
	"fmt"
	"os"

	"github.com/alapatipavan/velero-wrapper/cmd/velero-wrapper/action"
	"github.com/alapatipavan/velero-wrapper/cmd/velero-wrapper/options"
	"github.com/alapatipavan/velero-wrapper/pkg/util"
	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var globals = options.NewGlobal()

var rootCommand = cobra.Command{
	Use:   "velero-wrapper",
	Short: "Convenience wrapper around velero for AWS-backed clusters",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(globals.LogLevel)
	},
	SilenceUsage: true,
}

func completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
	}
}

func addFlags(g *options.Global, flags *pflag.FlagSet) {
	flags.StringVarP(&g.LogLevel, "log-level", "", g.LogLevel, "log level, one of debug, info, warn, error")
	flags.StringVarP(&g.Profile, "profile", "", g.Profile, "AWS profile name, else the default profile is used")
}

func init() {
	completion := completionCommand()
	completion.Hidden = true
	rootCommand.AddCommand(completion)

	rootCommand.AddCommand(action.NewRequiredVersionCommand())
	rootCommand.AddCommand(action.NewInstallCommand(globals))
	rootCommand.AddCommand(action.NewBackupCommand(globals))
	rootCommand.AddCommand(action.NewRestoreCommand(globals))
	rootCommand.AddCommand(action.NewScheduleCommand(globals))
	rootCommand.AddCommand(action.NewDescribeCommand(globals))
}

func main() {
	addFlags(globals, rootCommand.PersistentFlags())

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(util.ExitCode(err))
	}
}
