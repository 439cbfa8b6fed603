package action

import (
	"fmt"

	"github.com/alapatipavan/velero-wrapper/pkg/signals"
	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/alapatipavan/velero-wrapper/pkg/velero"
	"github.com/spf13/cobra"
)

func NewRequiredVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "required-version",
		Short: "Print the required and the installed velero client version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := signals.SetupSignalContext()

			found, err := velero.ClientVersion(ctx, velero.NewRunner())
			if err != nil {
				log.Debugf("velero client version lookup: %v", err)
				found = "<not found>"
			}

			fmt.Printf("Required Velero version: %s\n", velero.RequiredVersion)
			fmt.Printf("Velero version found: %s\n", found)
			return nil
		},
	}
}
