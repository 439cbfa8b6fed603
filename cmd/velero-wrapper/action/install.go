package action

import (
	"context"

	"github.com/alapatipavan/velero-wrapper/cmd/velero-wrapper/options"
	"github.com/alapatipavan/velero-wrapper/pkg/cloud"
	"github.com/alapatipavan/velero-wrapper/pkg/kube"
	"github.com/alapatipavan/velero-wrapper/pkg/signals"
	"github.com/alapatipavan/velero-wrapper/pkg/util"
	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/alapatipavan/velero-wrapper/pkg/velero"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewInstallCommand(g *options.Global) *cobra.Command {
	o := options.NewInstallOption()

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install and set up velero on the targeted cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return runInstall(signals.SetupSignalContext(), g, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.Bucket, "bucket", "", o.Bucket, "backup bucket name")
	flags.StringVarP(&o.BackupRegion, "backup-region", "", o.BackupRegion, "region for new backups")
	flags.StringVarP(&o.SnapshotRegion, "snapshot-region", "", o.SnapshotRegion, "region for new snapshots")
	flags.StringVarP(&o.Secret, "secret", "", o.Secret, "velero user credentials file for installing")
	flags.BoolVarP(&o.CreateBucket, "create-bucket", "", o.CreateBucket, "create the backup bucket instead of requiring it to exist")
	flags.BoolVarP(&o.WaitReady, "wait-ready", "", o.WaitReady, "wait for the velero deployment to become ready")
	flags.DurationVarP(&o.ReadyTimeout, "ready-timeout", "", o.ReadyTimeout, "how long to wait for the velero deployment")
	flags.StringVarP(&o.Kubeconfig, "kubeconfig", "", o.Kubeconfig, "path to the kubeconfig, defaults to $KUBECONFIG then ~/.kube/config")

	return cmd
}

func runInstall(ctx context.Context, g *options.Global, o *options.InstallOption) error {
	runner := velero.NewRunner()
	if err := velero.CheckVersion(ctx, runner); err != nil {
		return err
	}

	s3c, err := cloud.NewS3Client(ctx, g.Profile, o.BackupRegion)
	if err != nil {
		return err
	}
	var iamc *cloud.IAM
	if o.CreateBucket {
		if iamc, err = cloud.NewIAMClient(ctx, g.Profile); err != nil {
			return err
		}
	}
	if err = prepareBucket(ctx, g, o, s3c, iamc); err != nil {
		return err
	}

	if err = velero.ValidateCredentialsFile(o.Secret); err != nil {
		return err
	}

	spec := velero.InstallSpec{
		Bucket:         o.Bucket,
		BackupRegion:   o.BackupRegion,
		SnapshotRegion: o.SnapshotRegion,
		SecretFile:     o.Secret,
	}
	log.Debugf("composed install spec: %s", util.ToJSON(spec))
	if err = runner.Run(ctx, spec.Args()...); err != nil {
		return err
	}

	if !o.WaitReady {
		return nil
	}

	kubeconfig, err := kube.ResolveKubeconfig(o.Kubeconfig)
	if err != nil {
		return err
	}
	kc, err := kube.NewClient(kubeconfig)
	if err != nil {
		return err
	}
	return kube.WaitDeploymentReady(ctx, kc,
		velero.DefaultVeleroNamespace, velero.DefaultVeleroDeploymentName, o.ReadyTimeout)
}

// prepareBucket enforces the bucket preconditions before velero
// install runs. iamc may be nil unless o.CreateBucket is set.
func prepareBucket(ctx context.Context, g *options.Global, o *options.InstallOption, s3c *cloud.S3, iamc *cloud.IAM) error {
	exists, err := s3c.BucketExists(ctx, o.Bucket)
	if err != nil {
		return err
	}

	if !o.CreateBucket {
		if !exists {
			return util.NewExitError(util.ExitGeneral,
				errors.Errorf("bucket %q doesn't exist under %q region", o.Bucket, o.BackupRegion))
		}
		return nil
	}

	if exists {
		return util.NewExitError(util.ExitGeneral,
			errors.Errorf("unable to create bucket %q, it already exists under %q region", o.Bucket, o.BackupRegion))
	}
	if err = s3c.CreateBucket(ctx, o.Bucket); err != nil {
		return util.NewExitError(util.ExitGeneral, err)
	}

	ok, err := iamc.UserExists(ctx, velero.DefaultVeleroIAMUser)
	if err != nil {
		return err
	}
	if !ok {
		return util.NewExitError(util.ExitMissingIAMUser,
			errors.Errorf("IAM user %q doesn't exist under profile %q", velero.DefaultVeleroIAMUser, g.Profile))
	}
	log.Infof("user %q exists under %q profile", velero.DefaultVeleroIAMUser, g.Profile)

	return iamc.AttachBucketPolicy(ctx,
		velero.DefaultVeleroIAMUser, velero.DefaultVeleroPolicyName, o.Bucket)
}
