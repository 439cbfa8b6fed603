package velero

import (
	"fmt"
	"strings"
)

// InstallSpec composes the argv for `velero install` against an AWS
// backup storage location.
type InstallSpec struct {
	Bucket         string
	BackupRegion   string
	SnapshotRegion string
	SecretFile     string
	Plugin         string
}

func (s InstallSpec) Args() []string {
	plugin := s.Plugin
	if plugin == "" {
		plugin = DefaultAWSPluginImage
	}

	return []string{
		"install",
		"--provider", DefaultProvider,
		"--plugins", plugin,
		"--bucket", s.Bucket,
		"--backup-location-config", fmt.Sprintf("region=%s", s.BackupRegion),
		"--snapshot-location-config", fmt.Sprintf("region=%s", s.SnapshotRegion),
		"--secret-file", s.SecretFile,
	}
}

// BackupSpec composes the argv for `velero backup create`.
type BackupSpec struct {
	Name              string
	ExcludeNamespaces []string
	Wait              bool
}

func (s BackupSpec) Args() []string {
	args := []string{"backup", "create", s.Name}
	if len(s.ExcludeNamespaces) > 0 {
		args = append(args, "--exclude-namespaces", strings.Join(s.ExcludeNamespaces, ","))
	}
	if s.Wait {
		args = append(args, "--wait")
	}
	return args
}

// RestoreSpec composes the argv for `velero restore create`.
type RestoreSpec struct {
	FromBackup string
	Wait       bool
}

func (s RestoreSpec) Args() []string {
	args := []string{"restore", "create", "--from-backup", s.FromBackup}
	if s.Wait {
		args = append(args, "--wait")
	}
	return args
}

// ScheduleSpec composes the argv for `velero schedule create`. The
// Schedule field carries a cadence velero understands, either a cron
// expression or an `@every Nh` shorthand.
type ScheduleSpec struct {
	Name              string
	Schedule          string
	IncludeNamespaces []string
	TTLHours          int
}

func (s ScheduleSpec) Args() []string {
	args := []string{
		"schedule", "create", s.Name,
		"--schedule", s.Schedule,
	}
	if len(s.IncludeNamespaces) > 0 {
		args = append(args, "--include-namespaces", strings.Join(s.IncludeNamespaces, ","))
	}
	args = append(args, "--ttl", fmt.Sprintf("%dh", s.TTLHours))
	return args
}

// DescribeSpec composes the argv for `velero backup|restore describe`.
type DescribeSpec struct {
	State string
	Name  string
}

func (s DescribeSpec) Args() []string {
	return []string{s.State, "describe", s.Name, "--details"}
}
