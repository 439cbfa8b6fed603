package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/alapatipavan/velero-wrapper/pkg/util"
	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/alapatipavan/velero-wrapper/pkg/velero"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Global carries the root persistent flags shared by every subcommand.
type Global struct {
	LogLevel string `json:"logLevel"`
	Profile  string `json:"profile"`
}

func NewGlobal() *Global {
	return &Global{
		LogLevel: "info",
		Profile:  "default",
	}
}

type InstallOption struct {
	Bucket         string        `json:"bucket"`
	BackupRegion   string        `json:"backupRegion"`
	SnapshotRegion string        `json:"snapshotRegion"`
	Secret         string        `json:"secret"`
	CreateBucket   bool          `json:"createBucket"`
	WaitReady      bool          `json:"waitReady"`
	ReadyTimeout   time.Duration `json:"readyTimeout"`
	Kubeconfig     string        `json:"kubeconfig,omitempty"`
}

func NewInstallOption() *InstallOption {
	return &InstallOption{
		WaitReady:    true,
		ReadyTimeout: 5 * time.Minute,
	}
}

func (o *InstallOption) Validate() error {
	log.Debugf("flag options: %s", util.PrettyJSON(o))

	if o.Bucket == "" {
		return errors.New("install requires a 'bucket' name")
	}
	if o.BackupRegion == "" || o.SnapshotRegion == "" {
		return errors.New("install requires both 'backup-region' and 'snapshot-region'")
	}
	if o.Secret == "" {
		return errors.New("install requires a 'secret' credentials file")
	}
	if !util.FilePathExists(o.Secret) {
		return errors.Errorf("secret file %q does not exist", o.Secret)
	}
	return nil
}

type BackupOption struct {
	Name              string   `json:"name"`
	ExcludeNamespaces []string `json:"excludeNamespaces"`
	Wait              bool     `json:"wait"`
}

func NewBackupOption() *BackupOption {
	return &BackupOption{
		ExcludeNamespaces: velero.DefaultExcludedNamespaces,
		Wait:              true,
	}
}

// Complete fills a generated backup name when none was given.
func (o *BackupOption) Complete() error {
	if o.Name == "" {
		o.Name = fmt.Sprintf("backup-%s", strings.Split(uuid.NewString(), "-")[0])
		log.Infof("no backup name given, generated %q", o.Name)
	}
	return nil
}

func (o *BackupOption) Validate() error {
	log.Debugf("flag options: %s", util.PrettyJSON(o))

	if o.Name == "" {
		return errors.New("backup requires a 'name'")
	}
	return nil
}

type RestoreOption struct {
	FromBackup string `json:"fromBackup"`
	Wait       bool   `json:"wait"`
}

func NewRestoreOption() *RestoreOption {
	return &RestoreOption{Wait: true}
}

func (o *RestoreOption) Validate() error {
	log.Debugf("flag options: %s", util.PrettyJSON(o))

	if o.FromBackup == "" {
		return errors.New("restore requires a 'from-backup' name")
	}
	return nil
}

type ScheduleOption struct {
	Name              string   `json:"name"`
	IncludeNamespaces []string `json:"includeNamespaces"`
	EveryHours        int      `json:"everyHours,omitempty"`
	Cron              string   `json:"cron,omitempty"`
	TTLHours          int      `json:"ttlHours"`

	// Schedule is the composed cadence passed to velero, set by
	// Complete.
	Schedule string `json:"schedule,omitempty"`
}

func NewScheduleOption() *ScheduleOption {
	return &ScheduleOption{
		IncludeNamespaces: velero.DefaultIncludedNamespaces,
	}
}

func (o *ScheduleOption) Complete() error {
	if o.Cron != "" {
		o.Schedule = o.Cron
	} else if o.EveryHours > 0 {
		o.Schedule = fmt.Sprintf("@every %dh", o.EveryHours)
	}
	return nil
}

func (o *ScheduleOption) Validate() error {
	log.Debugf("flag options: %s", util.PrettyJSON(o))

	if o.Name == "" {
		return errors.New("schedule requires a 'name'")
	}
	if (o.Cron == "") == (o.EveryHours <= 0) {
		return errors.New("schedule requires exactly one of 'cron' or 'every'")
	}
	if o.TTLHours <= 0 {
		return errors.New("schedule requires a positive 'ttl'")
	}

	if _, err := cron.ParseStandard(o.Schedule); err != nil {
		return errors.Wrapf(err, "invalid schedule cadence %q", o.Schedule)
	}
	return nil
}

// DescribeStates are the velero object kinds describe understands.
var DescribeStates = []string{"backup", "restore"}

type DescribeOption struct {
	State string `json:"state"`
	Name  string `json:"name"`
}

func NewDescribeOption() *DescribeOption {
	return &DescribeOption{}
}

func (o *DescribeOption) Validate() error {
	log.Debugf("flag options: %s", util.PrettyJSON(o))

	if o.Name == "" {
		return errors.New("describe requires a 'name'")
	}
	if !util.ListContains(DescribeStates, o.State) {
		return errors.Errorf("describe 'state' must be one of %v, got %q", DescribeStates, o.State)
	}
	return nil
}
