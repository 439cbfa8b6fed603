package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallOptionValidate(t *testing.T) {
	secret := filepath.Join(t.TempDir(), "credentials-velero")
	require.NoError(t, os.WriteFile(secret, []byte("[default]\n"), 0o600))

	tests := []struct {
		name    string
		opt     InstallOption
		wantErr bool
	}{
		{
			name: "complete",
			opt: InstallOption{
				Bucket:         "b",
				BackupRegion:   "us-west-2",
				SnapshotRegion: "us-west-2",
				Secret:         secret,
			},
		},
		{
			name:    "missing bucket",
			opt:     InstallOption{BackupRegion: "r", SnapshotRegion: "r", Secret: secret},
			wantErr: true,
		},
		{
			name:    "missing regions",
			opt:     InstallOption{Bucket: "b", Secret: secret},
			wantErr: true,
		},
		{
			name:    "missing secret",
			opt:     InstallOption{Bucket: "b", BackupRegion: "r", SnapshotRegion: "r"},
			wantErr: true,
		},
		{
			name: "secret file absent",
			opt: InstallOption{
				Bucket: "b", BackupRegion: "r", SnapshotRegion: "r",
				Secret: filepath.Join(t.TempDir(), "nope"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opt.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBackupOptionCompleteGeneratesName(t *testing.T) {
	o := NewBackupOption()
	require.NoError(t, o.Complete())

	assert.NotEmpty(t, o.Name)
	assert.Regexp(t, `^backup-[0-9a-f]{8}$`, o.Name)
	assert.NoError(t, o.Validate())
}

func TestBackupOptionKeepsGivenName(t *testing.T) {
	o := NewBackupOption()
	o.Name = "nightly"
	require.NoError(t, o.Complete())
	assert.Equal(t, "nightly", o.Name)
}

func TestRestoreOptionValidate(t *testing.T) {
	o := NewRestoreOption()
	assert.Error(t, o.Validate())

	o.FromBackup = "nightly"
	assert.NoError(t, o.Validate())
}

func TestScheduleOptionEvery(t *testing.T) {
	o := NewScheduleOption()
	o.Name = "daily"
	o.EveryHours = 24
	o.TTLHours = 72

	require.NoError(t, o.Complete())
	require.NoError(t, o.Validate())
	assert.Equal(t, "@every 24h", o.Schedule)
}

func TestScheduleOptionCron(t *testing.T) {
	o := NewScheduleOption()
	o.Name = "daily"
	o.Cron = "0 3 * * *"
	o.TTLHours = 72

	require.NoError(t, o.Complete())
	require.NoError(t, o.Validate())
	assert.Equal(t, "0 3 * * *", o.Schedule)
}

func TestScheduleOptionValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ScheduleOption)
	}{
		{"missing name", func(o *ScheduleOption) { o.Name = "" }},
		{"both cadences", func(o *ScheduleOption) { o.Cron = "0 3 * * *" }},
		{"neither cadence", func(o *ScheduleOption) { o.EveryHours = 0 }},
		{"bad cron", func(o *ScheduleOption) { o.EveryHours = 0; o.Cron = "not a cron" }},
		{"missing ttl", func(o *ScheduleOption) { o.TTLHours = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewScheduleOption()
			o.Name = "daily"
			o.EveryHours = 24
			o.TTLHours = 72
			tt.modify(o)

			require.NoError(t, o.Complete())
			assert.Error(t, o.Validate())
		})
	}
}

func TestDescribeOptionValidate(t *testing.T) {
	for _, state := range []string{"backup", "restore"} {
		o := DescribeOption{State: state, Name: "nightly"}
		assert.NoError(t, o.Validate())
	}

	assert.Error(t, (&DescribeOption{State: "schedule", Name: "n"}).Validate())
	assert.Error(t, (&DescribeOption{State: "backup"}).Validate())
}
