package hw

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadCPUs(t *testing.T) {
	tests := []struct {
		name    string
		infos   []cpu.InfoStat
		logical int
		want    []CPU
	}{
		{
			name:    "no entries",
			logical: 8,
			want:    []CPU{},
		},
		{
			name:    "one entry per thread",
			infos:   []cpu.InfoStat{{ModelName: "Intel(R) Core(TM) i5"}, {ModelName: "Intel(R) Core(TM) i5"}},
			logical: 2,
			want:    []CPU{{Brand: "Intel(R) Core(TM) i5", Name: "cpu0"}, {Brand: "Intel(R) Core(TM) i5", Name: "cpu1"}},
		},
		{
			name:    "one entry per package",
			infos:   []cpu.InfoStat{{ModelName: " Apple M1 "}},
			logical: 3,
			want: []CPU{
				{Brand: "Apple M1", Name: "cpu0"},
				{Brand: "Apple M1", Name: "cpu1"},
				{Brand: "Apple M1", Name: "cpu2"},
			},
		},
		{
			name:    "logical count unknown",
			infos:   []cpu.InfoStat{{ModelName: ""}},
			logical: 0,
			want:    []CPU{{Brand: "", Name: "cpu0"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, padCPUs(tt.infos, tt.logical))
		})
	}
}

func TestToMemory(t *testing.T) {
	vm := &mem.VirtualMemoryStat{Total: 8589934592, Available: 6442450944, Used: 1073741824}
	assert.Equal(t, Memory{Used: 2147483648, Total: 8589934592}, toMemory(vm))
	assert.Equal(t, "2.00 GB / 8.00 GB", formatRAM(toMemory(vm)))

	assert.Equal(t, Memory{Used: 0, Total: 1024}, toMemory(&mem.VirtualMemoryStat{Total: 1024, Available: 4096}))
}

func TestToDisksSkipsUnreadablePartitions(t *testing.T) {
	p := NewHostProvider(testr.New(t))
	partitions := []disk.PartitionStat{
		{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
		{Device: "/dev/sdb1", Mountpoint: "/mnt/locked", Fstype: "xfs"},
		{Device: "/dev/sdc1", Mountpoint: "/data", Fstype: "btrfs"},
	}
	usageOf := func(path string) (*disk.UsageStat, error) {
		if path == "/mnt/locked" {
			return nil, errors.New("permission denied")
		}
		return &disk.UsageStat{Path: path, Total: 4294967296, Free: 1073741824}, nil
	}

	disks := p.toDisks(partitions, usageOf)

	require.Len(t, disks, 2)
	assert.Equal(t, Disk{Name: "/dev/sda1", FileSystem: "ext4", MountPoint: "/", Total: 4294967296, Available: 1073741824}, disks[0])
	assert.Equal(t, "/dev/sdc1", disks[1].Name)
	assert.Equal(t, "/dev/sda1 (ext4) - 3.00 GB / 4.00 GB\n/dev/sdc1 (btrfs) - 3.00 GB / 4.00 GB", formatStorage(disks))
}

func TestToMotherboard(t *testing.T) {
	tests := []struct {
		name  string
		board *ghw.BaseboardInfo
		want  string
	}{
		{
			name: "nil info",
			want: "Unknown Motherboard",
		},
		{
			name:  "all fields unknown",
			board: &ghw.BaseboardInfo{Vendor: "unknown", Product: "unknown", Version: "unknown"},
			want:  "Unknown Motherboard",
		},
		{
			name:  "vendor only",
			board: &ghw.BaseboardInfo{Vendor: "Gigabyte Technology Co., Ltd.", Product: "unknown", Version: ""},
			want:  "Gigabyte Technology Co., Ltd. UnknownModel (UnknownVersion)",
		},
		{
			name:  "complete",
			board: &ghw.BaseboardInfo{Vendor: "Dell Inc.", Product: "0K240Y", Version: "A02"},
			want:  "Dell Inc. 0K240Y (A02)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMotherboard(toMotherboard(tt.board)))
		})
	}
}

func stubBaseboard(t *testing.T, fn func() (*ghw.BaseboardInfo, error)) {
	orig := readBaseboard
	readBaseboard = fn
	t.Cleanup(func() { readBaseboard = orig })
}

func TestMotherboardError(t *testing.T) {
	stubBaseboard(t, func() (*ghw.BaseboardInfo, error) {
		return nil, errors.New("dmi not available")
	})

	mb, err := NewHostProvider(testr.New(t)).Motherboard(context.Background())
	require.Error(t, err)
	assert.Nil(t, mb)
}

func TestMotherboardHonoursContext(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	stubBaseboard(t, func() (*ghw.BaseboardInfo, error) {
		<-release
		return &ghw.BaseboardInfo{Vendor: "ASRock"}, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	mb, err := NewHostProvider(testr.New(t)).Motherboard(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, mb)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCollectTimeoutBoundsMotherboard(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	stubBaseboard(t, func() (*ghw.BaseboardInfo, error) {
		<-release
		return &ghw.BaseboardInfo{Vendor: "ASRock"}, nil
	})

	c := NewCollector(WithLogger(testr.New(t)), WithTimeout(50*time.Millisecond))
	snap := c.Collect(context.Background())

	assert.Equal(t, UnknownMotherboard, snap.Motherboard)
}

func TestCollectLocalHost(t *testing.T) {
	snap := NewCollector(WithLogger(testr.New(t))).Collect(context.Background())

	assert.Equal(t, NotAvailable, snap.GPU)
	assert.Equal(t, NotAvailable, snap.TPM)
	assert.NotEmpty(t, snap.CPU)
	assert.Contains(t, snap.CPU, "(logical: ")
	assert.Contains(t, snap.RAM, " GB / ")
	assert.NotEmpty(t, snap.Motherboard)
}
