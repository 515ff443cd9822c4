package hw

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// ghw reports fields it cannot read with this value.
const ghwUnknown = "unknown"

// HostProvider reads the local machine through gopsutil and ghw.
// It keeps no state between calls; every method queries the OS again.
type HostProvider struct {
	logger logr.Logger
}

// NewHostProvider creates a new HostProvider.
func NewHostProvider(logger logr.Logger) *HostProvider {
	return &HostProvider{logger: logger.WithName("host-provider")}
}

// CPUs returns one entry per logical processor.
func (p *HostProvider) CPUs(ctx context.Context) ([]CPU, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		logical = 0
	}
	return padCPUs(infos, logical), nil
}

// padCPUs maps info entries to processors and, since some platforms report
// one entry per package rather than per thread, repeats the first entry up to
// the logical count.
func padCPUs(infos []cpu.InfoStat, logical int) []CPU {
	cpus := make([]CPU, 0, len(infos))
	for i, info := range infos {
		cpus = append(cpus, CPU{Brand: strings.TrimSpace(info.ModelName), Name: fmt.Sprintf("cpu%d", i)})
	}
	if len(cpus) == 0 {
		return cpus
	}
	for i := len(cpus); i < logical; i++ {
		cpus = append(cpus, CPU{Brand: cpus[0].Brand, Name: fmt.Sprintf("cpu%d", i)})
	}
	return cpus
}

// PhysicalCores returns the number of physical cores.
func (p *HostProvider) PhysicalCores(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("failed to get physical core count: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("physical core count not reported")
	}
	return n, nil
}

// Memory returns used and total virtual memory. Used is total minus available.
func (p *HostProvider) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, fmt.Errorf("failed to get memory info: %w", err)
	}
	return toMemory(vm), nil
}

func toMemory(vm *mem.VirtualMemoryStat) Memory {
	m := Memory{Total: vm.Total}
	if vm.Total > vm.Available {
		m.Used = vm.Total - vm.Available
	}
	return m
}

// Disks returns the mounted physical disks. Partitions whose usage cannot be
// read are skipped.
func (p *HostProvider) Disks(ctx context.Context) ([]Disk, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get disk partitions: %w", err)
	}

	return p.toDisks(partitions, func(path string) (*disk.UsageStat, error) {
		return disk.UsageWithContext(ctx, path)
	}), nil
}

func (p *HostProvider) toDisks(partitions []disk.PartitionStat, usageOf func(path string) (*disk.UsageStat, error)) []Disk {
	var disks []Disk
	for _, part := range partitions {
		usage, err := usageOf(part.Mountpoint)
		if err != nil {
			p.logger.V(1).Info("skipping partition", "mountpoint", part.Mountpoint, "error", err.Error())
			continue
		}
		disks = append(disks, Disk{
			Name:       part.Device,
			FileSystem: part.Fstype,
			MountPoint: part.Mountpoint,
			Total:      usage.Total,
			Available:  usage.Free,
		})
	}
	return disks
}

// Interfaces returns per-interface traffic counters in the order the OS lists them.
func (p *HostProvider) Interfaces(ctx context.Context) ([]NetInterface, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get network counters: %w", err)
	}

	ifaces := make([]NetInterface, 0, len(counters))
	for _, c := range counters {
		ifaces = append(ifaces, NetInterface{Name: c.Name, BytesSent: c.BytesSent, BytesRecv: c.BytesRecv})
	}
	return ifaces, nil
}

// readBaseboard queries ghw without letting it print warnings to stderr.
var readBaseboard = func() (*ghw.BaseboardInfo, error) {
	return ghw.Baseboard(ghw.WithDisableWarnings())
}

type baseboardResult struct {
	board *ghw.BaseboardInfo
	err   error
}

// Motherboard returns the baseboard identity, or nil if none is readable.
// ghw takes no context, so the read runs in its own goroutine and is
// abandoned when ctx is done.
func (p *HostProvider) Motherboard(ctx context.Context) (*Motherboard, error) {
	read := readBaseboard
	done := make(chan baseboardResult, 1)
	go func() {
		board, err := read()
		done <- baseboardResult{board: board, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to get baseboard info: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("failed to get baseboard info: %w", res.err)
		}
		return toMotherboard(res.board), nil
	}
}

// toMotherboard returns nil when ghw could read none of the fields.
func toMotherboard(board *ghw.BaseboardInfo) *Motherboard {
	if board == nil {
		return nil
	}
	mb := &Motherboard{
		Vendor:  ghwValue(board.Vendor),
		Model:   ghwValue(board.Product),
		Version: ghwValue(board.Version),
	}
	if *mb == (Motherboard{}) {
		return nil
	}
	return mb
}

// Host retrieves key information about the host operating system.
func (p *HostProvider) Host(ctx context.Context) (SystemInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to get host info: %w", err)
	}

	return SystemInfo{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Distro:        info.Platform,
		Version:       info.PlatformVersion,
		KernelVersion: info.KernelVersion,
		Architecture:  info.KernelArch,
	}, nil
}

func ghwValue(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, ghwUnknown) {
		return ""
	}
	return s
}
