package hw

import (
	"fmt"
	"sort"
	"strings"
)

const (
	bytesPerGB = 1024 * 1024 * 1024
	bytesPerMB = 1024 * 1024
)

func toGB(bytes uint64) float64 {
	return float64(bytes) / bytesPerGB
}

func toMB(bytes uint64) float64 {
	return float64(bytes) / bytesPerMB
}

// formatCPU renders the first processor's label with the core counts.
// physical <= 0 means the physical count is unknown and the logical count is used.
func formatCPU(cpus []CPU, physical int) string {
	label := UnknownCPU
	if len(cpus) > 0 {
		label = cpus[0].Brand
		if label == "" {
			label = cpus[0].Name
		}
	}

	logical := len(cpus)
	if physical <= 0 {
		physical = logical
	}

	return fmt.Sprintf("%s (logical: %d, physical: %d)", label, logical, physical)
}

func formatRAM(m Memory) string {
	return fmt.Sprintf("%.2f GB / %.2f GB", toGB(m.Used), toGB(m.Total))
}

func formatDisk(d Disk) string {
	var used uint64
	if d.Total > d.Available {
		used = d.Total - d.Available
	}
	return fmt.Sprintf("%s (%s) - %.2f GB / %.2f GB", d.Name, d.FileSystem, toGB(used), toGB(d.Total))
}

func formatStorage(disks []Disk) string {
	lines := make([]string, 0, len(disks))
	for _, d := range disks {
		lines = append(lines, formatDisk(d))
	}
	return strings.Join(lines, "\n")
}

// formatNetwork keeps the provider's order unless sorted is set.
func formatNetwork(ifaces []NetInterface, sorted bool) string {
	if sorted {
		ifaces = append([]NetInterface(nil), ifaces...)
		sort.SliceStable(ifaces, func(i, j int) bool {
			return ifaces[i].Name < ifaces[j].Name
		})
	}

	lines := make([]string, 0, len(ifaces))
	for _, n := range ifaces {
		lines = append(lines, fmt.Sprintf("%s: Sent %.2f MB, Received %.2f MB", n.Name, toMB(n.BytesSent), toMB(n.BytesRecv)))
	}
	return strings.Join(lines, "\n")
}

func formatMotherboard(mb *Motherboard) string {
	if mb == nil {
		return UnknownMotherboard
	}
	return fmt.Sprintf("%s %s (%s)",
		orDefault(mb.Vendor, UnknownVendor),
		orDefault(mb.Model, UnknownModel),
		orDefault(mb.Version, UnknownVersion))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
