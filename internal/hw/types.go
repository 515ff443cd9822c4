package hw

import "context"

// Placeholder values used when the provider has nothing to report.
const (
	NotAvailable       = "N/A"
	UnknownCPU         = "Unknown CPU"
	UnknownMotherboard = "Unknown Motherboard"
	UnknownVendor      = "UnknownVendor"
	UnknownModel       = "UnknownModel"
	UnknownVersion     = "UnknownVersion"
)

// HardwareSnapshot is a display-ready, point-in-time view of the host hardware.
// Every field is always set; missing data is represented by a placeholder.
type HardwareSnapshot struct {
	CPU         string `json:"cpu" yaml:"cpu"`
	RAM         string `json:"ram" yaml:"ram"`
	Storage     string `json:"storage" yaml:"storage"`
	GPU         string `json:"gpu" yaml:"gpu"`
	Network     string `json:"network" yaml:"network"`
	TPM         string `json:"tpm" yaml:"tpm"`
	Motherboard string `json:"motherboard" yaml:"motherboard"`
}

// SystemInfo holds details about the host system.
type SystemInfo struct {
	Hostname      string `json:"hostname" yaml:"hostname"`
	OS            string `json:"os" yaml:"os"`
	Distro        string `json:"distro" yaml:"distro"`
	Version       string `json:"version" yaml:"version"`
	KernelVersion string `json:"kernelVersion" yaml:"kernelVersion"`
	Architecture  string `json:"architecture" yaml:"architecture"`
}

// CPU is a single enumerated logical processor.
type CPU struct {
	Brand string
	Name  string
}

// Memory holds memory counters in bytes.
type Memory struct {
	Used  uint64
	Total uint64
}

// Disk is a mounted disk. Sizes are in bytes.
type Disk struct {
	Name       string
	FileSystem string
	MountPoint string
	Total      uint64
	Available  uint64
}

// NetInterface holds the cumulative traffic counters of a network interface.
type NetInterface struct {
	Name      string
	BytesSent uint64
	BytesRecv uint64
}

// Motherboard identifies the baseboard. Empty fields are unknown.
type Motherboard struct {
	Vendor  string
	Model   string
	Version string
}

// Provider is an interface for the system introspection backend.
type Provider interface {
	CPUs(ctx context.Context) ([]CPU, error)
	PhysicalCores(ctx context.Context) (int, error)
	Memory(ctx context.Context) (Memory, error)
	Disks(ctx context.Context) ([]Disk, error)
	Interfaces(ctx context.Context) ([]NetInterface, error)
	// Motherboard returns nil when no baseboard could be identified.
	Motherboard(ctx context.Context) (*Motherboard, error)
	Host(ctx context.Context) (SystemInfo, error)
}
