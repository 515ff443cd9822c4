package hw

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// Collector builds hardware snapshots from a Provider.
// It holds no mutable state and is safe for concurrent use.
type Collector struct {
	logger         logr.Logger
	provider       Provider
	sortInterfaces bool
	timeout        time.Duration
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger used to report provider failures.
func WithLogger(logger logr.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// WithProvider replaces the host provider.
func WithProvider(p Provider) Option {
	return func(c *Collector) {
		c.provider = p
	}
}

// WithSortedInterfaces orders network lines by interface name instead of
// the provider's enumeration order.
func WithSortedInterfaces(sorted bool) Option {
	return func(c *Collector) {
		c.sortInterfaces = sorted
	}
}

// WithTimeout bounds a single collection. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) {
		c.timeout = d
	}
}

// NewCollector creates a new Collector. Without WithProvider it reads the local host.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{logger: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithName("hw")
	if c.provider == nil {
		c.provider = NewHostProvider(c.logger)
	}
	return c
}

// GetHardwareInfo collects a snapshot of the local host with default settings.
func GetHardwareInfo(ctx context.Context) HardwareSnapshot {
	return NewCollector().Collect(ctx)
}

// Collect queries the provider and returns a snapshot. It never fails:
// every query that errors or panics degrades to a placeholder.
func (c *Collector) Collect(ctx context.Context) HardwareSnapshot {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cpus := query(ctx, c.logger, "cpus", c.provider.CPUs)
	physical := query(ctx, c.logger, "physical cores", c.provider.PhysicalCores)
	memory := query(ctx, c.logger, "memory", c.provider.Memory)
	disks := query(ctx, c.logger, "disks", c.provider.Disks)
	ifaces := query(ctx, c.logger, "network interfaces", c.provider.Interfaces)
	board := query(ctx, c.logger, "motherboard", c.provider.Motherboard)

	return HardwareSnapshot{
		CPU:         formatCPU(cpus, physical),
		RAM:         formatRAM(memory),
		Storage:     formatStorage(disks),
		GPU:         NotAvailable,
		Network:     formatNetwork(ifaces, c.sortInterfaces),
		TPM:         NotAvailable,
		Motherboard: formatMotherboard(board),
	}
}

// System returns the host operating system identity.
func (c *Collector) System(ctx context.Context) (SystemInfo, error) {
	info, err := c.provider.Host(ctx)
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to get system info: %w", err)
	}
	return info, nil
}

// query runs a single provider call, turning errors and panics into the zero value.
func query[T any](ctx context.Context, logger logr.Logger, what string, fn func(context.Context) (T, error)) (v T) {
	defer func() {
		if r := recover(); r != nil {
			logger.V(1).Info("provider query panicked", "query", what, "panic", r)
			var zero T
			v = zero
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		logger.V(1).Info("provider query failed", "query", what, "error", err.Error())
		var zero T
		return zero
	}
	return v
}
