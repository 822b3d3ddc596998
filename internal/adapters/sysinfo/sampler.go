package sysinfo

import (
	"context"
	"errors"
	"os"
	"time"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultInterval separates the two CPU samples.
const DefaultInterval = 100 * time.Millisecond

var _ ports.MetricSampler = (*Sampler)(nil)

// Sampler implements ports.MetricSampler from /proc.
type Sampler struct {
	meminfoPath string
	statPath    string
	interval    time.Duration
}

// NewSampler creates a Sampler reading the live /proc files.
func NewSampler() *Sampler {
	return NewSamplerWithPaths("/proc/meminfo", "/proc/stat", DefaultInterval)
}

// NewSamplerWithPaths creates a Sampler reading the given files.
func NewSamplerWithPaths(meminfoPath, statPath string, interval time.Duration) *Sampler {
	return &Sampler{meminfoPath: meminfoPath, statPath: statPath, interval: interval}
}

// Memory returns total, used and available memory in bytes.
func (s *Sampler) Memory(_ context.Context) (domain.MemoryInfo, error) {
	f, err := os.Open(s.meminfoPath)
	if err != nil {
		return domain.MemoryInfo{}, zerr.With(errors.Join(domain.ErrIOFailed, err), "path", s.meminfoPath)
	}
	defer f.Close()

	info, err := parseMeminfo(f)
	if err != nil {
		return domain.MemoryInfo{}, zerr.With(err, "path", s.meminfoPath)
	}
	return info, nil
}

// CPUUsage samples /proc/stat twice, interval apart, and returns the mean
// per-core busy percentage.
func (s *Sampler) CPUUsage(ctx context.Context) (float64, error) {
	first, err := s.readStat()
	if err != nil {
		return 0, err
	}

	timer := time.NewTimer(s.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}

	second, err := s.readStat()
	if err != nil {
		return 0, err
	}
	return meanCoreUsage(first, second), nil
}

func (s *Sampler) readStat() (cpuSample, error) {
	f, err := os.Open(s.statPath)
	if err != nil {
		return cpuSample{}, zerr.With(errors.Join(domain.ErrIOFailed, err), "path", s.statPath)
	}
	defer f.Close()

	sample, err := parseStat(f)
	if err != nil {
		return cpuSample{}, zerr.With(err, "path", s.statPath)
	}
	return sample, nil
}
