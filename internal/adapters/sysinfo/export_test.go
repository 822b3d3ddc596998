package sysinfo

import (
	"io"

	"go.trai.ch/wrp/internal/core/domain"
)

func ParseMeminfo(r io.Reader) (domain.MemoryInfo, error) { return parseMeminfo(r) }

// MeanCoreUsage parses two /proc/stat snapshots and returns the mean core usage.
func MeanCoreUsage(before, after io.Reader) (float64, error) {
	prev, err := parseStat(before)
	if err != nil {
		return 0, err
	}
	curr, err := parseStat(after)
	if err != nil {
		return 0, err
	}
	return meanCoreUsage(prev, curr), nil
}
