// Package sysinfo samples memory and CPU usage from the Linux /proc filesystem.
package sysinfo

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/zerr"
)

const bytesPerKB = 1024

// parseMeminfo reads /proc/meminfo content. Used memory is total minus available;
// kernels without MemAvailable fall back to free + buffers + cached.
func parseMeminfo(r io.Reader) (domain.MemoryInfo, error) {
	values := make(map[string]uint64)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		if len(fields) > 1 && fields[1] == "kB" {
			v *= bytesPerKB
		}
		values[key] = v
	}
	if err := scanner.Err(); err != nil {
		return domain.MemoryInfo{}, errors.Join(domain.ErrIOFailed, err)
	}

	total, ok := values["MemTotal"]
	if !ok || total == 0 {
		return domain.MemoryInfo{}, zerr.Wrap(domain.ErrMetricUnavailable, "meminfo has no MemTotal")
	}

	available, ok := values["MemAvailable"]
	if !ok {
		available = values["MemFree"] + values["Buffers"] + values["Cached"]
	}
	available = min(available, total)

	return domain.MemoryInfo{
		Total:     total,
		Used:      total - available,
		Available: available,
	}, nil
}
