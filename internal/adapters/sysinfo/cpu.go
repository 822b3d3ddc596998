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

// cpuTimes stores raw CPU time counters from /proc/stat.
type cpuTimes struct {
	user    uint64
	nice    uint64
	system  uint64
	idle    uint64
	iowait  uint64
	irq     uint64
	softirq uint64
	steal   uint64
}

func (c cpuTimes) total() uint64 {
	return c.user + c.nice + c.system + c.idle + c.iowait + c.irq + c.softirq + c.steal
}

func (c cpuTimes) idleTime() uint64 {
	return c.idle + c.iowait
}

// coreTimes is one per-core line, keyed by its cpuN label.
type coreTimes struct {
	label string
	times cpuTimes
}

// cpuSample is one read of /proc/stat: the aggregate line and one entry per core.
type cpuSample struct {
	total cpuTimes
	cores []coreTimes
}

func parseStat(r io.Reader) (cpuSample, error) {
	var s cpuSample
	seenTotal := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 || !strings.HasPrefix(fields[0], "cpu") {
			continue
		}
		t, ok := parseCPULine(fields[1:])
		if !ok {
			continue
		}
		if fields[0] == "cpu" {
			s.total = t
			seenTotal = true
			continue
		}
		s.cores = append(s.cores, coreTimes{label: fields[0], times: t})
	}
	if err := scanner.Err(); err != nil {
		return cpuSample{}, errors.Join(domain.ErrIOFailed, err)
	}
	if !seenTotal && len(s.cores) == 0 {
		return cpuSample{}, zerr.Wrap(domain.ErrMetricUnavailable, "stat has no cpu lines")
	}
	return s, nil
}

// parseCPULine parses the counters after the cpu label. Older kernels
// report fewer than eight columns; missing ones are zero.
func parseCPULine(fields []string) (cpuTimes, bool) {
	var values [8]uint64
	for i := 0; i < len(values) && i < len(fields); i++ {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return cpuTimes{}, false
		}
		values[i] = v
	}
	return cpuTimes{
		user:    values[0],
		nice:    values[1],
		system:  values[2],
		idle:    values[3],
		iowait:  values[4],
		irq:     values[5],
		softirq: values[6],
		steal:   values[7],
	}, true
}

// usage returns the busy percentage between two readings, clamped to 0..100.
func usage(prev, curr cpuTimes) float64 {
	totalDelta := safeSubtract(curr.total(), prev.total())
	if totalDelta == 0 {
		return 0
	}
	idleDelta := safeSubtract(curr.idleTime(), prev.idleTime())
	busy := safeSubtract(totalDelta, idleDelta)
	return min(float64(busy)/float64(totalDelta)*100, 100)
}

// meanCoreUsage averages usage over the cores present in both samples.
// Without a common core it uses the aggregate line.
func meanCoreUsage(prev, curr cpuSample) float64 {
	before := make(map[string]cpuTimes, len(prev.cores))
	for _, c := range prev.cores {
		before[c.label] = c.times
	}

	var (
		sum float64
		n   int
	)
	for _, c := range curr.cores {
		p, ok := before[c.label]
		if !ok {
			continue
		}
		sum += usage(p, c.times)
		n++
	}
	if n == 0 {
		return usage(prev.total, curr.total)
	}
	return sum / float64(n)
}

func safeSubtract(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
