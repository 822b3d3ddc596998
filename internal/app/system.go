package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
)

// ShowSystem prints memory usage and the averaged CPU load.
func (a *App) ShowSystem(ctx context.Context) error {
	mem, err := a.sampler.Memory(ctx)
	if err != nil {
		return zerr.Wrap(err, "read memory usage")
	}
	cpu, err := a.sampler.CPUUsage(ctx)
	if err != nil {
		return zerr.Wrap(err, "sample cpu usage")
	}

	p := a.printer(a.Palette(ctx))
	p.Header("System")
	p.KV("Memory", fmt.Sprintf("%s / %s (%.1f%%)", FormatBytes(mem.Used), FormatBytes(mem.Total), mem.UsedPercent()))
	p.KV("Available", FormatBytes(mem.Available))
	p.KV("CPU", fmt.Sprintf("%.1f%%", cpu))
	p.Blank()
	return nil
}

// FormatBytes renders n in binary units with one decimal.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
