package domain

// MemoryInfo is a point-in-time memory reading in bytes.
type MemoryInfo struct {
	Total     uint64
	Used      uint64
	Available uint64
}

// UsedPercent returns Used as a share of Total.
func (m MemoryInfo) UsedPercent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Used) / float64(m.Total) * 100
}
