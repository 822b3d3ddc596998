// Package wpctl reads and changes audio sinks through the wpctl CLI.
package wpctl

import (
	"strconv"
	"strings"

	"go.trai.ch/wrp/internal/core/domain"
)

const (
	sinksHeader  = "Sinks:"
	volumeMarker = "[vol:"
	defaultMark  = "*"
)

var sectionEnds = []string{"Sources:", "Streams:", "Filters:"}

// ParseSinks extracts the sinks listed in a `wpctl status` report, in report order.
// Lines inside the sinks section that do not describe a sink are skipped.
func ParseSinks(report string) []domain.AudioSink {
	var sinks []domain.AudioSink
	inSinks := false

	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.Contains(line, sinksHeader) {
			inSinks = true
			continue
		}
		if inSinks && containsAny(line, sectionEnds) {
			break
		}
		if !inSinks {
			continue
		}
		if sink, ok := parseSinkLine(line); ok {
			sinks = append(sinks, sink)
		}
	}

	return sinks
}

// parseSinkLine parses lines shaped like ` │  *   34. Headset [vol: 0.60]`.
func parseSinkLine(line string) (domain.AudioSink, bool) {
	isDefault := strings.Contains(line, defaultMark)

	start := strings.IndexFunc(line, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return domain.AudioSink{}, false
	}
	cleaned := line[start:]

	idText, rest, ok := strings.Cut(cleaned, ".")
	if !ok {
		return domain.AudioSink{}, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(idText), 10, 32)
	if err != nil {
		return domain.AudioSink{}, false
	}
	rest = strings.TrimSpace(rest)

	sink := domain.AudioSink{ID: uint32(id), IsDefault: isDefault}

	name, volText, hasVolume := strings.Cut(rest, volumeMarker)
	if !hasVolume {
		sink.Name = rest
		return sink, true
	}
	sink.Name = strings.TrimSpace(name)

	if end := strings.IndexByte(volText, ']'); end >= 0 {
		volText = volText[:end]
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(volText), 64); err == nil {
		sink.Volume = &v
	}

	return sink, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
