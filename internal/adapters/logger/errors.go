package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr.Error, which can report its own message without the chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per message. Joined errors
// contribute one entry per member. Metadata attached to a wrapper without a
// message of its own is carried to the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if m, ok := current.(messager); ok {
				meta := map[string]any{}
				if md, ok := current.(metadataer); ok {
					meta = md.Metadata()
				}
				if m.Message() == "" {
					pending = mergeMeta(pending, meta)
				} else {
					entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: mergeMeta(meta, pending)})
					pending = nil
				}
				current = errors.Unwrap(current)
				continue
			}

			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, e := range joined.Unwrap() {
					walk(e)
				}
				return
			}

			var meta map[string]any
			if pending != nil {
				meta, pending = pending, nil
			}
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: meta})
			return
		}
	}
	walk(err)

	return entries
}

func mergeMeta(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = map[string]any{}
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders entries as a main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, l := range msgLines[1:] {
				lines = append(lines, "       "+l)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, l := range msgLines[1:] {
			lines = append(lines, "      "+l)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any, indent string) []string {
	lines := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		v := fmt.Sprint(meta[k])
		if v == "" {
			continue
		}
		vLines := strings.Split(v, "\n")
		lines = append(lines, indent+k+": "+vLines[0])
		for _, l := range vLines[1:] {
			lines = append(lines, indent+strings.Repeat(" ", len(k)+2)+l)
		}
	}
	return lines
}
