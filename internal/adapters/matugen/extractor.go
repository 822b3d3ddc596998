// Package matugen extracts wallpaper color palettes with the matugen CLI.
package matugen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ColorExtractor = (*Extractor)(nil)

// Extractor implements ports.ColorExtractor by running the extraction tool.
type Extractor struct {
	runner ports.ProcessRunner
	tool   string
	scheme string
}

// NewExtractor creates an Extractor invoking tool with the given palette scheme.
func NewExtractor(runner ports.ProcessRunner, tool, scheme string) *Extractor {
	return &Extractor{runner: runner, tool: tool, scheme: scheme}
}

// Args returns the non-interactive argument list for wallpaper.
func (e *Extractor) Args(wallpaper string) []string {
	return []string{
		"image", wallpaper,
		"--dry-run",
		"--json", "hex",
		"--type", e.scheme,
		"--mode", "dark",
	}
}

// Extract runs the tool on wallpaper and returns its role to hex mapping.
func (e *Extractor) Extract(ctx context.Context, wallpaper string) (map[string]string, error) {
	out, err := e.runner.Run(ctx, e.tool, e.Args(wallpaper))
	if err != nil {
		return nil, err
	}
	return ParseColors(out)
}

// ParseColors reads the tool's JSON report. Each color prefers its dark
// variant, then default, then a bare string value; anything else is skipped.
// A colors value that is not an object yields an empty mapping.
func ParseColors(data []byte) (map[string]string, error) {
	var report map[string]json.RawMessage
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidExtractionOutput, err), "parse extraction output")
	}

	raw, ok := report["colors"]
	if !ok {
		return nil, domain.ErrColorsMissing
	}

	colors := map[string]string{}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return colors, nil
	}

	for name, value := range entries {
		if s, ok := asString(value); ok {
			colors[name] = s
			continue
		}

		var variants map[string]json.RawMessage
		if err := json.Unmarshal(value, &variants); err != nil {
			continue
		}
		for _, variant := range []string{"dark", "default"} {
			if s, ok := asString(variants[variant]); ok {
				colors[name] = s
				break
			}
		}
	}

	return colors, nil
}

// asString decodes raw only when it is a JSON string; null is not a string.
func asString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
