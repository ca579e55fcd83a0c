package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/quick"
)

func writeLines(w io.Writer, lines []string, cfg Configuration) error {
	var out bytes.Buffer

	switch cfg.Format {
	case FORMAT_JSON:
		enc := json.NewEncoder(&out)
		enc.SetIndent("", "\t")
		err := enc.Encode(lines)
		if err != nil {
			return fmt.Errorf("encoding lines: %w", err)
		}
	case FORMAT_NUMBERED:
		for i, l := range lines {
			fmt.Fprintf(&out, "%d\t%s\n", i+1, l)
		}
	default:
		for _, l := range lines {
			out.WriteString(l)
			out.WriteByte('\n')
		}
	}

	if len(cfg.Highlight) == 0 {
		_, err := out.WriteTo(w)
		if err != nil {
			return fmt.Errorf("writing lines: %w", err)
		}
		return nil
	}

	err := quick.Highlight(w, out.String(), cfg.Highlight, "terminal16m", cfg.Style)
	if err != nil {
		return fmt.Errorf("highlighting lines: %w", err)
	}

	return nil
}

func writeCount(w io.Writer, n int) error {
	_, err := fmt.Fprintln(w, n)
	if err != nil {
		return fmt.Errorf("writing count: %w", err)
	}

	return nil
}
