// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the conversion stages end to end: load, script
// conversion, chapter detection, layout. One input file produces one PDF;
// every stage failure is fatal for that file.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/zjgcainiao/HanwenPDF/internal/chapter"
	"github.com/zjgcainiao/HanwenPDF/internal/chinese"
	"github.com/zjgcainiao/HanwenPDF/internal/layout"
	"github.com/zjgcainiao/HanwenPDF/internal/textio"
	"github.com/zjgcainiao/HanwenPDF/pkg/types"
)

// Run converts one book, printing stage progress to w. The stages share
// nothing but their outputs: lines flow from the loader through the
// converter and detector into the renderer. Returns the output PDF path.
func Run(cfg types.ConvertConfig, conv chinese.Converter, r layout.Renderer, inputPath string, w io.Writer) (string, error) {
	lines, err := textio.Load(inputPath)
	if err != nil {
		return "", err
	}

	converted, err := chinese.ConvertLines(conv, lines)
	if err != nil {
		return "", fmt.Errorf("%s: %w", inputPath, err)
	}

	patterns := chapter.DefaultPatterns()
	if cfg.PatternFile != "" {
		patterns, err = chapter.LoadPatternFile(cfg.PatternFile)
		if err != nil {
			return "", err
		}
	}

	book := assemble(converted, patterns)
	spans := chapter.Spans(book.Markers, len(converted))
	if spans[0].Implicit {
		fmt.Fprintf(w, "  %s: no chapter headings found, rendering as a single chapter\n", inputPath)
	} else {
		fmt.Fprintf(w, "  %s: %d chapter(s)\n", inputPath, len(spans))
	}

	outPath := OutputPath(cfg.OutputDir, inputPath)
	if err := r.Render(book, cfg.Layout, outPath); err != nil {
		return "", fmt.Errorf("%s: %w", inputPath, err)
	}
	return outPath, nil
}

// assemble splits the converted lines into title and body and runs chapter
// detection over the body. The first non-blank line is always the book
// title, never a chapter, matching the title-page convention.
func assemble(lines []string, patterns []chapter.Pattern) layout.Book {
	titleLine := 0
	title := ""
	for i, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			titleLine, title = i, t
			break
		}
	}

	markers := chapter.Detect(lines, patterns)
	kept := markers[:0]
	for _, m := range markers {
		if m.Line <= titleLine {
			continue
		}
		m.Seq = len(kept)
		kept = append(kept, m)
	}

	return layout.Book{
		Title:     title,
		Lines:     lines,
		TitleLine: titleLine,
		Markers:   kept,
	}
}

// OutputPath returns <outputDir>/<input basename>.pdf.
func OutputPath(outputDir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outputDir, base+".pdf")
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int { return r.Converted + r.Failed }

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// RunBatch converts each input in order, printing a per-file status line to
// w. A failure aborts that file only; remaining inputs still run.
func RunBatch(cfg types.ConvertConfig, conv chinese.Converter, r layout.Renderer, inputs []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		out, err := Run(cfg, conv, r, in, w)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", in, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", in, out)
		result.Converted++
	}
	if result.Total() > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
			result.Converted, result.Failed, result.Total())
	}
	return result
}
