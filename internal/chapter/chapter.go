// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chapter detects chapter headings in a converted line sequence.
// This is the only stage with branching logic of its own; it is kept free
// of any dependency on the conversion or layout libraries so the heading
// conventions can be tested in isolation.
package chapter

import "strings"

// Marker is one detected chapter heading.
type Marker struct {
	// Title is the heading text, whitespace-trimmed.
	Title string

	// Line is the zero-based index of the heading in the source line
	// sequence. Markers are strictly increasing in Line.
	Line int

	// Seq is the zero-based chapter order.
	Seq int
}

// Detect scans lines in order against patterns and returns one Marker per
// heading line. A line is a heading when, after trimming, it matches one of
// the patterns at the start; patterns are tried in priority order and the
// first match wins. Blank lines are never headings. Consecutive heading
// lines each produce their own Marker.
func Detect(lines []string, patterns []Pattern) []Marker {
	var markers []Marker
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, p := range patterns {
			if p.Matches(trimmed) {
				markers = append(markers, Marker{
					Title: trimmed,
					Line:  i,
					Seq:   len(markers),
				})
				break
			}
		}
	}
	return markers
}

// Span is the extent of one chapter: lines [Start, End).
type Span struct {
	Title string
	Start int
	End   int

	// Implicit marks the single whole-document span synthesized when no
	// heading matched.
	Implicit bool
}

// Spans converts markers into chapter extents over a document of lineCount
// lines. With no markers it returns exactly one implicit span covering the
// whole document. Front matter before the first marker belongs to no span;
// the layout stage renders it as an unnumbered preamble.
func Spans(markers []Marker, lineCount int) []Span {
	if len(markers) == 0 {
		return []Span{{Start: 0, End: lineCount, Implicit: true}}
	}
	spans := make([]Span, len(markers))
	for i, m := range markers {
		end := lineCount
		if i+1 < len(markers) {
			end = markers[i+1].Line
		}
		spans[i] = Span{Title: m.Title, Start: m.Line, End: end}
	}
	return spans
}
