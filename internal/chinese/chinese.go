// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chinese converts text between Simplified and Traditional Chinese
// scripts. The conversion itself is delegated to OpenCC dictionaries; this
// package only selects a profile and applies it line by line.
package chinese

import "fmt"

// Converter transforms one line of text between Chinese scripts. The OpenCC
// implementation is the production backend; tests substitute fakes.
type Converter interface {
	// Convert returns the converted form of line. It must be pure: the same
	// input always yields the same output.
	Convert(line string) (string, error)
}

// DefaultMode is the conversion profile used when none is configured:
// Simplified to Traditional (Taiwan standard) with common phrase idioms.
const DefaultMode = "s2twp"

// modes lists the supported OpenCC conversion profiles in display order.
var modes = []string{
	"s2t",   // Simplified -> Traditional
	"t2s",   // Traditional -> Simplified
	"s2tw",  // Simplified -> Traditional (Taiwan)
	"tw2s",  // Traditional (Taiwan) -> Simplified
	"s2twp", // Simplified -> Traditional (Taiwan) with phrases
	"tw2sp", // Traditional (Taiwan) -> Simplified with phrases
	"s2hk",  // Simplified -> Traditional (Hong Kong)
	"hk2s",  // Traditional (Hong Kong) -> Simplified
	"t2tw",  // Traditional -> Traditional (Taiwan)
	"t2hk",  // Traditional -> Traditional (Hong Kong)
}

// Modes returns the supported conversion profile names.
func Modes() []string {
	out := make([]string, len(modes))
	copy(out, modes)
	return out
}

// ValidMode reports whether mode names a supported conversion profile.
func ValidMode(mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// ConvertLines applies c to every line in order, preserving indices. The
// first conversion failure aborts and is returned with its line number.
func ConvertLines(c Converter, lines []string) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		converted, err := c.Convert(line)
		if err != nil {
			return nil, fmt.Errorf("converting line %d: %w", i+1, err)
		}
		out[i] = converted
	}
	return out, nil
}
