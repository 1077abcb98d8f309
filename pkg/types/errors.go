// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds for the conversion pipeline. Every failure in a run wraps
// exactly one of these sentinels so callers can classify it with errors.Is.
// All kinds are fatal: the run aborts and the output file is not valid.
var (
	// ErrFileNotFound reports a missing input file.
	ErrFileNotFound = errors.New("file not found")

	// ErrDecode reports input that could not be decoded as text
	// (invalid UTF-8 or an empty document).
	ErrDecode = errors.New("decode error")

	// ErrConversion reports a script-conversion failure, typically a
	// conversion profile whose data tables could not be loaded.
	ErrConversion = errors.New("conversion error")

	// ErrFontNotFound reports a missing or unreadable font file. It is
	// raised before any output file is created.
	ErrFontNotFound = errors.New("font not found")

	// ErrRender reports a PDF generation failure from the layout engine.
	// The partially written output file must be discarded.
	ErrRender = errors.New("render error")
)
