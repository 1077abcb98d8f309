// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textio loads plain-text book files into ordered line sequences.
package textio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/zjgcainiao/HanwenPDF/pkg/types"
)

// maxLineBytes bounds a single input line. Book paragraphs are routinely
// written as one long line, so this is generous.
const maxLineBytes = 4 * 1024 * 1024

// Load reads the file at path and returns its lines in order. The UTF-8 BOM
// is stripped, trailing carriage returns are tolerated, and each line is
// validated as UTF-8. A missing file maps to types.ErrFileNotFound, invalid
// encoding or a fully blank file to types.ErrDecode.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	blank := true
	for n := 0; sc.Scan(); n++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if n == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: %s: line %d is not valid UTF-8", types.ErrDecode, path, n+1)
		}
		if strings.TrimSpace(line) != "" {
			blank = false
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		// Scanner failures here are malformed input (typically a line
		// over maxLineBytes), not I/O.
		return nil, fmt.Errorf("%w: %s: %v", types.ErrDecode, path, err)
	}

	if blank {
		return nil, fmt.Errorf("%w: %s: file has no text content", types.ErrDecode, path)
	}
	return lines, nil
}
