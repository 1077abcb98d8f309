// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chapter

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one chapter-heading convention: a named regular expression
// matched against the start of a whitespace-trimmed line.
type Pattern struct {
	name string
	re   *regexp.Regexp
}

// NewPattern compiles expr into a Pattern. The expression is anchored at the
// start of the line if it is not already.
func NewPattern(name, expr string) (Pattern, error) {
	if !strings.HasPrefix(expr, "^") {
		expr = "^" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	return Pattern{name: name, re: re}, nil
}

// Name returns the pattern's identifier.
func (p Pattern) Name() string { return p.name }

// Expr returns the pattern's compiled expression source.
func (p Pattern) Expr() string { return p.re.String() }

// Matches reports whether the trimmed line begins with this heading
// convention.
func (p Pattern) Matches(line string) bool {
	return p.re.MatchString(strings.TrimSpace(line))
}

// cjkOrdinal matches the numeral part of a CJK chapter ordinal: ASCII
// digits or CJK numerals, including the Traditional forms produced by
// script conversion (萬, 兩, 零).
const cjkOrdinal = `[0-9〇零一二三四五六七八九十百千万萬两兩]+`

// DefaultPatterns returns the built-in heading conventions in priority
// order: 回 (classic novels), then 章, 節/节, 卷. The first match wins.
func DefaultPatterns() []Pattern {
	mustPattern := func(name, expr string) Pattern {
		p, err := NewPattern(name, expr)
		if err != nil {
			panic(err)
		}
		return p
	}
	return []Pattern{
		mustPattern("hui", `^第`+cjkOrdinal+`回`),
		mustPattern("zhang", `^第`+cjkOrdinal+`章`),
		mustPattern("jie", `^第`+cjkOrdinal+`[節节]`),
		mustPattern("juan", `^第`+cjkOrdinal+`卷`),
	}
}
