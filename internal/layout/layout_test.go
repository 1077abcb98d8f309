// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zjgcainiao/HanwenPDF/internal/chapter"
	"github.com/zjgcainiao/HanwenPDF/pkg/types"
)

func testBook() Book {
	return Book{
		Title:     "紅樓夢",
		Lines:     []string{"紅樓夢", "第一回 起", "正文甲", "第二回 承", "正文乙"},
		TitleLine: 0,
		Markers: []chapter.Marker{
			{Title: "第一回 起", Line: 1, Seq: 0},
			{Title: "第二回 承", Line: 3, Seq: 1},
		},
	}
}

func TestFooterText(t *testing.T) {
	tests := []struct {
		page, total int
		want        string
	}{
		{1, 9, "Page 1 of 9"},
		{9, 9, "Page 9 of 9"},
		{1, 1, "Page 1 of 1"},
	}
	for _, tt := range tests {
		if got := FooterText(tt.page, tt.total); got != tt.want {
			t.Errorf("FooterText(%d, %d) = %q, want %q", tt.page, tt.total, got, tt.want)
		}
	}
}

// TestFooterLabel pins the per-page numbering for a 10-page document: the
// title page carries no footer, the first body page is numbered 1, the
// last N-1, and the denominator always excludes the title page.
func TestFooterLabel(t *testing.T) {
	tests := []struct {
		name        string
		page, total int
		want        string
		wantOK      bool
	}{
		{"title page skipped", 1, 10, "", false},
		{"first body page", 2, 10, "Page 1 of 9", true},
		{"middle page", 6, 10, "Page 5 of 9", true},
		{"last page", 10, 10, "Page 9 of 9", true},
		{"two-page document", 2, 2, "Page 1 of 1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := footerLabel(tt.page, tt.total)
			if ok != tt.wantOK {
				t.Fatalf("footerLabel(%d, %d) ok = %v, want %v", tt.page, tt.total, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("footerLabel(%d, %d) = %q, want %q", tt.page, tt.total, got, tt.want)
			}
		})
	}
}

// kinds projects a plan to its operation kinds.
func kinds(ops []layoutOp) []opKind {
	out := make([]opKind, len(ops))
	for i, op := range ops {
		out[i] = op.kind
	}
	return out
}

func TestPlanOps(t *testing.T) {
	tests := []struct {
		name         string
		book         Book
		wantKinds    []opKind
		wantChapters []string
	}{
		{
			name: "two chapters give two breaks and a two-entry outline",
			book: testBook(),
			wantKinds: []opKind{
				opTitle, opPageBreak,
				opChapter, opBody,
				opPageBreak, opChapter, opBody,
			},
			wantChapters: []string{"第一回 起", "第二回 承"},
		},
		{
			name: "chapter after a preamble gets a break",
			book: Book{
				Title:     "文集",
				Lines:     []string{"文集", "序言正文", "第一回 起", "正文"},
				TitleLine: 0,
				Markers:   []chapter.Marker{{Title: "第一回 起", Line: 2, Seq: 0}},
			},
			wantKinds: []opKind{
				opTitle, opPageBreak,
				opBody, opPageBreak, opChapter, opBody,
			},
			wantChapters: []string{"第一回 起"},
		},
		{
			name: "no markers means no breaks beyond the title page",
			book: Book{
				Title:     "杂文集",
				Lines:     []string{"杂文集", "一段文字", "", "另一段文字"},
				TitleLine: 0,
			},
			wantKinds:    []opKind{opTitle, opPageBreak, opBody, opBody},
			wantChapters: nil,
		},
		{
			name: "consecutive chapters each break and bookmark",
			book: Book{
				Title:     "书",
				Lines:     []string{"书", "第一回 起", "第二回 承"},
				TitleLine: 0,
				Markers: []chapter.Marker{
					{Title: "第一回 起", Line: 1, Seq: 0},
					{Title: "第二回 承", Line: 2, Seq: 1},
				},
			},
			wantKinds: []opKind{
				opTitle, opPageBreak,
				opChapter, opPageBreak, opChapter,
			},
			wantChapters: []string{"第一回 起", "第二回 承"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := planOps(tt.book)

			got := kinds(ops)
			if len(got) != len(tt.wantKinds) {
				t.Fatalf("plan = %v, want %v", got, tt.wantKinds)
			}
			for i := range tt.wantKinds {
				if got[i] != tt.wantKinds[i] {
					t.Fatalf("plan op %d = %v, want %v (full plan %v)", i, got[i], tt.wantKinds[i], got)
				}
			}

			var chapters []string
			for _, op := range ops {
				if op.kind == opChapter {
					chapters = append(chapters, op.text)
				}
			}
			if len(chapters) != len(tt.wantChapters) {
				t.Fatalf("outline = %v, want %v", chapters, tt.wantChapters)
			}
			for i := range tt.wantChapters {
				if chapters[i] != tt.wantChapters[i] {
					t.Errorf("outline entry %d = %q, want %q", i, chapters[i], tt.wantChapters[i])
				}
			}
		})
	}
}

func TestRenderMissingFont(t *testing.T) {
	cfg := types.DefaultLayoutConfig()
	cfg.Font.Path = filepath.Join(t.TempDir(), "absent.ttf")
	outPath := filepath.Join(t.TempDir(), "out.pdf")

	err := PDFRenderer{}.Render(testBook(), cfg, outPath)
	if !errors.Is(err, types.ErrFontNotFound) {
		t.Fatalf("Render() error = %v, want kind %v", err, types.ErrFontNotFound)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("no output file may exist after a font failure")
	}
}

func TestRenderNoFontConfigured(t *testing.T) {
	cfg := types.DefaultLayoutConfig()
	outPath := filepath.Join(t.TempDir(), "out.pdf")

	err := PDFRenderer{}.Render(testBook(), cfg, outPath)
	if !errors.Is(err, types.ErrFontNotFound) {
		t.Fatalf("Render() error = %v, want kind %v", err, types.ErrFontNotFound)
	}
}

// TestRenderPDF exercises the full gofpdf path. The repository ships no
// fonts, so the test only runs when the operator points HANWENPDF_TEST_FONT
// at a CJK-capable TTF.
func TestRenderPDF(t *testing.T) {
	fontPath := os.Getenv("HANWENPDF_TEST_FONT")
	if fontPath == "" {
		t.Skip("HANWENPDF_TEST_FONT not set")
	}

	cfg := types.DefaultLayoutConfig()
	cfg.Font.Path = fontPath
	outPath := filepath.Join(t.TempDir(), "out.pdf")

	if err := (PDFRenderer{}).Render(testBook(), cfg, outPath); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}
