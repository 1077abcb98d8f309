// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout renders a converted book to a paginated PDF. Word wrap,
// font embedding, and page drawing are delegated to gofpdf; this package
// decides where pages break, stamps footers, and registers the chapter
// outline.
package layout

import (
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/zjgcainiao/HanwenPDF/internal/chapter"
	"github.com/zjgcainiao/HanwenPDF/pkg/types"
)

// bodyIndent opens every body paragraph with two ideographic spaces, the
// standard first-line indentation for Chinese prose.
const bodyIndent = "　　"

// Book is the fully converted document handed to the renderer.
type Book struct {
	// Title is the book title, shown alone on the first page and stored in
	// the PDF metadata.
	Title string

	// Lines is the full converted line sequence. TitleLine indexes the
	// title within it; only lines after TitleLine are body content.
	Lines     []string
	TitleLine int

	// Markers are the detected chapter headings, indices into Lines.
	Markers []chapter.Marker
}

// Renderer produces the output PDF for a book. The gofpdf implementation is
// the production backend; pipeline tests substitute fakes.
type Renderer interface {
	Render(book Book, cfg types.LayoutConfig, outPath string) error
}

// PDFRenderer renders books with gofpdf.
type PDFRenderer struct{}

// Render lays the book out twice: the first pass counts pages so the
// second can stamp exact "Page X of Y" footers, then writes the PDF to
// outPath. The font file is checked before any output is created; a
// missing font maps to types.ErrFontNotFound and any gofpdf failure to
// types.ErrRender. On failure the partial output file is removed.
func (PDFRenderer) Render(book Book, cfg types.LayoutConfig, outPath string) error {
	if cfg.Font.Path == "" {
		return fmt.Errorf("%w: no font configured (set font.path or --font)", types.ErrFontNotFound)
	}
	if _, err := os.Stat(cfg.Font.Path); err != nil {
		return fmt.Errorf("%w: %s", types.ErrFontNotFound, cfg.Font.Path)
	}

	// Pass one: count pages. The document is discarded unwritten.
	counter := build(book, cfg, 0)
	if err := counter.Error(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrRender, err)
	}
	total := counter.PageCount()

	// Pass two: identical layout with footers bound to the known total.
	pdf := build(book, cfg, total)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrRender, err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("%w: writing %s: %v", types.ErrRender, outPath, err)
	}
	return nil
}

// opKind classifies one step of the page plan.
type opKind int

const (
	opTitle opKind = iota
	opPageBreak
	opChapter
	opBody
)

// layoutOp is one step of the page plan. Every opChapter also registers a
// level-0 bookmark, so the outline is exactly the opChapter ops in order.
type layoutOp struct {
	kind opKind
	text string
}

// planOps flattens the book into the ordered operations the document is
// built from: the title page, a break onto the first body page, then for
// every non-blank body line either a chapter heading or a body paragraph.
// A break precedes each heading except one that opens the body, which is
// already at the top of a fresh page.
func planOps(book Book) []layoutOp {
	ops := []layoutOp{
		{kind: opTitle, text: book.Title},
		{kind: opPageBreak},
	}

	markerAt := make(map[int]chapter.Marker, len(book.Markers))
	for _, m := range book.Markers {
		markerAt[m.Line] = m
	}

	contentStarted := false
	for i := book.TitleLine + 1; i < len(book.Lines); i++ {
		line := strings.TrimSpace(book.Lines[i])
		if line == "" {
			continue
		}
		if m, ok := markerAt[i]; ok {
			if contentStarted {
				ops = append(ops, layoutOp{kind: opPageBreak})
			}
			ops = append(ops, layoutOp{kind: opChapter, text: m.Title})
		} else {
			ops = append(ops, layoutOp{kind: opBody, text: line})
		}
		contentStarted = true
	}
	return ops
}

// build executes the page plan on a fresh document. When total is positive,
// footers are stamped using it as the final page count.
func build(book Book, cfg types.LayoutConfig, total int) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", cfg.Page.Size, "")
	family := cfg.Font.Family

	pdf.SetTitle(book.Title, true)
	pdf.AddUTF8Font(family, "", cfg.Font.Path)
	pdf.SetMargins(cfg.Page.MarginLeft, cfg.Page.MarginTop, cfg.Page.MarginRight)
	pdf.SetAutoPageBreak(true, cfg.Page.MarginBottom)
	if total > 0 {
		setFooter(pdf, cfg, total)
	}

	_, pageH := pdf.GetPageSize()
	pdf.AddPage()

	for _, op := range planOps(book) {
		switch op.kind {
		case opTitle:
			pdf.SetFont(family, "", cfg.Style.TitleSize)
			pdf.SetY(pageH / 3)
			pdf.MultiCell(0, cfg.Style.TitleLeading, op.text, "", "C", false)
		case opPageBreak:
			pdf.AddPage()
		case opChapter:
			pdf.Bookmark(op.text, 0, -1)
			pdf.SetFont(family, "", cfg.Style.ChapterSize)
			pdf.MultiCell(0, cfg.Style.ChapterLeading, op.text, "", "C", false)
			pdf.Ln(cfg.Style.SpaceAfterChapter)
		case opBody:
			pdf.SetFont(family, "", cfg.Style.BodySize)
			pdf.MultiCell(0, cfg.Style.BodyLeading, bodyIndent+op.text, "", "L", false)
			pdf.Ln(cfg.Style.SpaceAfterPara)
		}
	}

	return pdf
}
