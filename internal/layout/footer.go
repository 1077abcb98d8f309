// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/zjgcainiao/HanwenPDF/pkg/types"
)

// Footer geometry, measured up from the bottom edge in points.
const (
	footerRuleY = 45
	footerTextY = 38
)

// FooterText formats the page label for a body page. Both numbers exclude
// the title page.
func FooterText(page, total int) string {
	return fmt.Sprintf("Page %d of %d", page, total)
}

// footerLabel decides the footer for one physical page. The title page
// carries none; every other page is numbered with the title page excluded
// from both the position and the total.
func footerLabel(physicalPage, physicalTotal int) (string, bool) {
	if physicalPage <= 1 {
		return "", false
	}
	return FooterText(physicalPage-1, physicalTotal-1), true
}

// setFooter installs the page-decoration hook that stamps every page except
// the title page with a separator rule and a centered page label. total is
// the final physical page count from the counting pass, so the printed
// denominator is exact.
func setFooter(pdf *gofpdf.Fpdf, cfg types.LayoutConfig, total int) {
	pdf.SetFooterFunc(func() {
		label, ok := footerLabel(pdf.PageNo(), total)
		if !ok {
			return
		}
		pageW, pageH := pdf.GetPageSize()

		pdf.SetDrawColor(178, 178, 178)
		pdf.SetLineWidth(0.5)
		pdf.Line(cfg.Page.MarginLeft, pageH-footerRuleY, pageW-cfg.Page.MarginRight, pageH-footerRuleY)

		pdf.SetFont(cfg.Font.Family, "", cfg.Style.FooterSize)
		pdf.SetY(pageH - footerTextY)
		pdf.SetX(cfg.Page.MarginLeft)
		pdf.CellFormat(0, cfg.Style.FooterSize+3, label, "", 0, "C", false, 0, "")
	})
}
