package guide

import (
	"github.com/go-pdf/fpdf"
)

// renderPDF walks the story and writes an A4 portrait document. All text
// passes through the cp1252 translator so accented destination names survive
// the core fonts.
func renderPDF(path string, story []block, ss StyleSheet) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	textW := pageW - left - right

	for _, b := range story {
		switch b.kind {
		case blockPageBreak:
			pdf.AddPage()
		case blockSpacer:
			pdf.Ln(b.gap)
		case blockBullet:
			st := ss.style(b.role)
			applyStyle(pdf, st)
			pdf.SetLeftMargin(left + st.Indent)
			pdf.SetX(left + st.Indent)
			pdf.MultiCell(textW-st.Indent, st.LineHeight, tr("- "+b.text), "", st.Align, false)
			pdf.SetLeftMargin(left)
			pdf.Ln(st.SpaceAfter)
		case blockParagraph:
			st := ss.style(b.role)
			applyStyle(pdf, st)
			pdf.MultiCell(textW, st.LineHeight, tr(b.text), "", st.Align, false)
			pdf.Ln(st.SpaceAfter)
		}
	}
	return pdf.OutputFileAndClose(path)
}

func applyStyle(pdf *fpdf.Fpdf, st Style) {
	pdf.SetFont("Helvetica", st.Font, st.Size)
	pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (ss StyleSheet) style(r role) Style {
	switch r {
	case roleTitle:
		return ss.Title
	case roleSubtitle:
		return ss.Subtitle
	case roleSection:
		return ss.Section
	case roleSubsection:
		return ss.Subsection
	case roleItemHeader:
		return ss.ItemHeader
	case roleBullet:
		return ss.Bullet
	case roleFooter:
		return ss.Footer
	default:
		return ss.Body
	}
}
