package mapsheet

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// Document is a single-page PDF holding a rendered sheet.
type Document struct {
	pdf   *fpdf.Fpdf
	sheet *Sheet
}

// NewDocument lays out a PDF page for the sheet and places the rendered map
// image, the grid overlay when enabled, and the attribution line. The sheet
// must have been rendered first.
func NewDocument(s *Sheet) (*Document, error) {
	if s.Image == nil {
		return nil, fmt.Errorf("sheet has not been rendered")
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: s.Width, Ht: s.Height},
	})
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetTopMargin(s.Opt.MarginTop)
	pdf.SetLeftMargin(s.Opt.MarginLeft)
	pdf.SetRightMargin(s.Opt.MarginRight)
	pdf.SetAutoPageBreak(true, s.Opt.MarginBottom)
	pdf.AddPage()

	d := &Document{pdf: pdf, sheet: s}
	if err := d.addImage(); err != nil {
		return nil, err
	}
	if s.Opt.Grid {
		if err := d.addGrid(); err != nil {
			return nil, err
		}
	}
	d.addAttribution()
	if pdf.Err() {
		return nil, pdf.Error()
	}
	return d, nil
}

func (d *Document) addImage() error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, d.sheet.Image); err != nil {
		return err
	}
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader("sheet", opt, &buf)
	d.pdf.ImageOptions("sheet",
		d.sheet.Opt.MarginLeft, d.sheet.Opt.MarginTop,
		d.sheet.ImageWidth, d.sheet.ImageHeight,
		false, opt, 0, "")
	return nil
}

func (d *Document) addGrid() error {
	xs, ys, err := d.sheet.gridLines()
	if err != nil {
		return err
	}

	s := d.sheet
	left, top := s.Opt.MarginLeft, s.Opt.MarginTop

	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(0.1)
	d.pdf.SetFontSize(8)
	lineHeight := PtToMM(8)

	for _, g := range xs {
		x := left + g.pos
		w := d.pdf.GetStringWidth(g.label)
		d.pdf.Line(x, top, x, top+s.ImageHeight)
		if x+w < left+s.ImageWidth {
			d.pdf.SetXY(x-w/2, top)
			d.pdf.CellFormat(w, lineHeight, g.label, "", 0, "CM", true, 0, "")
		}
	}
	for _, g := range ys {
		y := top + g.pos
		w := d.pdf.GetStringWidth(g.label)
		d.pdf.Line(left, y, left+s.ImageWidth, y)
		if y+w < top+s.ImageHeight {
			// labels along the left edge read bottom-up
			d.pdf.TransformBegin()
			d.pdf.TransformRotate(90, left, y+w/2)
			d.pdf.SetXY(left, y+w/2)
			d.pdf.CellFormat(w, lineHeight, g.label, "", 0, "CM", true, 0, "")
			d.pdf.TransformEnd()
		}
	}

	d.pdf.SetFontSize(12)
	return nil
}

func (d *Document) addAttribution() {
	s := d.sheet
	text := fmt.Sprintf("%s. Created with mapsheet. Scale: 1:%.0f", s.Provider.Attribution, s.Opt.Scale)

	d.pdf.SetFontSize(8)
	w := d.pdf.GetStringWidth(text)
	h := PtToMM(8)
	d.pdf.SetXY(s.Opt.MarginLeft+s.ImageWidth-w, s.Opt.MarginTop+s.ImageHeight-h)
	d.pdf.CellFormat(w, h, text, "", 0, "RM", true, 0, "")
	d.pdf.SetFontSize(12)
}

// SetMeta fills in the PDF document information.
func (d *Document) SetMeta(title, author string) {
	d.pdf.SetTitle(title, true)
	d.pdf.SetAuthor(author, true)
	d.pdf.SetCreator("mapsheet v"+Version, true)
}

// WriteFile writes the document to path.
func (d *Document) WriteFile(path string) error {
	return d.pdf.OutputFileAndClose(path)
}
