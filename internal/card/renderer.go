package card

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/evoteng/voter-card-api/internal/card/model"
)

// pdfCreationDate is fixed so identical snapshots render to identical bytes
// across runs and hosts.
var pdfCreationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// renderCard lays out the voter card and returns the finished PDF bytes.
// It is a pure function of the snapshot, the QR image and the (optional)
// photo bytes: no I/O happens here. A nil or undecodable photo renders the
// placeholder label instead of failing the card.
func renderCard(req *model.VoterCardRequest, qrPNG, photo []byte) ([]byte, error) {
	l := cardLayout

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: l.PageW, Ht: l.PageH},
	})
	pdf.SetCreationDate(pdfCreationDate)
	pdf.SetTitle("Permanent Voter Card "+CardID(req.ApplicationRef), false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	drawHeader(pdf)
	drawPhotoSlot(pdf, photo)
	drawFieldStack(pdf, req)
	drawLocationBlock(pdf, req)
	drawQR(pdf, qrPNG)
	drawFooter(pdf, req)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("pdf output was empty")
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *fpdf.Fpdf) {
	l := cardLayout

	setFill(pdf, colorHeaderFill)
	pdf.Rect(l.Header.X, l.Header.Y, l.Header.W, l.Header.H, "F")

	setText(pdf, colorWhite)
	pdf.SetFont(fontFamily, "B", l.TitleSize)
	pdf.Text(l.Title.X, l.Title.Y, cardProductName)
	pdf.SetFont(fontFamily, "", l.SubtitleSize)
	pdf.Text(l.Subtitle.X, l.Subtitle.Y, cardSubtitle)

	// Three-stripe flag motif: green, white, green.
	stripe := l.FlagStripe
	setFill(pdf, colorHeaderFill)
	setDraw(pdf, colorWhite)
	pdf.SetLineWidth(0.4)
	pdf.Rect(stripe.X, stripe.Y, stripe.W, stripe.H, "FD")
	setFill(pdf, colorWhite)
	pdf.Rect(stripe.X+stripe.W, stripe.Y, stripe.W, stripe.H, "FD")
	setFill(pdf, colorHeaderFill)
	pdf.Rect(stripe.X+2*stripe.W, stripe.Y, stripe.W, stripe.H, "FD")
}

func drawPhotoSlot(pdf *fpdf.Fpdf, photo []byte) {
	l := cardLayout

	setDraw(pdf, colorBorder)
	pdf.SetLineWidth(l.PhotoBorderWidth)
	pdf.Rect(l.Photo.X, l.Photo.Y, l.Photo.W, l.Photo.H, "D")

	imageType := detectImageType(photo)
	if imageType == "" {
		// Missing or undecodable photo never fails the card.
		setText(pdf, colorMuted)
		pdf.SetFont(fontFamily, "", l.PhotoLabelSize)
		pdf.SetXY(l.Photo.X, l.Photo.Y+l.Photo.H/2-3)
		pdf.CellFormat(l.Photo.W, 6, photoPlaceholder, "", 0, "C", false, 0, "")
		return
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("passport-photo", opts, bytes.NewReader(photo))
	pdf.ImageOptions("passport-photo", l.Photo.X, l.Photo.Y, l.Photo.W, l.Photo.H, false, opts, 0, "")
}

func drawFieldStack(pdf *fpdf.Fpdf, req *model.VoterCardRequest) {
	l := cardLayout.Fields

	fields := []struct {
		label string
		value string
	}{
		{"SURNAME", req.Surname},
		{"FIRST NAME", req.FirstName},
	}
	if req.MiddleName != "" {
		fields = append(fields, struct{ label, value string }{"MIDDLE NAME", req.MiddleName})
	}
	fields = append(fields,
		struct{ label, value string }{"DATE OF BIRTH", formatCardDate(req.DateOfBirth)},
		struct{ label, value string }{"GENDER", req.Gender},
	)

	y := l.StartY
	for _, f := range fields {
		setText(pdf, colorMuted)
		pdf.SetFont(fontFamily, "", l.LabelSize)
		pdf.Text(l.X, y, f.label)

		setText(pdf, colorText)
		pdf.SetFont(fontFamily, "B", l.ValueSize)
		pdf.Text(l.X, y+l.LabelGap, strings.ToUpper(f.value))

		y += l.Step
	}
}

func drawLocationBlock(pdf *fpdf.Fpdf, req *model.VoterCardRequest) {
	l := cardLayout.Location

	lines := []struct {
		label string
		value string
	}{
		{"VIN", req.VIN},
		{"STATE", req.State},
		{"LGA", req.LGA},
		{"WARD", req.Ward},
	}

	y := l.StartY
	for _, line := range lines {
		setText(pdf, colorMuted)
		pdf.SetFont(fontFamily, "", l.LabelSize)
		pdf.Text(l.X, y, line.label+":")

		setText(pdf, colorText)
		pdf.SetFont(fontFamily, "B", l.ValueSize)
		pdf.Text(l.X+22, y, strings.ToUpper(line.value))

		y += l.Step
	}
}

func drawQR(pdf *fpdf.Fpdf, qrPNG []byte) {
	l := cardLayout

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("verification-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("verification-qr", l.QR.X, l.QR.Y, l.QR.W, l.QR.H, false, opts, 0, "")
}

func drawFooter(pdf *fpdf.Fpdf, req *model.VoterCardRequest) {
	l := cardLayout

	setText(pdf, colorMuted)
	pdf.SetFont(fontFamily, "", l.FooterSize)
	footer := fmt.Sprintf("REF: %s   ISSUED: %s   %s",
		req.ApplicationRef, formatCardDate(req.IssueDate), validityCaption)
	pdf.Text(l.Footer.X, l.Footer.Y, footer)
}

// formatCardDate renders DD/MM/YYYY with manual zero padding. Locale APIs are
// deliberately avoided so output bytes are identical across runtimes.
func formatCardDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// detectImageType reports the fpdf image type of the photo bytes, or "" when
// the bytes are absent or not a decodable JPEG/PNG.
func detectImageType(photo []byte) string {
	if len(photo) == 0 {
		return ""
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(photo))
	if err != nil {
		return ""
	}
	switch format {
	case "jpeg":
		return "JPG"
	case "png":
		return "PNG"
	default:
		return ""
	}
}

func setFill(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.R, c.G, c.B)
}

func setDraw(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetDrawColor(c.R, c.G, c.B)
}

func setText(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.R, c.G, c.B)
}
