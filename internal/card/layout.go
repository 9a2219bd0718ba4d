package card

// Card geometry in PDF points on an ID-1 sized page (85.6mm x 53.98mm).
// Every coordinate the renderer draws at lives in this table so layout
// changes never touch drawing code.

type rect struct {
	X, Y, W, H float64
}

type point struct {
	X, Y float64
}

type rgb struct {
	R, G, B int
}

type fieldLayout struct {
	X         float64 // left edge of the label/value column
	StartY    float64 // baseline of the first label
	Step      float64 // vertical distance between field rows
	LabelGap  float64 // label baseline to value baseline
	LabelSize float64
	ValueSize float64
}

var cardLayout = struct {
	PageW, PageH float64

	Header       rect
	Title        point
	TitleSize    float64
	Subtitle     point
	SubtitleSize float64

	// FlagStripe is the leftmost of the three stripes; the other two are
	// offset by multiples of its width.
	FlagStripe rect

	Photo            rect
	PhotoLabelSize   float64
	PhotoBorderWidth float64

	Fields   fieldLayout
	Location fieldLayout

	QR rect

	Footer     point
	FooterSize float64
}{
	PageW: 242.65,
	PageH: 153,

	Header:       rect{X: 0, Y: 0, W: 242.65, H: 35},
	Title:        point{X: 8, Y: 15},
	TitleSize:    10,
	Subtitle:     point{X: 8, Y: 26},
	SubtitleSize: 6,

	FlagStripe: rect{X: 206.65, Y: 8, W: 9, H: 18},

	Photo:            rect{X: 10, Y: 42, W: 35, H: 45},
	PhotoLabelSize:   5,
	PhotoBorderWidth: 0.6,

	Fields: fieldLayout{
		X:         55,
		StartY:    48,
		Step:      11.5,
		LabelGap:  6,
		LabelSize: 4.5,
		ValueSize: 6.5,
	},

	Location: fieldLayout{
		X:         10,
		StartY:    96,
		Step:      8,
		LabelGap:  0,
		LabelSize: 4.5,
		ValueSize: 5.5,
	},

	QR: rect{X: 197.65, Y: 98, W: 38, H: 38},

	Footer:     point{X: 10, Y: 146},
	FooterSize: 5,
}

var (
	colorHeaderFill = rgb{R: 0, G: 135, B: 81} // national green
	colorWhite      = rgb{R: 255, G: 255, B: 255}
	colorText       = rgb{R: 25, G: 25, B: 25}
	colorMuted      = rgb{R: 110, G: 110, B: 110}
	colorBorder     = rgb{R: 150, G: 150, B: 150}
)

const (
	cardProductName  = "E-VOTE NIGERIA"
	cardSubtitle     = "PERMANENT VOTER CARD"
	photoPlaceholder = "PHOTO"
	validityCaption  = "VALID: 10 YEARS"
	fontFamily       = "Helvetica"
)
