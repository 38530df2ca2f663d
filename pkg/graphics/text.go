package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is used when a text style specifies no size.
const defaultFontSize = 16

// TextStyle describes how a run of text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
	Face     font.Face
}

// TextLayout contains measured text metrics for a single run.
//
// Layouts are computed once and reused across paint calls; the measuring
// face is resolved when the layout is built.
type TextLayout struct {
	Text  string
	Style TextStyle

	size Size
}

// DefaultFace returns the fallback face used when a style names none.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// NewTextLayout measures text with the style's face (or the default face)
// and returns a reusable layout.
func NewTextLayout(text string, style TextStyle) *TextLayout {
	face := style.Face
	if face == nil {
		face = DefaultFace()
	}
	if style.FontSize == 0 {
		style.FontSize = defaultFontSize
	}

	metrics := face.Metrics()
	height := fixedToFloat(metrics.Height)
	width := fixedToFloat(font.MeasureString(face, text))

	// basicfont is a bitmap face; scale measured extents to the requested
	// size so layout stays proportional across styles.
	nominal := fixedToFloat(metrics.Height)
	if nominal > 0 {
		scale := style.FontSize / nominal
		width *= scale
		height *= scale
	}

	return &TextLayout{
		Text:  text,
		Style: style,
		size:  Size{Width: width, Height: height},
	}
}

// Size returns the measured extent of the laid-out text.
func (l *TextLayout) Size() Size {
	return l.size
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
