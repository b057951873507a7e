package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/jmylchreest/sunsetology/internal/colour"
)

// Kind is a type of exported artwork.
type Kind string

const (
	// KindWallpaper is a 9:16 gradient wallpaper.
	KindWallpaper Kind = "wallpaper"

	// KindCompare places the photo beside its gradient.
	KindCompare Kind = "compare"

	// KindCard is a 4:5 social card with the photo and swatches.
	KindCard Kind = "card"
)

// ValidKinds returns the list of artwork kinds.
func ValidKinds() []Kind {
	return []Kind{KindWallpaper, KindCompare, KindCard}
}

// ErrPhotoRequired is returned when an artwork that shows the photo is rendered without one.
var ErrPhotoRequired = errors.New("photo required")

var (
	slate900 = color.NRGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 255}
	slate600 = color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 255}
	slate400 = color.NRGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 255}
	slate200 = color.NRGBA{R: 0xE2, G: 0xE8, B: 0xF0, A: 255}
	cream    = color.NRGBA{R: 0xFF, G: 0xFD, B: 0xF8, A: 255}
)

// whiteAlpha returns white at the given opacity in [0, 1].
func whiteAlpha(opacity float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(opacity * 255))}
}

// Options controls how artwork is rendered.
type Options struct {
	// Gradient selects the gradient layout. Defaults to GradientLinear.
	Gradient GradientType

	// Quote is the caption. Defaults to QuoteFor(palette, Lang).
	Quote string

	// Lang selects the built-in quote and the caption direction. Defaults to LangEnglish.
	Lang Lang

	// QuoteFont is OpenType or TrueType data for the caption. The bundled Go
	// fonts only cover Latin scripts, so other languages need one.
	QuoteFont []byte

	// Date is printed on the artwork. Defaults to now.
	Date time.Time

	// Photo is the source image, required for KindCompare and KindCard.
	Photo image.Image
}

func (o Options) withDefaults(p *colour.Palette) (Options, error) {
	if o.Gradient == "" {
		o.Gradient = GradientLinear
	}
	if o.Lang == "" {
		o.Lang = LangEnglish
	}
	if _, ok := Quotes[o.Lang]; !ok {
		return o, fmt.Errorf("unknown language: %s (valid languages: %v)", o.Lang, ValidLangs())
	}
	if o.Quote == "" {
		q, err := QuoteFor(p, o.Lang)
		if err != nil {
			return o, err
		}
		o.Quote = q
	}
	if o.Date.IsZero() {
		o.Date = time.Now()
	}
	return o, nil
}

// quoteFace returns the caption face: QuoteFont if set, otherwise fallback.
func (o Options) quoteFace(fallback typeface, size float64) (font.Face, error) {
	if o.QuoteFont != nil {
		return parseFace(o.QuoteFont, size)
	}
	return newFace(fallback, size)
}

// drawQuote draws up to maxLines wrapped caption lines inside [x0, x1],
// aligned to the end that the language reads from.
func drawQuote(dst *image.NRGBA, face font.Face, x0, x1, y, step, maxLines int, c color.Color, lang Lang, quote string) {
	lines := wrapText(face, quote, x1-x0)
	for i, line := range lines[:min(len(lines), maxLines)] {
		if lang.RTL() {
			drawTextRight(dst, face, x1, y+i*step, c, line)
		} else {
			drawText(dst, face, x0, y+i*step, c, line)
		}
	}
}

// Render draws the artwork of the given kind for p.
func Render(kind Kind, p *colour.Palette, opts Options) (image.Image, error) {
	if p == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}
	opts, err := opts.withDefaults(p)
	if err != nil {
		return nil, err
	}

	if _, err := NewGradient(p).CSS(opts.Gradient); err != nil {
		return nil, err
	}

	switch kind {
	case KindWallpaper:
		return renderWallpaper(p, opts)
	case KindCompare:
		if opts.Photo == nil {
			return nil, fmt.Errorf("%w for %s", ErrPhotoRequired, kind)
		}
		return renderCompare(p, opts)
	case KindCard:
		if opts.Photo == nil {
			return nil, fmt.Errorf("%w for %s", ErrPhotoRequired, kind)
		}
		return renderCard(p, opts)
	default:
		return nil, fmt.Errorf("unknown export kind: %s (valid kinds: %v)", kind, ValidKinds())
	}
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Filename returns the default file name for an artwork rendered at t.
func Filename(kind Kind, t time.Time) string {
	return fmt.Sprintf("sunsetology-%s-%d.png", kind, t.UnixMilli())
}

// DateString formats t the way it is printed on artwork.
func DateString(t time.Time) string {
	return t.Format("20060102")
}

// paintGradient fills r with g laid out as t.
func paintGradient(dst *image.NRGBA, r image.Rectangle, g Gradient, t GradientType) {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Hypot(cx, cy)

	for y := 0; y < h; y++ {
		var row color.NRGBA
		if t == GradientLinear {
			row = nrgbaOf(g.At(float64(y) / float64(max(1, h-1))))
		}
		for x := 0; x < w; x++ {
			c := row
			switch t {
			case GradientRadial:
				c = nrgbaOf(g.At(math.Hypot(float64(x)-cx, float64(y)-cy) / radius))
			case GradientConic:
				angle := math.Atan2(float64(x)-cx, cy-float64(y))
				if angle < 0 {
					angle += 2 * math.Pi
				}
				c = nrgbaOf(g.At(angle / (2 * math.Pi)))
			}
			dst.SetNRGBA(r.Min.X+x, r.Min.Y+y, c)
		}
	}
}

func nrgbaOf(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// footer layout, relative to the top of the footer block.
const (
	footerHeight   = 470
	footerPad      = 64
	stopLineHeight = 34
	quoteLineStep  = 30
	maxQuoteLines  = 3
)

type footerFaces struct {
	date, title, mono, credit font.Face
}

func newFooterFaces() (footerFaces, error) {
	var f footerFaces
	var err error
	if f.date, err = newFace(faceMono, 28); err != nil {
		return f, err
	}
	if f.title, err = newFace(faceBold, 44); err != nil {
		return f, err
	}
	if f.mono, err = newFace(faceMono, 22); err != nil {
		return f, err
	}
	if f.credit, err = newFace(faceBold, 22); err != nil {
		return f, err
	}
	return f, nil
}

// drawFooter draws the date, title, gradient stops, quote and credit into r.
func drawFooter(dst *image.NRGBA, r image.Rectangle, g Gradient, opts Options, title string) error {
	f, err := newFooterFaces()
	if err != nil {
		return err
	}

	x, y := r.Min.X, r.Min.Y
	drawText(dst, f.date, x, y+28, whiteAlpha(0.6), DateString(opts.Date))
	drawText(dst, f.title, x, y+80, color.White, title)

	y += 128
	for _, s := range g.Stops {
		label := fmt.Sprintf("[%d,%d,%d]  →  %d%%", s.Colour.R, s.Colour.G, s.Colour.B, s.Pct)
		drawText(dst, f.mono, x, y, whiteAlpha(0.8), label)
		lineStart := x + textWidth(f.mono, label) + 16
		fillRect(dst, image.Rect(lineStart, y-7, r.Max.X, y-6), whiteAlpha(0.2))
		y += stopLineHeight
	}

	divider := r.Min.Y + 322
	fillRect(dst, image.Rect(x, divider, r.Max.X, divider+1), whiteAlpha(0.2))

	quote, err := opts.quoteFace(faceMono, 22)
	if err != nil {
		return err
	}
	drawQuote(dst, quote, x, x+r.Dx()*6/10, divider+40, quoteLineStep, maxQuoteLines, whiteAlpha(0.5), opts.Lang, opts.Quote)

	drawTextRight(dst, f.credit, r.Max.X, divider+40, color.White, "GENERATED")
	drawTextRight(dst, f.mono, r.Max.X, divider+70, whiteAlpha(0.5), "By Sunsetology App")
	return nil
}

const (
	wallpaperWidth  = 1080
	wallpaperHeight = 1920
)

func renderWallpaper(p *colour.Palette, opts Options) (image.Image, error) {
	dst := imaging.New(wallpaperWidth, wallpaperHeight, slate900)
	g := NewGradient(p)
	paintGradient(dst, dst.Bounds(), g, opts.Gradient)

	footer := image.Rect(footerPad, wallpaperHeight-footerPad-footerHeight, wallpaperWidth-footerPad, wallpaperHeight-footerPad)
	if err := drawFooter(dst, footer, g, opts, "SUNSETOLOGY 180° GRADIENT"); err != nil {
		return nil, err
	}
	return dst, nil
}

const (
	comparePad    = 48
	compareWidth  = 1440
	comparePanelW = (compareWidth - 3*comparePad) / 2
	comparePanelH = comparePanelW * 16 / 9
	compareHeight = comparePad + comparePanelH + comparePad + footerHeight + comparePad
)

func renderCompare(p *colour.Palette, opts Options) (image.Image, error) {
	dst := imaging.New(compareWidth, compareHeight, slate900)
	g := NewGradient(p)

	photo := imaging.Fill(opts.Photo, comparePanelW, comparePanelH, imaging.Center, imaging.Lanczos)
	dst = imaging.Paste(dst, photo, image.Pt(comparePad, comparePad))

	right := image.Rect(2*comparePad+comparePanelW, comparePad, compareWidth-comparePad, comparePad+comparePanelH)
	paintGradient(dst, right, g, opts.Gradient)

	label, err := newFace(faceBold, 18)
	if err != nil {
		return nil, err
	}
	drawPill(dst, label, comparePad+16, comparePad+16, "ORIGINAL")
	drawPill(dst, label, right.Min.X+16, right.Min.Y+16, "ARTISTIC WALLPAPER")

	footerTop := comparePad + comparePanelH + comparePad
	footer := image.Rect(comparePad, footerTop, compareWidth-comparePad, footerTop+footerHeight)
	if err := drawFooter(dst, footer, g, opts, "SUNSETOLOGY GRADIENT"); err != nil {
		return nil, err
	}
	return dst, nil
}

// drawPill draws a dark translucent label with its top-left corner at (x, y).
func drawPill(dst *image.NRGBA, face font.Face, x, y int, text string) {
	const padX, height = 16, 34
	w := textWidth(face, text) + 2*padX
	fillRect(dst, image.Rect(x, y, x+w, y+height), color.NRGBA{A: 179})
	drawText(dst, face, x+padX, y+height-11, color.White, text)
}

const (
	cardWidth    = 1080
	cardHeight   = 1350
	cardPad      = 48
	cardSwatches = 5
	cardSwatchH  = 96
	cardGap      = 8
)

func renderCard(p *colour.Palette, opts Options) (image.Image, error) {
	dst := imaging.New(cardWidth, cardHeight, cream)
	inner := cardWidth - 2*cardPad

	photoBottom := cardHeight - cardPad - 388
	photo := imaging.Fill(opts.Photo, inner, photoBottom-cardPad, imaging.Center, imaging.Lanczos)
	dst = imaging.Paste(dst, photo, image.Pt(cardPad, cardPad))

	swatchTop := photoBottom + 32
	n := min(cardSwatches, len(p.Colours))
	for i := 0; i < n; i++ {
		x0 := cardPad + i*(inner+cardGap)/n
		x1 := cardPad + (i+1)*(inner+cardGap)/n - cardGap
		fillRect(dst, image.Rect(x0, swatchTop, x1, swatchTop+cardSwatchH), p.Colours[i])
	}

	title, err := newFace(faceBold, 48)
	if err != nil {
		return nil, err
	}
	mono, err := newFace(faceMono, 22)
	if err != nil {
		return nil, err
	}
	italic, err := opts.quoteFace(faceItalic, 24)
	if err != nil {
		return nil, err
	}
	small, err := newFace(faceRegular, 18)
	if err != nil {
		return nil, err
	}
	brand, err := newFace(faceBold, 18)
	if err != nil {
		return nil, err
	}

	right := cardWidth - cardPad
	baseline := swatchTop + cardSwatchH + 68
	drawText(dst, title, cardPad, baseline, slate900, "Sunset Palette")
	drawTextRight(dst, mono, right, baseline, slate400, DateString(opts.Date))
	fillRect(dst, image.Rect(cardPad, baseline+20, right, baseline+22), slate200)

	drawQuote(dst, italic, cardPad, right, baseline+65, 32, 2, slate600, opts.Lang, "\u201c"+opts.Quote+"\u201d")

	if p.Primary != nil && p.Secondary != nil {
		drawText(dst, small, cardPad, cardHeight-cardPad, slate400, p.Primary.Hex+" • "+p.Secondary.Hex)
	}
	drawTextRight(dst, brand, right, cardHeight-cardPad, slate900, "SUNSETOLOGY")
	return dst, nil
}
