// Package content is the reference content pipeline: it turns markdown,
// HTML or LaTeX math source into a paginated document.Document the
// viewer pans and zooms over. The layout is a simple cursor model with
// estimated text metrics; it exists to feed the viewport, not to be
// typographically exact.
package content

import (
	"strings"

	"github.com/mkview/mkview/document"
	"github.com/mkview/mkview/observability"
)

// Standard paper sizes in points.
var (
	A4     = PaperSize{Width: 595.28, Height: 841.89}
	Letter = PaperSize{Width: 612, Height: 792}
)

// PaperSize is a page size in points.
type PaperSize struct {
	Width, Height float64
}

// Line is one laid-out line of text on a page. Coordinates are in
// points with the origin at the page's top-left corner.
type Line struct {
	Text     string
	X, Y     float64
	FontSize float64
	Bullet   bool
}

// Page is the renderable unit the pipeline produces; the viewport core
// treats it as opaque.
type Page struct {
	Lines []Line
}

// Margins are the page margins in points.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// Engine lays structured content out into pages.
type Engine struct {
	FontSize   float64
	LineHeight float64 // multiplier, e.g. 1.2
	Margins    Margins

	pageWidth  float64
	pageHeight float64
	log        observability.Logger

	pages   []document.Page
	cur     *Page
	cursorY float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithFontSize sets the body font size in points.
func WithFontSize(size float64) Option {
	return func(e *Engine) { e.FontSize = size }
}

// WithLineHeight sets the line height multiplier.
func WithLineHeight(h float64) Option {
	return func(e *Engine) { e.LineHeight = h }
}

// WithMargins sets the page margins.
func WithMargins(m Margins) Option {
	return func(e *Engine) { e.Margins = m }
}

// WithPageSize sets the page dimensions in points.
func WithPageSize(width, height float64) Option {
	return func(e *Engine) {
		e.pageWidth = width
		e.pageHeight = height
	}
}

// WithPaperSize sets the page dimensions from a standard paper size.
func WithPaperSize(size PaperSize) Option {
	return func(e *Engine) {
		e.pageWidth = size.Width
		e.pageHeight = size.Height
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(log observability.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates a layout engine with A4 pages, 12pt body text and
// 50pt margins.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		FontSize:   12,
		LineHeight: 1.2,
		Margins:    Margins{Top: 50, Bottom: 50, Left: 50, Right: 50},
		pageWidth:  A4.Width,
		pageHeight: A4.Height,
		log:        observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// reset discards layout state so each conversion starts fresh.
func (e *Engine) reset() {
	e.pages = nil
	e.cur = nil
	e.cursorY = 0
}

// build finishes the current page and assembles the document.
func (e *Engine) build() *document.Document {
	e.finishPage()
	doc := &document.Document{
		Pages:        e.pages,
		PageWidthPt:  e.pageWidth,
		PageHeightPt: e.pageHeight,
	}
	e.log.Debug("document built", observability.Int("pages", doc.NumPages()))
	return doc
}

func (e *Engine) ensurePage() {
	if e.cur == nil {
		e.newPage()
	}
}

func (e *Engine) newPage() {
	e.finishPage()
	e.cur = &Page{}
	e.cursorY = e.Margins.Top
}

func (e *Engine) finishPage() {
	if e.cur != nil {
		e.pages = append(e.pages, *e.cur)
		e.cur = nil
	}
}

// checkPageBreak starts a new page when height no longer fits above the
// bottom margin.
func (e *Engine) checkPageBreak(height float64) {
	if e.cur == nil {
		e.newPage()
		return
	}
	if e.cursorY+height > e.pageHeight-e.Margins.Bottom {
		e.newPage()
	}
}

// headingSize maps a heading level onto a font size, mirroring the
// visual hierarchy of the exported PDF.
func (e *Engine) headingSize(level int) float64 {
	switch {
	case level <= 1:
		return e.FontSize * 2.0
	case level == 2:
		return e.FontSize * 1.5
	default:
		return e.FontSize * 1.25
	}
}

func (e *Engine) emitHeading(text string, level int) {
	fontSize := e.headingSize(level)
	e.emitWrapped(text, e.Margins.Left, fontSize, false)
	e.paragraphSpacing()
}

func (e *Engine) emitParagraph(text string) {
	e.emitWrapped(text, e.Margins.Left, e.FontSize, false)
	e.paragraphSpacing()
}

const listIndent = 15.0

func (e *Engine) emitListItem(text string) {
	e.emitWrapped(text, e.Margins.Left+listIndent, e.FontSize, true)
}

func (e *Engine) paragraphSpacing() {
	if e.cur != nil {
		e.cursorY += e.FontSize * e.LineHeight
	}
}

// charAdvance approximates the average glyph advance for a font size.
// Good enough for wrap decisions; the viewer renders approximations of
// pages, not print output.
func charAdvance(fontSize float64) float64 { return fontSize * 0.6 }

// emitWrapped word-wraps text into lines starting at x, breaking pages
// as needed. The first line of a bullet item carries the bullet marker.
func (e *Engine) emitWrapped(text string, x, fontSize float64, bullet bool) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}
	e.ensurePage()
	lineHeight := fontSize * e.LineHeight
	maxWidth := e.pageWidth - e.Margins.Right - x
	adv := charAdvance(fontSize)

	line := ""
	width := 0.0
	first := true
	flush := func() {
		if line == "" {
			return
		}
		e.checkPageBreak(lineHeight)
		e.cur.Lines = append(e.cur.Lines, Line{
			Text:     line,
			X:        x,
			Y:        e.cursorY,
			FontSize: fontSize,
			Bullet:   bullet && first,
		})
		e.cursorY += lineHeight
		line = ""
		width = 0
		first = false
	}
	for _, w := range words {
		wWidth := float64(len([]rune(w))) * adv
		sep := 0.0
		if line != "" {
			sep = adv
		}
		if line != "" && width+sep+wWidth > maxWidth {
			flush()
			sep = 0
		}
		if line != "" {
			line += " "
		}
		line += w
		width += sep + wWidth
	}
	flush()
}
