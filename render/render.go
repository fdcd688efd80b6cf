// Package render rasterizes the committed view state into an image: the
// current page drawn at the controller's scale and translate inside the
// viewport. It is a pure consumer of state, suitable for previews,
// snapshots and tests; interactive hosts draw with their own toolkit.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mkview/mkview/content"
	"github.com/mkview/mkview/document"
	"github.com/mkview/mkview/geom"
	"github.com/mkview/mkview/viewport"
)

// Renderer rasterizes pages. The zero value is usable.
type Renderer struct {
	// Background fills the viewport outside the page; nil means a
	// neutral gray.
	Background color.Color
	// PageColor fills the page itself; nil means white.
	PageColor color.Color
}

func (r *Renderer) background() color.Color {
	if r.Background != nil {
		return r.Background
	}
	return color.RGBA{R: 0x40, G: 0x40, B: 0x44, A: 0xff}
}

func (r *Renderer) pageColor() color.Color {
	if r.PageColor != nil {
		return r.PageColor
	}
	return color.White
}

// Render draws the current page of doc as seen through st into a new
// image of the given viewport size. An empty document yields just the
// background.
func (r *Renderer) Render(doc *document.Document, st viewport.State, view geom.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(view.Width), int(view.Height)))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background()), image.Point{}, draw.Src)
	if doc.NumPages() == 0 || st.Page < 1 || st.Page > doc.NumPages() {
		return img
	}

	page := r.rasterizePage(doc, doc.Pages[st.Page-1])

	// Place the scaled page at the committed translate.
	size := doc.PageSize().Scale(st.Scale)
	dst := image.Rect(
		int(st.Translate.X),
		int(st.Translate.Y),
		int(st.Translate.X+size.Width),
		int(st.Translate.Y+size.Height),
	)
	xdraw.ApproxBiLinear.Scale(img, dst, page, page.Bounds(), xdraw.Over, nil)
	return img
}

// rasterizePage draws one page at its natural size, one pixel per point.
func (r *Renderer) rasterizePage(doc *document.Document, p document.Page) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(doc.PageWidthPt), int(doc.PageHeightPt)))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.pageColor()), image.Point{}, draw.Src)

	cp, ok := p.(content.Page)
	if !ok {
		// Opaque page from another pipeline: render the blank sheet.
		return img
	}
	face := basicfont.Face7x13
	for _, line := range cp.Lines {
		d := font.Drawer{
			Dst:  img,
			Src:  image.Black,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(int(line.X)),
				Y: fixed.I(int(line.Y + line.FontSize)),
			},
		}
		text := line.Text
		if line.Bullet {
			text = "* " + text
		}
		d.DrawString(text)
	}
	return img
}
