// Package document holds the read-only document model the viewer pans,
// zooms and pages over. The pages themselves are opaque to the viewport
// core; only their shared dimensions matter to geometry.
package document

import "github.com/mkview/mkview/geom"

// Page is an opaque renderable unit produced by a content pipeline and
// consumed by a renderer. The viewport core never inspects it.
type Page interface{}

// Document is a sequence of equally sized pages. All pages share
// PageWidthPt x PageHeightPt; the model is owned by the content pipeline
// and referenced read-only here.
type Document struct {
	Pages        []Page
	PageWidthPt  float64
	PageHeightPt float64
}

// NumPages returns the page count; zero for a nil document.
func (d *Document) NumPages() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// PageSize returns the unscaled page dimensions in points; zero for a
// nil document, which disables all overflow and pan effects downstream.
func (d *Document) PageSize() geom.Size {
	if d == nil {
		return geom.Size{}
	}
	return geom.Size{Width: d.PageWidthPt, Height: d.PageHeightPt}
}

// ClampPage bounds a page number to [1, NumPages], or 0 for an empty
// document. Page numbers are 1-based.
func (d *Document) ClampPage(n int) int {
	num := d.NumPages()
	if num == 0 {
		return 0
	}
	if n < 1 {
		return 1
	}
	if n > num {
		return num
	}
	return n
}
