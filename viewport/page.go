package viewport

import "github.com/mkview/mkview/observability"

// Explicit page navigation. Unlike gesture-driven page turns, explicit
// navigation keeps the scroll position of the new page unchanged.

// NextPage advances one page, clamped to the last page.
func (c *Controller) NextPage() { c.setPage(c.state.Page + 1) }

// PrevPage goes back one page, clamped to the first page.
func (c *Controller) PrevPage() { c.setPage(c.state.Page - 1) }

// FirstPage jumps to page 1.
func (c *Controller) FirstPage() { c.setPage(1) }

// LastPage jumps to the last page.
func (c *Controller) LastPage() { c.setPage(c.doc.NumPages()) }

func (c *Controller) setPage(n int) {
	n = c.doc.ClampPage(n)
	if n == 0 || n == c.state.Page {
		return
	}
	c.state.Page = n
	c.log.Debug("page turn",
		observability.Int("page", n),
		observability.String("trigger", "navigate"))
}
