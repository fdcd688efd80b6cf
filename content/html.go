package content

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mkview/mkview/document"
)

// HTML lays an HTML source out into a paginated document.
func (e *Engine) HTML(source []byte) (*document.Document, error) {
	e.reset()
	root, err := html.Parse(strings.NewReader(string(source)))
	if err != nil {
		return nil, err
	}
	e.walkHTML(root)
	return e.build(), nil
}

func (e *Engine) walkHTML(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			e.emitHeading(extractText(n), headingLevel(n.DataAtom))
			return
		case atom.P:
			e.emitParagraph(extractText(n))
			return
		case atom.Li:
			e.emitListItem(extractText(n))
			return
		case atom.Pre:
			e.emitPre(extractText(n))
			return
		case atom.Math:
			// MathML produced by the LaTeX path; flattened to its
			// symbol text.
			e.emitParagraph(extractText(n))
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.walkHTML(c)
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol) {
		e.paragraphSpacing()
	}
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	default:
		return 4
	}
}

// emitPre lays preformatted text out line by line without wrapping.
func (e *Engine) emitPre(text string) {
	e.ensurePage()
	lineHeight := e.FontSize * e.LineHeight
	for _, line := range strings.Split(strings.Trim(text, "\n"), "\n") {
		e.checkPageBreak(lineHeight)
		e.cur.Lines = append(e.cur.Lines, Line{
			Text:     line,
			X:        e.Margins.Left + listIndent,
			Y:        e.cursorY,
			FontSize: e.FontSize,
		})
		e.cursorY += lineHeight
	}
	e.paragraphSpacing()
}

// extractText concatenates the text nodes under n.
func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
