package content

import (
	"strings"

	"github.com/mkview/mkview/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown lays a markdown source out into a paginated document using
// goldmark.
func (e *Engine) Markdown(source []byte) (*document.Document, error) {
	e.reset()
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))
	e.walkMarkdown(root, source)
	return e.build(), nil
}

func (e *Engine) walkMarkdown(node ast.Node, source []byte) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			e.emitHeading(inlineText(n, source), n.Level)
		case *ast.Paragraph:
			e.emitParagraph(inlineText(n, source))
		case *ast.List:
			e.walkMarkdown(n, source)
			e.paragraphSpacing()
		case *ast.ListItem:
			e.emitListItem(itemText(n, source))
		case *ast.Blockquote:
			e.walkMarkdown(n, source)
		case *ast.FencedCodeBlock:
			e.emitCodeBlock(n.Lines(), source)
		case *ast.CodeBlock:
			e.emitCodeBlock(n.Lines(), source)
		case *ast.ThematicBreak:
			e.paragraphSpacing()
		}
	}
}

// emitCodeBlock lays code out verbatim, one source line per page line.
func (e *Engine) emitCodeBlock(lines *text.Segments, source []byte) {
	e.ensurePage()
	lineHeight := e.FontSize * e.LineHeight
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		e.checkPageBreak(lineHeight)
		e.cur.Lines = append(e.cur.Lines, Line{
			Text:     strings.TrimRight(string(seg.Value(source)), "\n"),
			X:        e.Margins.Left + listIndent,
			Y:        e.cursorY,
			FontSize: e.FontSize,
		})
		e.cursorY += lineHeight
	}
	e.paragraphSpacing()
}

// inlineText flattens the inline children of a block into plain text,
// turning soft and hard line breaks into spaces.
func inlineText(node ast.Node, source []byte) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.WriteString(string(child.Text(source)))
	}
	return sb.String()
}

// itemText extracts the text of a list item, whose content usually sits
// inside a nested paragraph or text block.
func itemText(n ast.Node, source []byte) string {
	child := n.FirstChild()
	if child == nil {
		return ""
	}
	switch c := child.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return inlineText(c, source)
	case *ast.Text:
		return string(c.Segment.Value(source))
	default:
		return string(child.Text(source))
	}
}
