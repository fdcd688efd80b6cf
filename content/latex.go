package content

import (
	"bytes"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"

	"github.com/mkview/mkview/document"
)

// LaTeX lays a LaTeX math source out into a paginated document by
// converting it to MathML and laying out the result.
func (e *Engine) LaTeX(latex string) (*document.Document, error) {
	// Display math delimiters so goldmark's math extension picks the
	// source up.
	source := "$$" + latex + "$$"

	md := goldmark.New(
		goldmark.WithExtensions(
			treeblood.MathML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return nil, err
	}
	return e.HTML(buf.Bytes())
}
