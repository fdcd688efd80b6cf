package document

import "testing"

func TestClampPage(t *testing.T) {
	doc := &Document{Pages: make([]Page, 5), PageWidthPt: 612, PageHeightPt: 792}

	cases := []struct {
		name string
		in   int
		want int
	}{
		{"InRange", 3, 3},
		{"BelowFirst", 0, 1},
		{"Negative", -7, 1},
		{"BeyondLast", 9, 5},
		{"First", 1, 1},
		{"Last", 5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := doc.ClampPage(c.in); got != c.want {
				t.Errorf("Expected page %d, got %d", c.want, got)
			}
		})
	}
}

func TestNilDocument(t *testing.T) {
	var doc *Document
	if got := doc.NumPages(); got != 0 {
		t.Errorf("Expected 0 pages, got %d", got)
	}
	if got := doc.ClampPage(3); got != 0 {
		t.Errorf("Expected page 0, got %d", got)
	}
	if size := doc.PageSize(); size.Width != 0 || size.Height != 0 {
		t.Errorf("Expected zero size, got %+v", size)
	}
}

func TestEmptyDocument(t *testing.T) {
	doc := &Document{PageWidthPt: 612, PageHeightPt: 792}
	if got := doc.ClampPage(1); got != 0 {
		t.Errorf("Expected page 0 for empty document, got %d", got)
	}
	if size := doc.PageSize(); size.Width != 612 {
		t.Errorf("Expected width 612, got %v", size.Width)
	}
}
