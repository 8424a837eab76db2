package file2fa

import (
	"fmt"

	"github.com/dslipak/pdf"
)

// ExtractPages opens a statement PDF and returns its positioned text
// fragments, one slice per page, in page order. Layout reconstruction is
// left to ReconstructPage; this only adapts the decoder's text items.
func ExtractPages(path string) ([][]Fragment, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open PDF %q: %w", path, err)
	}

	pages := make([][]Fragment, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		content := page.Content()
		fragments := make([]Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			fragments = append(fragments, Fragment{Text: t.S, X: t.X, Y: t.Y})
		}
		pages = append(pages, fragments)
	}
	return pages, nil
}
