package file2fa

import (
	"math"
	"slices"
	"strings"
)

// Fragment is one positioned text item from the PDF text layer.
type Fragment struct {
	Text string
	X, Y float64
}

// yQuantum is the grouping step for the y coordinate: fragments whose
// rounded y falls in the same 5-unit bucket belong to one visual line.
const yQuantum = 5.0

// ReconstructPage groups one page's positioned fragments into visual lines.
//
// Blank fragments are dropped, the rest are sorted top of page first
// (descending y, then ascending x so a line reads left to right), and each
// fragment's y is quantized to the nearest multiple of 5 to form the
// line-grouping key. One string per distinct key is returned, in the order
// the keys are first encountered, texts space-joined.
//
// It never fails: malformed geometry just yields whatever lines the sort
// produces, possibly none.
func ReconstructPage(fragments []Fragment) []string {
	kept := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		kept = append(kept, f)
	}

	slices.SortStableFunc(kept, func(a, b Fragment) int {
		switch {
		case a.Y > b.Y:
			return -1
		case a.Y < b.Y:
			return 1
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})

	var keys []int
	groups := make(map[int][]string)
	for _, f := range kept {
		key := int(math.Round(f.Y/yQuantum)) * int(yQuantum)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], f.Text)
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, strings.Join(groups[key], " "))
	}
	return lines
}

// JoinPages reconstructs every page and joins them, newline-separated in
// page order, into the single text surface the extractor scans.
func JoinPages(pages [][]Fragment) string {
	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		texts = append(texts, strings.Join(ReconstructPage(page), "\n"))
	}
	return strings.Join(texts, "\n")
}
