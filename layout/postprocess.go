package layout

import "sort"

// dedupeAndSort removes candidates sharing a (text, page) pair, keeping
// the first occurrence, then orders the survivors by page and vertical
// position. Candidates without position information sort to the top of
// their page.
func dedupeAndSort(candidates []candidate) []candidate {
	type key struct {
		text string
		page int
	}

	seen := make(map[key]bool, len(candidates))
	unique := candidates[:0]
	for _, c := range candidates {
		k := key{text: c.text, page: c.page}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, c)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].page != unique[j].page {
			return unique[i].page < unique[j].page
		}
		return unique[i].bbox.Top() < unique[j].bbox.Top()
	})

	return unique
}
