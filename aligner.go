package eojeol

// Align groups the expanded morphemes of records by their eojeol index.
// It returns exactly one Eojeol per surface; records whose index falls
// outside the surfaces are dropped.
func Align(records []Record, indices []int, surfaces []string) []Eojeol {
	eojeols := make([]Eojeol, len(surfaces))
	for i, s := range surfaces {
		eojeols[i] = NewEojeol(i, s)
	}

	for i, r := range records {
		if i >= len(indices) {
			break
		}
		idx := indices[i]
		if idx < 0 || idx >= len(eojeols) {
			continue
		}
		eojeols[idx].Morphemes = append(eojeols[idx].Morphemes, Expand(r)...)
	}
	return eojeols
}
