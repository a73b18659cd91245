package eojeol

// Expand returns the morphemes a record stands for. An inflected record is
// replaced by its decomposition and its compound tag is dropped.
func Expand(r Record) []Morpheme {
	if !r.Inflected {
		return []Morpheme{NewMorpheme(r.Surface, r.Tag)}
	}
	morphemes := make([]Morpheme, len(r.Decomposition))
	copy(morphemes, r.Decomposition)
	return morphemes
}

func ExpandAll(records []Record) []Morpheme {
	morphemes := make([]Morpheme, 0, len(records))
	for _, r := range records {
		morphemes = append(morphemes, Expand(r)...)
	}
	return morphemes
}
