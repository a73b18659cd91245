package eojeol

// Output holds one of four renderings selected by Flatten and Join:
//
//	Flatten  Join   field
//	true     false  Pairs
//	true     true   Strings
//	false    false  EojeolPairs
//	false    true   EojeolStrings
type Output struct {
	Flatten bool `json:"flatten"`
	Join    bool `json:"join"`

	Pairs         []Morpheme   `json:"pairs,omitempty"`
	Strings       []string     `json:"strings,omitempty"`
	EojeolPairs   [][]Morpheme `json:"eojeol_pairs,omitempty"`
	EojeolStrings [][]string   `json:"eojeol_strings,omitempty"`

	// 語節の再構成がずれた時だけ設定される
	Mismatch *AlignmentMismatch `json:"mismatch,omitempty"`
}

func Format(eojeols []Eojeol, flatten, join bool) Output {
	if flatten {
		var flat []Morpheme
		for _, e := range eojeols {
			flat = append(flat, e.Morphemes...)
		}
		return FormatFlat(flat, join)
	}

	out := Output{Join: join}
	if join {
		out.EojeolStrings = make([][]string, len(eojeols))
		for i, e := range eojeols {
			out.EojeolStrings[i] = joinMorphemes(e.Morphemes)
		}
		return out
	}
	out.EojeolPairs = make([][]Morpheme, len(eojeols))
	for i, e := range eojeols {
		pairs := make([]Morpheme, len(e.Morphemes))
		copy(pairs, e.Morphemes)
		out.EojeolPairs[i] = pairs
	}
	return out
}

func FormatFlat(morphemes []Morpheme, join bool) Output {
	if morphemes == nil {
		morphemes = []Morpheme{}
	}
	out := Output{Flatten: true, Join: join}
	if join {
		out.Strings = joinMorphemes(morphemes)
		return out
	}
	out.Pairs = morphemes
	return out
}

func joinMorphemes(morphemes []Morpheme) []string {
	r := make([]string, len(morphemes))
	for i, m := range morphemes {
		r[i] = m.String()
	}
	return r
}

// Flat returns the pair views as a single morpheme sequence. It returns nil
// for the joined views.
func (o Output) Flat() []Morpheme {
	if o.Join {
		return nil
	}
	if o.Flatten {
		return o.Pairs
	}
	flat := []Morpheme{}
	for _, e := range o.EojeolPairs {
		flat = append(flat, e...)
	}
	return flat
}

// FlatStrings returns every morpheme as "text/tag" regardless of the view.
func (o Output) FlatStrings() []string {
	switch {
	case o.Flatten && o.Join:
		return o.Strings
	case o.Join:
		flat := []string{}
		for _, e := range o.EojeolStrings {
			flat = append(flat, e...)
		}
		return flat
	}
	return joinMorphemes(o.Flat())
}
