package eojeol

import "strings"

const (
	IdeographicSpace = "\u3000"

	// MeCab-koは空白の有無に関わらずこの句を1語節として解析する
	yeongchigiYeongcha       = "영치기 영차"
	yeongchigiYeongchaMerged = "영치기영차"
)

type CharFilter interface {
	Filter(string) string
}

type Mapping struct {
	From string
	To   string
}

// 登録順に置換する
type MappingCharFilter struct {
	mappings []Mapping
}

func NewMappingCharFilter(mappings ...Mapping) *MappingCharFilter {
	return &MappingCharFilter{mappings: mappings}
}

func (c *MappingCharFilter) Filter(s string) string {
	for _, m := range c.mappings {
		s = strings.ReplaceAll(s, m.From, m.To)
	}
	return s
}

func NewIdeographicSpaceFilter() *MappingCharFilter {
	return NewMappingCharFilter(Mapping{From: IdeographicSpace, To: " "})
}

func NewPhraseFilter() *MappingCharFilter {
	return NewMappingCharFilter(Mapping{From: yeongchigiYeongcha, To: yeongchigiYeongchaMerged})
}

// NewNormalizer returns the filters applied to a phrase before it is split
// into eojeols and handed to the analyzer.
func NewNormalizer() []CharFilter {
	return []CharFilter{
		NewIdeographicSpaceFilter(),
		NewPhraseFilter(),
	}
}

// NewJamoFilter maps the final-consonant jamo emitted by the analyzer
// (U+11AF, U+11AB) to the ordinary compatibility jamo ㄹ and ㄴ.
func NewJamoFilter() *MappingCharFilter {
	return NewMappingCharFilter(
		Mapping{From: "\u11af", To: "ㄹ"},
		Mapping{From: "\u11ab", To: "ㄴ"},
	)
}

func Normalize(s string) string {
	return applyCharFilters(NewNormalizer(), s)
}

func applyCharFilters(filters []CharFilter, s string) string {
	for _, c := range filters {
		s = c.Filter(s)
	}
	return s
}
