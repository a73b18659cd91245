package eojeol

import "strings"

type Morpheme struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

func NewMorpheme(text, tag string) Morpheme {
	return Morpheme{
		Text: text,
		Tag:  tag,
	}
}

// "text/tag" の形式
func (m Morpheme) String() string {
	return m.Text + "/" + m.Tag
}

// 体言(N*)かどうか
func (m Morpheme) IsNoun() bool {
	return strings.HasPrefix(m.Tag, "N")
}

// 語節(空白区切りの単位)
type Eojeol struct {
	Index     int        `json:"index"`
	Surface   string     `json:"surface"`
	Morphemes []Morpheme `json:"morphemes"`
}

func NewEojeol(index int, surface string, morphemes ...Morpheme) Eojeol {
	if morphemes == nil {
		morphemes = []Morpheme{}
	}
	return Eojeol{
		Index:     index,
		Surface:   surface,
		Morphemes: morphemes,
	}
}

// 形態素を連結した文字列。通常はSurfaceと一致する
func (e Eojeol) Text() string {
	var b strings.Builder
	for _, m := range e.Morphemes {
		b.WriteString(m.Text)
	}
	return b.String()
}

func Morphs(morphemes []Morpheme) []string {
	r := make([]string, len(morphemes))
	for i, m := range morphemes {
		r[i] = m.Text
	}
	return r
}

func Nouns(morphemes []Morpheme) []string {
	r := make([]string, 0, len(morphemes))
	for _, m := range morphemes {
		if m.IsNoun() {
			r = append(r, m.Text)
		}
	}
	return r
}
