package eojeol

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

const foreignTag = "SL"

type TokenFilter interface {
	Filter([]IndexedMorpheme) []IndexedMorpheme
}

// 品詞の接頭辞で形態素を除外する
type StopTagFilter struct {
	prefixes []string
}

func NewStopTagFilter(prefixes ...string) StopTagFilter {
	return StopTagFilter{
		prefixes: prefixes,
	}
}

func (f StopTagFilter) Filter(morphemes []IndexedMorpheme) []IndexedMorpheme {
	r := make([]IndexedMorpheme, 0, len(morphemes))
	for _, m := range morphemes {
		if !f.stopped(m.Tag) {
			r = append(r, m)
		}
	}
	return r
}

func (f StopTagFilter) stopped(tag string) bool {
	for _, p := range f.prefixes {
		if strings.HasPrefix(tag, p) {
			return true
		}
	}
	return false
}

type NounFilter struct{}

func NewNounFilter() NounFilter {
	return NounFilter{}
}

func (f NounFilter) Filter(morphemes []IndexedMorpheme) []IndexedMorpheme {
	r := make([]IndexedMorpheme, 0, len(morphemes))
	for _, m := range morphemes {
		if NewMorpheme(m.Text, m.Tag).IsNoun() {
			r = append(r, m)
		}
	}
	return r
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(morphemes []IndexedMorpheme) []IndexedMorpheme {
	r := make([]IndexedMorpheme, len(morphemes))
	for i, m := range morphemes {
		m.Term = strings.ToLower(m.Term)
		r[i] = m
	}
	return r
}

// 外国語(SL)の形態素だけ英語として語幹にする
type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(morphemes []IndexedMorpheme) []IndexedMorpheme {
	r := make([]IndexedMorpheme, len(morphemes))
	for i, m := range morphemes {
		if m.Tag == foreignTag {
			m.Term = english.Stem(m.Term, false)
		}
		r[i] = m
	}
	return r
}
