package eojeol

type Logic int

const (
	AND Logic = iota
	OR
)

type Query interface {
	Searcher(Storage) Searcher
}

type MatchQuery struct {
	morphemes []IndexedMorpheme
	logic     Logic
	sorter    Sorter
}

// Indexer.Analyzeで解析したクエリから作る
func NewMatchQuery(morphemes []IndexedMorpheme, logic Logic, sorter Sorter) *MatchQuery {
	return &MatchQuery{
		morphemes: morphemes,
		logic:     logic,
		sorter:    sorter,
	}
}

func (q *MatchQuery) Searcher(storage Storage) Searcher {
	return NewMatchSearcher(terms(q.morphemes), q.logic, storage, q.sorter)
}

type PhraseQuery struct {
	morphemes []IndexedMorpheme
	sorter    Sorter
}

func NewPhraseQuery(morphemes []IndexedMorpheme, sorter Sorter) *PhraseQuery {
	return &PhraseQuery{
		morphemes: morphemes,
		sorter:    sorter,
	}
}

func (q *PhraseQuery) Searcher(storage Storage) Searcher {
	return NewPhraseSearcher(q.morphemes, storage, q.sorter)
}

// 重複を除いた語の列
func terms(morphemes []IndexedMorpheme) []string {
	seen := make(map[string]bool, len(morphemes))
	r := make([]string, 0, len(morphemes))
	for _, m := range morphemes {
		if seen[m.Term] {
			continue
		}
		seen[m.Term] = true
		r = append(r, m.Term)
	}
	return r
}
