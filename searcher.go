package eojeol

type Searcher interface {
	Search() ([]Document, error)
}

type MatchSearcher struct {
	terms   []string
	logic   Logic
	storage Storage
	sorter  Sorter
}

func NewMatchSearcher(terms []string, logic Logic, storage Storage, sorter Sorter) *MatchSearcher {
	return &MatchSearcher{
		terms:   terms,
		logic:   logic,
		storage: storage,
		sorter:  sorter,
	}
}

// 1.語ごとにその語を含むドキュメントIDを取り出す
// 2.ANDなら積集合、ORなら和集合をとる
// 3.ドキュメントを取り出し、ソーターがあれば並べ替える
func (ms *MatchSearcher) Search() ([]Document, error) {
	ids, err := ms.documentIDs()
	if err != nil {
		return nil, err
	}
	docs, err := ms.storage.GetDocuments(ids)
	if err != nil {
		return nil, err
	}
	if ms.sorter == nil {
		return docs, nil
	}
	return ms.sorter.Sort(docs, ms.terms)
}

func (ms *MatchSearcher) documentIDs() ([]DocumentID, error) {
	var r []DocumentID
	for i, term := range ms.terms {
		ids, err := ms.storage.GetDocumentIDsByTerm(term)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			r = ids
			continue
		}
		if ms.logic == AND {
			r = intersection(r, ids)
		} else {
			r = union(r, ids)
		}
	}
	if r == nil {
		return []DocumentID{}, nil
	}
	return r, nil
}

type PhraseSearcher struct {
	morphemes []IndexedMorpheme
	storage   Storage
	sorter    Sorter
}

func NewPhraseSearcher(morphemes []IndexedMorpheme, storage Storage, sorter Sorter) *PhraseSearcher {
	return &PhraseSearcher{
		morphemes: morphemes,
		storage:   storage,
		sorter:    sorter,
	}
}

// フレーズ検索
// 1.全ての語を含むドキュメントに絞り込む
// 2.ドキュメントの形態素から語ごとの出現位置を取り出す
// 3.クエリ内の相対位置を保って全ての語が出現していれば検索結果に追加する
func (ps *PhraseSearcher) Search() ([]Document, error) {
	if len(ps.morphemes) == 0 {
		return []Document{}, nil
	}

	candidates, err := NewMatchSearcher(terms(ps.morphemes), AND, ps.storage, nil).documentIDs()
	if err != nil {
		return nil, err
	}

	matched := make([]DocumentID, 0, len(candidates))
	for _, id := range candidates {
		morphemes, err := ps.storage.GetMorphemesByDocumentID(id)
		if err != nil {
			return nil, err
		}
		if isPhraseMatch(ps.morphemes, positionsByTerm(morphemes)) {
			matched = append(matched, id)
		}
	}

	docs, err := ps.storage.GetDocuments(matched)
	if err != nil {
		return nil, err
	}
	if ps.sorter == nil {
		return docs, nil
	}
	return ps.sorter.Sort(docs, terms(ps.morphemes))
}

func positionsByTerm(morphemes []IndexedMorpheme) map[string]map[int]bool {
	r := make(map[string]map[int]bool)
	for _, m := range morphemes {
		if r[m.Term] == nil {
			r[m.Term] = make(map[int]bool)
		}
		r[m.Term][m.Position] = true
	}
	return r
}

// 先頭の語の出現位置を起点に、残りの語がクエリと同じ相対位置に出現するか
func isPhraseMatch(query []IndexedMorpheme, positions map[string]map[int]bool) bool {
	head := query[0]
	for start := range positions[head.Term] {
		matched := true
		for _, m := range query[1:] {
			if !positions[m.Term][start+m.Position-head.Position] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// intersection returns the set intersection between a and b.
// a and b have to be sorted in ascending order and contain no duplicates.
func intersection(a, b []DocumentID) []DocumentID {
	r := make([]DocumentID, 0, min(len(a), len(b)))
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			i++
		} else if a[i] > b[j] {
			j++
		} else {
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}

// union returns the sorted set union of a and b under the same conditions.
func union(a, b []DocumentID) []DocumentID {
	r := make([]DocumentID, 0, len(a)+len(b))
	var i, j int
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]):
			r = append(r, a[i])
			i++
		case i >= len(a) || a[i] > b[j]:
			r = append(r, b[j])
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}
