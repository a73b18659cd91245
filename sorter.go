package eojeol

import (
	"math"
	"sort"
)

type Sorter interface {
	Sort(docs []Document, terms []string) ([]Document, error)
}

type TfIdfSorter struct {
	Storage Storage
}

func NewTfIdfSorter(storage Storage) *TfIdfSorter {
	return &TfIdfSorter{
		Storage: storage,
	}
}

// スコアの降順に並べる。同点なら元の順序を保つ
func (s *TfIdfSorter) Sort(docs []Document, terms []string) ([]Document, error) {
	allDocsCount, err := s.Storage.CountDocuments()
	if err != nil {
		return nil, err
	}

	idfs := make([]float64, len(terms))
	for i, term := range terms {
		ids, err := s.Storage.GetDocumentIDsByTerm(term)
		if err != nil {
			return nil, err
		}
		idfs[i] = math.Log(float64(allDocsCount) / float64(len(ids)+1))
	}

	var scores documentScores = make([]documentScore, len(docs))
	for i, doc := range docs {
		morphemes, err := s.Storage.GetMorphemesByDocumentID(doc.ID)
		if err != nil {
			return nil, err
		}
		counts := make(map[string]int, len(morphemes))
		for _, m := range morphemes {
			counts[m.Term]++
		}

		var sum float64
		if len(morphemes) > 0 {
			for j, term := range terms {
				tf := float64(counts[term]) / float64(len(morphemes))
				sum += tf * idfs[j]
			}
		}
		scores[i] = newDocumentScore(doc, sum)
	}
	sort.Stable(scores)
	return scores.toDocuments(), nil
}

type documentScore struct {
	document Document
	score    float64
}

func newDocumentScore(doc Document, score float64) documentScore {
	return documentScore{
		document: doc,
		score:    score,
	}
}

type documentScores []documentScore

func (ds documentScores) Len() int           { return len(ds) }
func (ds documentScores) Less(i, j int) bool { return ds[i].score > ds[j].score }
func (ds documentScores) Swap(i, j int)      { ds[i], ds[j] = ds[j], ds[i] }

func (ds documentScores) toDocuments() []Document {
	docs := make([]Document, len(ds))
	for i, d := range ds {
		docs[i] = d.document
	}
	return docs
}
