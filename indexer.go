package eojeol

type Indexer struct {
	Storage      Storage       // 永続化層
	Tagger       *Tagger       // 文章を語節と形態素に分けるタガー
	TokenFilters []TokenFilter // 保存前に適用するフィルタ
}

func NewIndexer(storage Storage, tagger *Tagger, tokenFilters ...TokenFilter) *Indexer {
	return &Indexer{
		Storage:      storage,
		Tagger:       tagger,
		TokenFilters: tokenFilters,
	}
}

// 1.ドキュメントを語節ごとに形態素解析する
// 2.ドキュメントを格納し、ドキュメントIDを取得する
// 3.形態素に語節番号と出現位置を付け、フィルタを通してから格納する
func (i *Indexer) AddDocument(doc Document) (DocumentID, error) {
	eojeols, err := i.Tagger.Eojeols(doc.Body)
	if err != nil {
		return 0, err
	}
	doc.EojeolCount = len(eojeols)

	docID, err := i.Storage.AddDocument(doc)
	if err != nil {
		return 0, err
	}

	morphemes := i.filter(indexMorphemes(docID, eojeols))
	if err := i.Storage.AddMorphemes(morphemes); err != nil {
		return 0, err
	}
	return docID, nil
}

// Analyze runs text through the same tagging and filters as AddDocument.
// The result is used to build queries.
func (i *Indexer) Analyze(text string) ([]IndexedMorpheme, error) {
	eojeols, err := i.Tagger.Eojeols(text)
	if err != nil {
		return nil, err
	}
	return i.filter(indexMorphemes(0, eojeols)), nil
}

func (i *Indexer) filter(morphemes []IndexedMorpheme) []IndexedMorpheme {
	for _, f := range i.TokenFilters {
		morphemes = f.Filter(morphemes)
	}
	return morphemes
}

// 語を含むドキュメントを返す
func (i *Indexer) Search(term string) ([]Document, error) {
	ids, err := i.Storage.GetDocumentIDsByTerm(term)
	if err != nil {
		return nil, err
	}
	return i.Storage.GetDocuments(ids)
}

func indexMorphemes(docID DocumentID, eojeols []Eojeol) []IndexedMorpheme {
	var morphemes []IndexedMorpheme
	pos := 0
	for _, e := range eojeols {
		for _, m := range e.Morphemes {
			morphemes = append(morphemes, IndexedMorpheme{
				DocumentID:  docID,
				EojeolIndex: e.Index,
				Position:    pos,
				Text:        m.Text,
				Tag:         m.Tag,
				Term:        m.Text,
			})
			pos++
		}
	}
	return morphemes
}
