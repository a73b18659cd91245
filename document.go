package eojeol

type DocumentID uint64

type Document struct {
	ID          DocumentID `db:"id" json:"id"`
	Body        string     `db:"body" json:"body"`
	EojeolCount int        `db:"eojeol_count" json:"eojeol_count"`
}

func NewDocument(body string) Document {
	return Document{
		Body: body,
	}
}

// 文書中の位置付きで保存する形態素
type IndexedMorpheme struct {
	DocumentID  DocumentID `db:"document_id" json:"document_id"`
	EojeolIndex int        `db:"eojeol_index" json:"eojeol_index"` // 文書内の語節番号
	Position    int        `db:"position" json:"position"`         // 文書内の形態素番号
	Text        string     `db:"text" json:"text"`
	Tag         string     `db:"tag" json:"tag"`
	Term        string     `db:"term" json:"term"` // 検索用に正規化した語
}
