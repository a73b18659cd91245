package eojeol

type Storage interface {
	AddDocument(Document) (DocumentID, error)                       // ドキュメントを挿入する。挿入したドキュメントのIDを返す。
	GetDocuments([]DocumentID) ([]Document, error)                  // 複数IDから複数ドキュメントを返す
	AddMorphemes([]IndexedMorpheme) error                           // 形態素をまとめて挿入する
	GetMorphemesByDocumentID(DocumentID) ([]IndexedMorpheme, error) // ドキュメントの形態素を出現順に返す
	GetDocumentIDsByTerm(string) ([]DocumentID, error)              // 語を含むドキュメントのIDを昇順で返す
	CountDocuments() (int, error)                                   // ドキュメントの総数を返す
}
