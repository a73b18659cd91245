package eojeol

import (
	"errors"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
)

func TestIndexerAddDocument(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMorphology := NewMockMorphology(mockCtrl)
	mockStorage := NewMockStorage(mockCtrl)

	body := "국민을 위한 정치"
	mockMorphology.EXPECT().Analyze(body).Return(rawWihan, nil)
	mockStorage.EXPECT().AddDocument(Document{Body: body, EojeolCount: 3}).Return(DocumentID(7), nil)
	mockStorage.EXPECT().AddMorphemes([]IndexedMorpheme{
		{DocumentID: 7, EojeolIndex: 0, Position: 0, Text: "국민", Tag: "NNG", Term: "국민"},
		{DocumentID: 7, EojeolIndex: 1, Position: 2, Text: "위하", Tag: "VV", Term: "위하"},
		{DocumentID: 7, EojeolIndex: 1, Position: 3, Text: "ㄴ", Tag: "ETM", Term: "ㄴ"},
		{DocumentID: 7, EojeolIndex: 2, Position: 4, Text: "정치", Tag: "NNG", Term: "정치"},
	}).Return(nil)

	indexer := NewIndexer(mockStorage, NewTagger(mockMorphology, WithLogger(discardLogger())), NewStopTagFilter("J"))
	docID, err := indexer.AddDocument(NewDocument(body))
	if err != nil {
		t.Fatal(err)
	}
	if docID != 7 {
		t.Errorf("docID = %d, want 7", docID)
	}
}

func TestIndexerAddDocumentStorageError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMorphology := NewMockMorphology(mockCtrl)
	mockStorage := NewMockStorage(mockCtrl)

	errStorage := errors.New("connection refused")
	mockMorphology.EXPECT().Analyze("국민을 위한 정치").Return(rawWihan, nil)
	mockStorage.EXPECT().AddDocument(gomock.Any()).Return(DocumentID(0), errStorage)

	indexer := NewIndexer(mockStorage, NewTagger(mockMorphology, WithLogger(discardLogger())))
	if _, err := indexer.AddDocument(NewDocument("국민을 위한 정치")); !errors.Is(err, errStorage) {
		t.Errorf("Indexer.AddDocument() error = %v, want %v", err, errStorage)
	}
}

func TestIndexerSearch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := NewMockStorage(mockCtrl)

	docs := []Document{
		{ID: 1, Body: "국민을 위한 정치", EojeolCount: 3},
		{ID: 4, Body: "정치 뉴스", EojeolCount: 2},
	}
	gomock.InOrder(
		mockStorage.EXPECT().GetDocumentIDsByTerm("정치").Return([]DocumentID{1, 4}, nil),
		mockStorage.EXPECT().GetDocuments([]DocumentID{1, 4}).Return(docs, nil),
	)

	indexer := NewIndexer(mockStorage, nil)
	actual, err := indexer.Search("정치")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(actual, docs); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestIndexMorphemes(t *testing.T) {
	eojeols := []Eojeol{
		NewEojeol(0, "이게", NewMorpheme("이것", "NP"), NewMorpheme("이", "JKS")),
		NewEojeol(1, "알아", NewMorpheme("알", "VV"), NewMorpheme("아", "EF")),
	}
	expected := []IndexedMorpheme{
		{DocumentID: 2, EojeolIndex: 0, Position: 0, Text: "이것", Tag: "NP", Term: "이것"},
		{DocumentID: 2, EojeolIndex: 0, Position: 1, Text: "이", Tag: "JKS", Term: "이"},
		{DocumentID: 2, EojeolIndex: 1, Position: 2, Text: "알", Tag: "VV", Term: "알"},
		{DocumentID: 2, EojeolIndex: 1, Position: 3, Text: "아", Tag: "EF", Term: "아"},
	}
	if diff := cmp.Diff(indexMorphemes(2, eojeols), expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestIndexerAnalyze(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMorphology := NewMockMorphology(mockCtrl)
	mockMorphology.EXPECT().Analyze("국민을 위한 정치").Return(rawWihan, nil)

	indexer := NewIndexer(nil, NewTagger(mockMorphology, WithLogger(discardLogger())), NewStopTagFilter("J", "E"))
	actual, err := indexer.Analyze("국민을 위한 정치")
	if err != nil {
		t.Fatal(err)
	}
	expected := []IndexedMorpheme{
		{EojeolIndex: 0, Position: 0, Text: "국민", Tag: "NNG", Term: "국민"},
		{EojeolIndex: 1, Position: 2, Text: "위하", Tag: "VV", Term: "위하"},
		{EojeolIndex: 2, Position: 4, Text: "정치", Tag: "NNG", Term: "정치"},
	}
	if diff := cmp.Diff(actual, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
