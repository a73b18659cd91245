package eojeol

import (
	"fmt"
	"strings"
)

// 形態素の連結が語節と一致しなかったことを表す。結果は返すので致命的ではない
type AlignmentMismatch struct {
	EojeolIndex int    `json:"eojeol_index"`
	Want        string `json:"want"`
	Got         string `json:"got"`
}

func (m *AlignmentMismatch) Error() string {
	return fmt.Sprintf("eojeol %d: morphemes concatenate to %q, want %q", m.EojeolIndex, m.Got, m.Want)
}

// IndexEojeols assigns every record the index of the eojeol of
// normalizedText it belongs to.
func IndexEojeols(records []Record, normalizedText string) ([]int, *AlignmentMismatch) {
	return indexEojeols(records, strings.Fields(normalizedText))
}

// 1.レコードの表層形を語節と一致するまで連結する
// 2.連結中のレコードには現在の語節番号を割り当てる
// 3.一致したら次の語節へ進み、連結をリセットする
func indexEojeols(records []Record, eojeols []string) ([]int, *AlignmentMismatch) {
	indices := make([]int, len(records))
	if len(eojeols) == 0 {
		var got strings.Builder
		for i, r := range records {
			indices[i] = -1
			got.WriteString(strings.TrimSpace(r.Surface))
		}
		if got.Len() == 0 {
			return indices, nil
		}
		return indices, &AlignmentMismatch{EojeolIndex: -1, Got: got.String()}
	}

	phrase := NewPhraseFilter()
	last := len(eojeols) - 1
	cursor := 0
	concat := ""
	for i, r := range records {
		concat += phrase.Filter(strings.TrimSpace(r.Surface))
		// 語節を使い切った後のレコードは最後の語節に寄せる
		if cursor > last {
			indices[i] = last
			continue
		}
		indices[i] = cursor
		if concat == eojeols[cursor] {
			cursor++
			concat = ""
		}
	}

	switch {
	case cursor <= last:
		return indices, &AlignmentMismatch{EojeolIndex: cursor, Want: eojeols[cursor], Got: concat}
	case concat != "":
		return indices, &AlignmentMismatch{EojeolIndex: last, Got: concat}
	}
	return indices, nil
}
