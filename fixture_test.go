package eojeol

import "testing"

// MeCab-ko(mecab-ko-dic)の実際の出力
const (
	// 이게 뭔지 알아.
	rawIgeMwonji = "이게\tNP+JKS,*,F,이게,Inflect,NP,JKS,이것/NP/*+이/JKS/*\n" +
		"뭔지\tNP+VCP+EC,*,F,뭔지,Inflect,NP,EC,뭐/NP/*+이/VCP/*+ᆫ지/EC/*\n" +
		"알\tVV,*,T,알,*,*,*,*\n" +
		"아\tEF,*,F,아,*,*,*,*\n" +
		".\tSF,*,*,*,*,*,*,*\n" +
		"EOS\n"

	// 자연주의 쇼핑몰은 어떤 곳인가?
	rawJayeon = "자연\tNNG,*,T,자연,*,*,*,*\n" +
		"주\tNNG,*,F,주,*,*,*,*\n" +
		"의\tJKG,*,F,의,*,*,*,*\n" +
		"쇼핑몰\tNNG,*,T,쇼핑몰,Compound,*,*,쇼핑/NNG/*+몰/NNG/*\n" +
		"은\tJX,*,T,은,*,*,*,*\n" +
		"어떤\tMM,*,T,어떤,*,*,*,*\n" +
		"곳\tNNG,*,T,곳,*,*,*,*\n" +
		"인가\tVCP+EF,*,F,인가,Preanalysis,VCP,EF,이/VCP/*+ᆫ가/EF/*\n" +
		"?\tSF,*,*,*,*,*,*,*\n" +
		"EOS\n"

	// 국민을 위한 정치
	rawWihan = "국민\tNNG,*,T,국민,*,*,*,*\n" +
		"을\tJKO,*,T,을,*,*,*,*\n" +
		"위한\tVV+ETM,*,T,위한,Inflect,VV,ETM,위하/VV/*+ᆫ/ETM/*\n" +
		"정치\tNNG,*,F,정치,*,*,*,*\n" +
		"EOS\n"
)

type fixture struct {
	phrase string
	raw    string
}

var fixtures = []fixture{
	{phrase: "이게 뭔지 알아.", raw: rawIgeMwonji},
	{phrase: "자연주의 쇼핑몰은 어떤 곳인가?", raw: rawJayeon},
	{phrase: "국민을 위한 정치", raw: rawWihan},
}

func mustParseRecords(t *testing.T, raw string) []Record {
	t.Helper()
	records, err := ParseRecords(raw)
	if err != nil {
		t.Fatal(err)
	}
	return records
}

// 表層形だけを持つレコード
func surfaceRecords(surfaces ...string) []Record {
	records := make([]Record, len(surfaces))
	for i, s := range surfaces {
		records[i] = Record{
			Surface:  s,
			Tag:      "NNG",
			Features: []string{"NNG", "*", "*", s, "*", "*", "*", "*"},
		}
	}
	return records
}
