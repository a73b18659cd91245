package morphology

import (
	"errors"
	"strings"
)

// EOS は解析結果の末尾を示す番兵行
const EOS = "EOS"

// ErrAnalyzerUnavailable は解析器の初期化や呼び出しができない時に返す
var ErrAnalyzerUnavailable = errors.New("morphology: analyzer unavailable")

// 外部の形態素解析器(MeCab-ko互換)をラップする
// Analyzeは "SURFACE\tFEATURE_CSV" の行を並べ、最後にEOS行を1つだけ付けた文字列を返す
type Morphology interface {
	Analyze(string) (string, error)
	Close() error
}

type MorphologyToken struct {
	Surface  string
	Features []string
}

func NewMorphologyToken(surface string, features ...string) MorphologyToken {
	return MorphologyToken{
		Surface:  surface,
		Features: features,
	}
}

// Render はトークン列をMeCabの出力形式に整形する
func Render(tokens []MorphologyToken) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(token.Surface)
		b.WriteByte('\t')
		b.WriteString(strings.Join(token.Features, ","))
		b.WriteByte('\n')
	}
	b.WriteString(EOS)
	b.WriteByte('\n')
	return b.String()
}
