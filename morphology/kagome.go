package morphology

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
// 辞書はmecab-ko-dicからビルドしたkagome形式のものを想定している
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

type kagomeConfig struct {
	userDicPath string
}

type KagomeOption func(*kagomeConfig)

// WithUserDict はユーザー辞書を追加で読み込む
func WithUserDict(path string) KagomeOption {
	return func(c *kagomeConfig) {
		c.userDicPath = path
	}
}

func NewKagome(dicPath string, options ...KagomeOption) (*Kagome, error) {
	c := &kagomeConfig{}
	for _, option := range options {
		option(c)
	}

	d, err := dict.LoadDictFile(dicPath)
	if err != nil {
		return nil, fmt.Errorf("%w: load dictionary %q: %w", ErrAnalyzerUnavailable, dicPath, err)
	}

	var tokenizerOptions []tokenizer.Option
	if c.userDicPath != "" {
		udict, err := dict.NewUserDict(c.userDicPath)
		if err != nil {
			return nil, fmt.Errorf("%w: load user dictionary %q: %w", ErrAnalyzerUnavailable, c.userDicPath, err)
		}
		tokenizerOptions = append(tokenizerOptions, tokenizer.UserDict(udict))
	}
	return NewKagomeWithDict(d, tokenizerOptions...)
}

func NewKagomeWithDict(d *dict.Dict, options ...tokenizer.Option) (*Kagome, error) {
	t, err := tokenizer.New(d, append([]tokenizer.Option{tokenizer.OmitBosEos()}, options...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyzerUnavailable, err)
	}
	return &Kagome{
		kagome: t,
	}, nil
}

func (k *Kagome) Tokens(text string) []MorphologyToken {
	tokens := k.kagome.Tokenize(text)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		// 空白は語節の区切りなので形態素として扱わない
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, token.Features()...))
	}
	return kagomeTokens
}

func (k *Kagome) Analyze(text string) (string, error) {
	return Render(k.Tokens(text)), nil
}

func (k *Kagome) Close() error {
	return nil
}
