package eojeol

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kotaroooo0/eojeol/morphology"
)

// Tagger owns one analyzer handle. The handle is usually not re-entrant, so
// a Tagger must not be used from several goroutines at once; use one Tagger
// per worker instead (see BatchTagger).
type Tagger struct {
	morphology    morphology.Morphology
	charFilters   []CharFilter // 解析前のフレーズに適用する
	outputFilters []CharFilter // 解析器の生の出力に適用する
	perEojeol     bool
	logger        *slog.Logger
}

type TaggerOption func(*Tagger)

func WithLogger(logger *slog.Logger) TaggerOption {
	return func(t *Tagger) {
		t.logger = logger
	}
}

func WithCharFilters(filters ...CharFilter) TaggerOption {
	return func(t *Tagger) {
		t.charFilters = filters
	}
}

func WithOutputFilters(filters ...CharFilter) TaggerOption {
	return func(t *Tagger) {
		t.outputFilters = filters
	}
}

// WithPerEojeol analyzes every eojeol with its own analyzer call instead of
// analyzing the phrase once and realigning the records.
func WithPerEojeol(perEojeol bool) TaggerOption {
	return func(t *Tagger) {
		t.perEojeol = perEojeol
	}
}

func NewTagger(m morphology.Morphology, options ...TaggerOption) *Tagger {
	t := &Tagger{
		morphology:    m,
		charFilters:   NewNormalizer(),
		outputFilters: []CharFilter{NewJamoFilter()},
	}
	for _, option := range options {
		option(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

func (t *Tagger) Close() error {
	return t.morphology.Close()
}

type posConfig struct {
	flatten bool
	join    bool
}

type PosOption func(*posConfig)

// WithFlatten(false) keeps the morphemes grouped by eojeol.
func WithFlatten(flatten bool) PosOption {
	return func(c *posConfig) {
		c.flatten = flatten
	}
}

// WithJoin(true) renders every morpheme as "text/tag".
func WithJoin(join bool) PosOption {
	return func(c *posConfig) {
		c.join = join
	}
}

// Pos tags phrase. By default the result is flat (morpheme, tag) pairs.
func (t *Tagger) Pos(phrase string, options ...PosOption) (Output, error) {
	c := posConfig{flatten: true}
	for _, option := range options {
		option(&c)
	}

	text := applyCharFilters(t.charFilters, phrase)
	if c.flatten && !t.perEojeol {
		records, err := t.analyze(text)
		if err != nil {
			return Output{}, err
		}
		return FormatFlat(ExpandAll(records), c.join), nil
	}

	eojeols, mismatch, err := t.eojeols(text)
	if err != nil {
		return Output{}, err
	}
	out := Format(eojeols, c.flatten, c.join)
	out.Mismatch = mismatch
	return out, nil
}

func (t *Tagger) Morphs(phrase string) ([]string, error) {
	out, err := t.Pos(phrase)
	if err != nil {
		return nil, err
	}
	return Morphs(out.Pairs), nil
}

func (t *Tagger) Nouns(phrase string) ([]string, error) {
	out, err := t.Pos(phrase)
	if err != nil {
		return nil, err
	}
	return Nouns(out.Pairs), nil
}

// Eojeols returns the typed grouped view of phrase.
func (t *Tagger) Eojeols(phrase string) ([]Eojeol, error) {
	eojeols, _, err := t.eojeols(applyCharFilters(t.charFilters, phrase))
	return eojeols, err
}

func (t *Tagger) eojeols(text string) ([]Eojeol, *AlignmentMismatch, error) {
	if t.perEojeol {
		return t.eojeolsPerCall(text)
	}

	records, err := t.analyze(text)
	if err != nil {
		return nil, nil, err
	}
	surfaces := strings.Fields(text)
	indices, mismatch := indexEojeols(records, surfaces)
	if mismatch != nil {
		t.logger.Warn("eojeol alignment mismatch",
			"eojeol", mismatch.EojeolIndex,
			"want", mismatch.Want,
			"got", mismatch.Got,
		)
	}
	return Align(records, indices, surfaces), mismatch, nil
}

func (t *Tagger) eojeolsPerCall(text string) ([]Eojeol, *AlignmentMismatch, error) {
	surfaces := strings.Fields(text)
	eojeols := make([]Eojeol, len(surfaces))
	for i, s := range surfaces {
		records, err := t.analyze(s)
		if err != nil {
			return nil, nil, err
		}
		eojeols[i] = NewEojeol(i, s, ExpandAll(records)...)
	}
	return eojeols, nil, nil
}

func (t *Tagger) analyze(text string) ([]Record, error) {
	raw, err := t.morphology.Analyze(text)
	if err != nil {
		return nil, fmt.Errorf("analyze %q: %w", text, err)
	}
	records, err := ParseRecords(applyCharFilters(t.outputFilters, raw))
	if err != nil {
		return nil, err
	}
	t.logger.Debug("analyzed", "text", text, "records", len(records))
	return records, nil
}
