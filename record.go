package eojeol

import (
	"fmt"
	"strings"

	"github.com/kotaroooo0/eojeol/morphology"
)

const (
	SentinelLine = morphology.EOS

	inflectMarker    = "Inflect"
	typeField        = 4
	minFeatureFields = typeField + 1
)

// 解析器の出力1行
type Record struct {
	Surface  string
	Tag      string
	Features []string

	// 不規則活用のトークンは表層形と形態素の連結が一致しないので分解表現を持つ
	Inflected     bool
	Decomposition []Morpheme
}

type MalformedRecordError struct {
	Line   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed analyzer record %q: %s", e.Line, e.Reason)
}

// ParseRecord parses one "SURFACE\tFEATURE1,...,FEATUREn" line.
// A record is inflected iff its fifth feature is exactly "Inflect"; the
// decomposition is then read from the last feature field.
func ParseRecord(line string) (Record, error) {
	surface, feature, ok := strings.Cut(line, "\t")
	if !ok {
		return Record{}, &MalformedRecordError{Line: line, Reason: "missing tab separator"}
	}
	if surface == "" {
		return Record{}, &MalformedRecordError{Line: line, Reason: "empty surface"}
	}
	features := strings.Split(feature, ",")
	if len(features) < minFeatureFields {
		return Record{}, &MalformedRecordError{
			Line:   line,
			Reason: fmt.Sprintf("want at least %d feature fields, got %d", minFeatureFields, len(features)),
		}
	}

	r := Record{
		Surface:  surface,
		Tag:      features[0],
		Features: features,
	}
	if features[typeField] != inflectMarker {
		return r, nil
	}

	decomposition, err := parseDecomposition(features[len(features)-1])
	if err != nil {
		return Record{}, &MalformedRecordError{Line: line, Reason: err.Error()}
	}
	r.Inflected = true
	r.Decomposition = decomposition
	return r, nil
}

// e.g. 위하/VV/*+ᆫ/ETM/* -> [(위하, VV), (ᆫ, ETM)]
func parseDecomposition(s string) ([]Morpheme, error) {
	entries := strings.Split(s, "+")
	morphemes := make([]Morpheme, len(entries))
	for i, entry := range entries {
		m, err := parseDecompositionEntry(entry)
		if err != nil {
			return nil, err
		}
		morphemes[i] = m
	}
	return morphemes, nil
}

// 불태워/VV/* や 터/NNP/인명 から末尾の注記を取り除き、形態素と品詞に分ける。
// 形態素自体がスラッシュを含んでもよいように品詞は最後のスラッシュの後ろとする
func parseDecompositionEntry(entry string) (Morpheme, error) {
	end := -1
	for i := len(entry) - 2; i >= 1; i-- {
		if entry[i] == '/' && !isUpperASCII(entry[i+1]) {
			end = i
			break
		}
	}
	if end < 0 {
		return Morpheme{}, fmt.Errorf("decomposition entry %q has no annotation", entry)
	}

	pair := entry[:end]
	sep := strings.LastIndexByte(pair, '/')
	if sep <= 0 || sep == len(pair)-1 {
		return Morpheme{}, fmt.Errorf("decomposition entry %q has no morpheme/tag pair", entry)
	}
	return NewMorpheme(pair[:sep], pair[sep+1:]), nil
}

func isUpperASCII(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

// ParseRecords parses raw analyzer output. The trailing sentinel line is
// discarded; any other line that fails to parse aborts the whole output.
func ParseRecords(raw string) ([]Record, error) {
	lines := strings.Split(raw, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == SentinelLine {
		lines = lines[:n-1]
	}

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
