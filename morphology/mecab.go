package morphology

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const DefaultMeCabBinary = "mecab"

// mecabコマンドを子プロセスとして呼び出す
type MeCab struct {
	binary  string
	dicPath string
}

func NewMeCab(binary, dicPath string) (*MeCab, error) {
	if binary == "" {
		binary = DefaultMeCabBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyzerUnavailable, err)
	}
	if dicPath != "" {
		if _, err := os.Stat(dicPath); err != nil {
			return nil, fmt.Errorf("%w: the MeCab dictionary does not exist at %q: %w", ErrAnalyzerUnavailable, dicPath, err)
		}
	}
	return &MeCab{
		binary:  path,
		dicPath: dicPath,
	}, nil
}

func (m *MeCab) Analyze(text string) (string, error) {
	var args []string
	if m.dicPath != "" {
		args = append(args, "-d", m.dicPath)
	}
	cmd := exec.Command(m.binary, args...)
	cmd.Stdin = strings.NewReader(text + "\n")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrAnalyzerUnavailable, strings.TrimSpace(stderr.String()), err)
	}
	return collapseEOS(string(out)), nil
}

func (m *MeCab) Close() error {
	return nil
}

// 入力に改行が含まれると行ごとにEOSが出力されるので、末尾の1つにまとめる
func collapseEOS(out string) string {
	lines := strings.Split(out, "\n")
	kept := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" || line == EOS {
			continue
		}
		kept = append(kept, line)
	}
	kept = append(kept, EOS, "")
	return strings.Join(kept, "\n")
}
