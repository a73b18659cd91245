// Package main provides the eojeol CLI.
//
// eojeol tags Korean text with a MeCab-ko compatible analyzer and prints the
// morphemes as JSON, either flat or grouped by eojeol.
//
// Usage:
//
//	eojeol pos "이게 뭔지 알아."
//	echo "국민을 위한 정치" | eojeol nouns
//
// See --help for all available options.
package main

func main() {
	Execute()
}
