package fuzztests

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

const maxSeedBytes = 64 << 10 // ограничение для тестового корпуса

// seedFiles are the YAML fixtures of other packages; every `input` field
// becomes a seed.
var seedFiles = []string{
	filepath.Join("..", "parser", "testdata", "errors.yaml"),
	filepath.Join("..", "format", "testdata", "format.yaml"),
	filepath.Join("..", "gen", "golang", "testdata", "cases.yaml"),
}

var builtinSeeds = []string{
	"",
	"enum A {B, C}",
	"union U { A, B }",
	"record User {\n  id Int\n  tags [String]?\n}\n",
	"fn findUser(id Int) User?",
	"fn f(\n  a Int,\n) {String: [Int]}",
	"record A { d {Int: Float} }",
	"enum A {B, C,,}",
	"\t",
}

type seedCase struct {
	Input string `yaml:"input"`
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	for _, path := range seedFiles {
		// #nosec G304 -- fixed repository locations
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cases []seedCase
		if err := yaml.Unmarshal(data, &cases); err != nil {
			continue
		}
		for _, c := range cases {
			f.Add(clampSeed([]byte(c.Input)))
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
