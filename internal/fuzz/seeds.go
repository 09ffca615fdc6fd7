package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"1 + 2 * 3",
	"@x = @y + 1",
	"a IS NOT NULL AND b NOT LIKE 'x%' ESCAPE '!'",
	"x NOT BETWEEN 1 AND 10 OR y IN (1, 2, 3)",
	"N'unicode' + 'it''s'",
	"[weird]]name].dbo.t.*",
	"$12.50 + 0x1F + 1.5e-3 + .5",
	"CAST(x AS DATE) /* nested /* block */ comment */",
	"-- only a comment\n",
	"f(a, (b",
	"'unterminated",
	"[open",
	"~a & b | c ^ d % e",
	"geography::Point(1, 2, 4326)",
	"t.c >= ALL (1)\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.sql файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sql" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}
