package internal

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

var loopSource = `
- assign: [a, 1]
- while:
  - {lt: [a, 10000]}
  - assign: [a, {add: [a, 1]}]
- a
`

func benchmarkEngine(b *testing.B, engine Engine) {
	root, err := ParseTerm(loopSource)
	if err != nil {
		b.Fatal(err)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := Config{Engine: engine, Logger: logger}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := cfg.Run(root, NewEnv())
		if err != nil {
			b.Fatal(err)
		}
		if !Equal(result, Number(10000)) {
			b.Fatalf("expected 10000, found %s", result)
		}
	}
}

func BenchmarkBigStepLoop(b *testing.B) {
	benchmarkEngine(b, BigStep)
}

func BenchmarkSmallStepLoop(b *testing.B) {
	benchmarkEngine(b, SmallStep)
}
