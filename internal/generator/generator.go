package generator

import (
	"math/rand/v2"

	"github.com/apollolabs/apollo/internal/record"
)

// Generator produces synthetic records one at a time. Implementations are
// cheap value objects: build one per batch, use it, throw it away.
type Generator interface {
	GenerateRecord() *record.Record
	GenerateData(n int) []*record.Record
}

// Source is the random stream a generator draws from. *rand.Rand satisfies
// it; tests inject fixed sources to pin sampling decisions.
type Source interface {
	Float64() float64
}

type processSource struct{}

func (processSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns the process-wide random stream.
func DefaultSource() Source {
	return processSource{}
}

// SeededSource returns an independent, reproducible stream. Used by the
// --seed flag and by concurrent callers that need their own stream.
func SeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, 0))
}

// Collect drives a generator for n records, invoking hook (when non-nil)
// after each one. The CLI uses the hook to advance its progress bar.
func Collect(g Generator, n int, hook func(i int)) []*record.Record {
	records := make([]*record.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.GenerateRecord())
		if hook != nil {
			hook(i)
		}
	}
	return records
}
