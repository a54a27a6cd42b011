package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryAlwaysNoAtZero(t *testing.T) {
	g := NewBinaryGenerator(0.0, nil)
	for _, r := range g.GenerateData(100) {
		v, ok := r.Get("response")
		assert.True(t, ok)
		assert.Equal(t, "No", v)
	}
}

func TestBinaryAlwaysYesAtOne(t *testing.T) {
	g := NewBinaryGenerator(1.0, nil)
	for _, r := range g.GenerateData(100) {
		v, _ := r.Get("response")
		assert.Equal(t, "Yes", v)
	}
}

func TestBinaryDistributionAtHalf(t *testing.T) {
	const n = 10000
	g := NewBinaryGenerator(0.5, SeededSource(42))

	yes := 0
	for _, r := range g.GenerateData(n) {
		if v, _ := r.Get("response"); v == "Yes" {
			yes++
		}
	}

	fraction := float64(yes) / n
	// ~3 sigma for a fair coin over 10k draws is ~1.5%; 2% gives headroom.
	assert.InDelta(t, 0.5, fraction, 0.02)
}

func TestBinaryRecordShape(t *testing.T) {
	g := NewBinaryGenerator(0.5, nil)
	records := g.GenerateData(7)
	assert.Len(t, records, 7)
	for _, r := range records {
		assert.Equal(t, []string{"response"}, r.Keys())
	}
}

func TestBinaryDrawBoundary(t *testing.T) {
	// The draw comparison is strict: r < p.
	g := NewBinaryGenerator(0.5, FixedSource{Value: 0.5})
	v, _ := g.GenerateRecord().Get("response")
	assert.Equal(t, "No", v)

	g = NewBinaryGenerator(0.5, FixedSource{Value: 0.49})
	v, _ = g.GenerateRecord().Get("response")
	assert.Equal(t, "Yes", v)
}
