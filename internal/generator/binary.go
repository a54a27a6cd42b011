package generator

import "github.com/apollolabs/apollo/internal/record"

// BinaryGenerator answers "Yes" with a fixed probability and "No"
// otherwise. Range validation of p is the caller's responsibility.
type BinaryGenerator struct {
	probability float64
	src         Source
}

func NewBinaryGenerator(probability float64, src Source) *BinaryGenerator {
	if src == nil {
		src = DefaultSource()
	}
	return &BinaryGenerator{probability: probability, src: src}
}

func (g *BinaryGenerator) GenerateRecord() *record.Record {
	response := "No"
	if g.src.Float64() < g.probability {
		response = "Yes"
	}
	return record.Single("response", response)
}

func (g *BinaryGenerator) GenerateData(n int) []*record.Record {
	return Collect(g, n, nil)
}
