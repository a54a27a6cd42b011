package generator

import (
	"strconv"
	"strings"

	"github.com/apollolabs/apollo/internal/record"
)

// ChoiceEntry is one label with its sampling probability.
type ChoiceEntry struct {
	Label       string
	Probability float64
}

// ChoiceTable holds weighted choices in configuration order. The order is
// load-bearing: the cumulative scan and the fallback label both follow it.
type ChoiceTable []ChoiceEntry

// ParseChoices parses "label1:prob1,label2:prob2,...". Probabilities must
// be in [0,1] but are not required to sum to 1 (see WeightedGenerator for
// the resulting fallback behavior). Labels are opaque; delimiters inside a
// label are not escapable. Duplicate labels are rejected. An empty string
// yields an empty table.
func ParseChoices(choices string) (ChoiceTable, error) {
	if choices == "" {
		return nil, nil
	}

	var table ChoiceTable
	seen := make(map[string]struct{})
	for _, pair := range strings.Split(choices, ",") {
		if strings.Count(pair, ":") != 1 {
			return nil, &ParseError{Kind: ParseMalformedPair, Token: pair}
		}
		label, probText, _ := strings.Cut(pair, ":")

		probability, err := strconv.ParseFloat(probText, 64)
		if err != nil {
			return nil, &ParseError{Kind: ParseNonNumeric, Token: probText}
		}
		// Written to also reject NaN.
		if !(probability >= 0 && probability <= 1) {
			return nil, &ParseError{Kind: ParseOutOfRange, Token: probText}
		}
		if _, dup := seen[label]; dup {
			return nil, &ParseError{Kind: ParseDuplicateLabel, Token: label}
		}
		seen[label] = struct{}{}
		table = append(table, ChoiceEntry{Label: label, Probability: probability})
	}
	return table, nil
}

// WeightedGenerator samples labels by inverse CDF over a linear scan of
// the choice table.
type WeightedGenerator struct {
	table ChoiceTable
	src   Source
}

func NewWeightedGenerator(choices string, src Source) (*WeightedGenerator, error) {
	table, err := ParseChoices(choices)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = DefaultSource()
	}
	return &WeightedGenerator{table: table, src: src}, nil
}

func (g *WeightedGenerator) Table() ChoiceTable {
	return g.table
}

// Sample draws one label. One uniform r in [0,1), then a cumulative scan
// in table order; the first entry whose running sum exceeds r wins, so
// ties favor the earlier entry. If the scan runs out (probabilities
// summing below 1, or floating-point drift) the last label is returned as
// a safety net rather than an error. An empty table samples to "".
func (g *WeightedGenerator) Sample() string {
	if len(g.table) == 0 {
		return ""
	}

	r := g.src.Float64()
	cumulative := 0.0
	for _, entry := range g.table {
		cumulative += entry.Probability
		if r < cumulative {
			return entry.Label
		}
	}
	return g.table[len(g.table)-1].Label
}

func (g *WeightedGenerator) GenerateRecord() *record.Record {
	return record.Single("response", g.Sample())
}

func (g *WeightedGenerator) GenerateData(n int) []*record.Record {
	return Collect(g, n, nil)
}
