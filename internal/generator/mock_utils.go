package generator

import "context"

// FixedSource always returns the same draw. Used to pin sampling
// decisions in tests.
type FixedSource struct {
	Value float64
}

func (s FixedSource) Float64() float64 { return s.Value }

type MockLLMClient struct {
	Responses []string
	Err       error

	calls int
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	resp := m.Responses[m.calls%len(m.Responses)]
	m.calls++
	return resp, nil
}
