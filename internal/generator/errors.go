package generator

import "fmt"

type ParseErrorKind string

const (
	ParseMalformedPair  ParseErrorKind = "malformed pair"
	ParseNonNumeric     ParseErrorKind = "non-numeric probability"
	ParseOutOfRange     ParseErrorKind = "out-of-range probability"
	ParseDuplicateLabel ParseErrorKind = "duplicate label"
)

// ParseError reports a malformed weighted-choices configuration string.
// It aborts the batch it belongs to and nothing else.
type ParseError struct {
	Kind  ParseErrorKind
	Token string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseMalformedPair:
		return fmt.Sprintf("invalid choice format %q: use 'label:probability'", e.Token)
	case ParseNonNumeric:
		return fmt.Sprintf("invalid probability value %q: must be a number between 0 and 1", e.Token)
	case ParseOutOfRange:
		return fmt.Sprintf("probability %q out of range: must be between 0 and 1", e.Token)
	case ParseDuplicateLabel:
		return fmt.Sprintf("duplicate label %q in choices", e.Token)
	}
	return fmt.Sprintf("invalid choices token %q", e.Token)
}

// ProviderError reports an unknown faker provider/method pair.
type ProviderError struct {
	Provider string
	Method   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("unknown faker provider or method: %s.%s", e.Provider, e.Method)
}
