// Package output serializes generated record batches. The format is
// resolved to a Serializer once per invocation; call sites never branch
// on the format string themselves.
package output

import (
	"fmt"

	"github.com/apollolabs/apollo/internal/record"
)

type Serializer interface {
	// Save writes the batch to path, truncating any existing file.
	Save(records []*record.Record, path string) error
}

// Formats lists the supported format tags, in help-text order.
func Formats() []string {
	return []string{"csv", "jsonl", "yaml"}
}

func ForFormat(format string) (Serializer, error) {
	switch format {
	case "csv":
		return CSVSerializer{}, nil
	case "jsonl":
		return JSONLSerializer{}, nil
	case "yaml":
		return YAMLSerializer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
