package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apollolabs/apollo/internal/record"
)

// JSONLSerializer writes one compact JSON object per line, preserving
// each record's key order.
type JSONLSerializer struct{}

func (JSONLSerializer) Save(records []*record.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return f.Close()
}
