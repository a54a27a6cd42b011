package output

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/apollolabs/apollo/internal/record"
)

// YAMLSerializer writes the whole batch as one document: a block
// sequence of mappings, 2-space indent.
type YAMLSerializer struct{}

func (YAMLSerializer) Save(records []*record.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}
