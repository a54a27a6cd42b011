package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/apollolabs/apollo/internal/record"
)

// CSVSerializer writes a header row taken from the first record's keys,
// then one row per record. Records are assumed to share the first
// record's key set; mixed shapes are the caller's problem.
type CSVSerializer struct{}

func (CSVSerializer) Save(records []*record.Record, path string) error {
	// An empty batch is a no-op: no file is created.
	if len(records) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := records[0].Keys()
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, r := range records {
		for i, key := range header {
			v, _ := r.Get(key)
			row[i] = fmt.Sprint(v)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
