package output

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/apollolabs/apollo/internal/record"
)

// GraphSink exports record batches to a Neo4j-compatible store (Neo4j,
// Memgraph). Each record becomes a :Record node tagged with the batch id
// and the generator that produced it.
type GraphSink struct {
	driver neo4j.DriverWithContext
}

func NewGraphSink(ctx context.Context, uri, username, password string) (*GraphSink, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to graph store at %s: %w", uri, err)
	}
	return &GraphSink{driver: driver}, nil
}

func (s *GraphSink) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Export writes the batch in one UNWIND and returns the batch id.
func (s *GraphSink) Export(ctx context.Context, records []*record.Record, source string) (string, error) {
	batchID := uuid.NewString()
	if len(records) == 0 {
		return batchID, nil
	}

	rows := make([]map[string]any, 0, len(records))
	for _, r := range records {
		row := make(map[string]any, r.Len())
		for _, key := range r.Keys() {
			v, _ := r.Get(key)
			// Graph properties are scalar; nested genai values are
			// stringified rather than dropped.
			switch v.(type) {
			case string, bool, int64, float64, nil:
				row[key] = v
			default:
				row[key] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}

	query := `UNWIND $rows AS row
CREATE (r:Record)
SET r = row, r.batch_id = $batch_id, r.source = $source`
	params := map[string]any{
		"rows":     rows,
		"batch_id": batchID,
		"source":   source,
	}
	if _, err := neo4j.ExecuteQuery(ctx, s.driver, query, params, neo4j.EagerResultTransformer); err != nil {
		return "", fmt.Errorf("failed to export batch: %w", err)
	}
	return batchID, nil
}
