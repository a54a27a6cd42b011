package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is a generated data item: a mapping whose keys keep their
// insertion order. Generators emit single-key records ({response: value});
// GenAI responses may carry arbitrary keys. Key order matters downstream
// because the CSV header is taken from the first record.
type Record struct {
	keys   []string
	values map[string]any
}

func New() *Record {
	return &Record{values: make(map[string]any)}
}

// Single builds the common one-field record shape.
func Single(key string, value any) *Record {
	r := New()
	r.Set(key, value)
	return r
}

// Set adds or overwrites a field. An overwritten key keeps its original
// position.
func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in insertion order. The returned slice is
// shared; callers must not modify it.
func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// MarshalJSON emits a compact object with fields in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object while preserving its key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	r.keys = nil
	r.values = make(map[string]any)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		r.Set(key, value)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML renders the record as a mapping node so the YAML output
// keeps insertion order too.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range r.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(k)
		valNode := &yaml.Node{}
		if err := valNode.Encode(r.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// FromLLMResponse parses a model reply into a record. Replies are expected
// to be JSON objects but models wrap them in markdown fences or prose often
// enough that we trim to the outermost braces first. Anything that still
// fails to parse is kept verbatim under text_response.
func FromLLMResponse(text string) *Record {
	jsonStr := text
	start := strings.IndexByte(jsonStr, '{')
	end := strings.LastIndexByte(jsonStr, '}')
	if start != -1 && end != -1 && start < end {
		jsonStr = jsonStr[start : end+1]
	}

	r := New()
	if err := json.Unmarshal([]byte(jsonStr), r); err != nil {
		fallback := New()
		fallback.Set("text_response", text)
		return fallback
	}
	return r
}
