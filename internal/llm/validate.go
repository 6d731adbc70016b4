package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Compiled schemas are cached by name. Content schemas are package-level
// constants, so the cache never needs invalidation.
var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*jsonschema.Schema{}
)

// validateResponse checks raw against the schema. A nil schema passes
// everything; any failure comes back as *ErrInvalidResponse with the
// offending payload attached.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if c, ok := schemaCache[schema.Name]; ok {
		return c, nil
	}

	// The compiler wants a decoded JSON document, not a Go map carrying
	// typed values; round-trip through encoding/json first.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", schema.Name, err)
	}
	var doc any
	if err := json.Unmarshal(defBytes, &doc); err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	compiler := jsonschema.NewCompiler()
	url := "mem://" + schema.Name + ".json"
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", schema.Name, err)
	}
	c, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	schemaCache[schema.Name] = c
	return c, nil
}
