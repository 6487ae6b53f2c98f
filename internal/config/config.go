// Package config loads and validates the pipeline's YAML configuration,
// following the teacher's schema-first validation approach but against a
// single static document rather than a per-decorator dynamic schema.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var schemaJSON []byte

//go:embed default.yaml
var defaultYAML []byte

// Pipeline holds the pipeline settings. They are loaded and validated, but
// the decompose, lex and parse stages do not read them.
type Pipeline struct {
	AllowExperimental bool `yaml:"allowExperimental"`
	MaxWordLength     int  `yaml:"maxWordLength"`
}

// Output holds the output settings. Format is loaded and validated, but the
// CLI picks its output mode from the --emit flag, not from this field.
type Output struct {
	Format string `yaml:"format"`
}

// Cache controls the on-disk token cache described in internal/cache.
type Cache struct {
	Enabled   bool   `yaml:"enabled"`
	Directory string `yaml:"directory"`
}

// Config is the root configuration document.
type Config struct {
	Pipeline Pipeline `yaml:"pipeline"`
	Output   Output   `yaml:"output"`
	Cache    Cache    `yaml:"cache"`
}

var schema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("config.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("config: embedded schema is invalid: %v", err))
	}
	s, err := compiler.Compile("config.schema.json")
	if err != nil {
		panic(fmt.Sprintf("config: embedded schema failed to compile: %v", err))
	}
	schema = s
}

// Default returns the built-in default configuration.
func Default() (*Config, error) {
	return parse(defaultYAML)
}

// Load reads and validates configuration from r, falling back to built-in
// defaults for any field r's document omits. An empty document is valid
// and equivalent to Default().
func Load(r io.Reader) (*Config, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Default()
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := validate(body); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(body, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// LoadFile is a convenience wrapper around Load for a path on disk.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func parse(body []byte) (*Config, error) {
	if err := validate(body); err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(body, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}

// validate converts the YAML document to the generic form jsonschema
// expects (map[string]any with JSON-compatible scalar types) and checks it
// against the embedded schema.
func validate(body []byte) error {
	var generic any
	if err := yaml.Unmarshal(body, &generic); err != nil {
		return fmt.Errorf("config: decode for validation: %w", err)
	}
	generic = normalizeForJSONSchema(generic)
	if err := schema.Validate(generic); err != nil {
		return fmt.Errorf("config: schema validation: %w", err)
	}
	return nil
}

// normalizeForJSONSchema recursively converts the map[interface{}]interface{}
// shape that yaml.v3 produces for untyped maps into map[string]any, which is
// what jsonschema's Validate expects.
func normalizeForJSONSchema(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalizeForJSONSchema(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = normalizeForJSONSchema(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalizeForJSONSchema(val)
		}
		return out
	default:
		return v
	}
}
