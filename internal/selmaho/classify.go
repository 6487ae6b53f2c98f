package selmaho

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/mattfbacon/sneturfahi/internal/morph"
)

// transformForDirectCmavoCheck normalizes word for the fast-path exact
// match table: commas are stripped (they carry no phonetic weight) and 'h'
// is folded to the apostrophe it conventionally stands in for, matching
// how cmavo are written in running text versus in the classification
// table. It returns false if the normalized word doesn't fit the small
// fixed buffer, in which case the word cannot be a cmavo anyway (the
// longest cmavo is a handful of letters).
func transformForDirectCmavoCheck(word string, buf *[16]byte) (string, bool) {
	n := 0
	for i := 0; i < len(word); i++ {
		b := word[i]
		switch b {
		case ',':
			continue
		case 'h', 'H':
			b = '\''
		default:
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
		}
		if n >= len(buf) {
			return "", false
		}
		buf[n] = b
		n++
	}
	return string(buf[:n]), true
}

//go:embed cmavo_table.yaml
var cmavoTableYAML []byte

//go:embed cmavo_table.schema.json
var cmavoTableSchemaJSON []byte

// cmavoEntry is one row of the embedded cmavo_table.yaml document.
type cmavoEntry struct {
	Cmavo        string `yaml:"cmavo"`
	Selmaho      string `yaml:"selmaho"`
	Experimental bool   `yaml:"experimental"`
}

type cmavoDocument struct {
	Cmavo []cmavoEntry `yaml:"cmavo"`
}

// cmavoTable maps a normalized (lowercase, h-folded-to-apostrophe) cmavo
// string to its selmaho and whether that specific cmavo is experimental
// (distinct from its selmaho being fundamentally experimental -- a
// non-experimental selmaho can still gain occasional experimental
// members). It is built at init() from the embedded, schema-validated
// cmavo_table.yaml rather than written as a Go literal, so the fast-path
// table can be audited and extended as data instead of code.
var cmavoTable = buildCmavoTable()

func buildCmavoTable() map[string]struct {
	selmaho      Selmaho
	experimental bool
} {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("cmavo_table.schema.json", bytes.NewReader(cmavoTableSchemaJSON)); err != nil {
		panic(fmt.Sprintf("selmaho: embedded cmavo table schema is invalid: %v", err))
	}
	schema, err := compiler.Compile("cmavo_table.schema.json")
	if err != nil {
		panic(fmt.Sprintf("selmaho: embedded cmavo table schema failed to compile: %v", err))
	}

	var generic any
	if err := yaml.Unmarshal(cmavoTableYAML, &generic); err != nil {
		panic(fmt.Sprintf("selmaho: embedded cmavo table is invalid YAML: %v", err))
	}
	if err := schema.Validate(normalizeForJSONSchema(generic)); err != nil {
		panic(fmt.Sprintf("selmaho: embedded cmavo table failed schema validation: %v", err))
	}

	var doc cmavoDocument
	if err := yaml.Unmarshal(cmavoTableYAML, &doc); err != nil {
		panic(fmt.Sprintf("selmaho: decoding embedded cmavo table: %v", err))
	}

	out := make(map[string]struct {
		selmaho      Selmaho
		experimental bool
	}, len(doc.Cmavo))
	for _, entry := range doc.Cmavo {
		s, ok := parseSelmahoName(entry.Selmaho)
		if !ok {
			panic(fmt.Sprintf("selmaho: embedded cmavo table names unknown selmaho %q for cmavo %q", entry.Selmaho, entry.Cmavo))
		}
		out[entry.Cmavo] = struct {
			selmaho      Selmaho
			experimental bool
		}{s, entry.Experimental}
	}
	return out
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

// ClassifyDirect looks up word in the fast-path cmavo table, after
// normalizing it. It returns ok=false if the word isn't in the table
// (either it's too long to be a cmavo, or it's a cmavo this table doesn't
// list, or it isn't a cmavo at all).
func ClassifyDirect(word string) (result Selmaho, experimental bool, ok bool) {
	var buf [16]byte
	normalized, fits := transformForDirectCmavoCheck(word, &buf)
	if !fits {
		return 0, false, false
	}
	if isAllY(normalized) {
		return Y, false, true
	}
	entry, ok := cmavoTable[normalized]
	if !ok {
		return 0, false, false
	}
	return entry.selmaho, entry.experimental, true
}

// isAllY reports whether normalized is one or more 'y' characters and
// nothing else. Any run of y's is selmaho Y, not just the single-letter
// cmavo, so this is checked ahead of the literal table lookup rather than
// listed as table entries.
func isAllY(normalized string) bool {
	if normalized == "" {
		return false
	}
	for i := 0; i < len(normalized); i++ {
		if normalized[i] != 'y' {
			return false
		}
	}
	return true
}

// ClassifyGenerally runs the fallback ladder used for any word that isn't
// in the direct cmavo table: cmevla, then cmavo-shaped-but-unrecognized,
// then gismu, then fuhivla, then lujvo, and finally AnyText for anything
// that doesn't cleanly parse as a single Lojban word at all.
func ClassifyGenerally(word string) Selmaho {
	switch {
	case morph.Cmevla(word).ConsumedAll():
		return Cmevla
	case morph.CmavoForm(word).ConsumedAll():
		return UnknownCmavo
	case morph.Gismu(word).ConsumedAll():
		return Gismu
	case morph.Fuhivla(word).ConsumedAll():
		return Fuhivla
	case morph.LujvoMinimal(word).ConsumedAll():
		return Lujvo
	default:
		return AnyText
	}
}

// Classify classifies word, returning its selmaho and whether it is
// experimental (either because the specific cmavo is marked experimental,
// or because its whole selmaho is fundamentally experimental).
func Classify(word string) (Selmaho, bool) {
	if result, experimental, ok := ClassifyDirect(word); ok {
		return result, result.IsFundamentallyExperimental() || experimental
	}
	result := ClassifyGenerally(word)
	return result, result.IsFundamentallyExperimental()
}
