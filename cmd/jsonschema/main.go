// Command jsonschema validates one or more instance documents against a
// Draft-6 JSON Schema, printing a pass/fail line per instance and, on
// failure, the path-to-keyword-tag error map.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"

	jsonschema "github.com/kaptinlin/jsonschema6"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <schema.json|schema.yaml> <instance>...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	schema, err := compileSchemaFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonschema: %v\n", err)
		os.Exit(2)
	}

	for _, path := range args[1:] {
		instance, err := decodeInstanceFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonschema: %v\n", err)
			os.Exit(2)
		}

		result := schema.Validate(instance)
		if result.IsValid() {
			fmt.Printf("%s: PASS\n", path)
			continue
		}

		fmt.Printf("%s: FAIL\n", path)
		for at, tags := range result.Errors {
			fmt.Printf("  %s: %s\n", at, strings.Join(tags, ", "))
		}
	}
}

func compileSchemaFile(path string) (*jsonschema.Schema, error) {
	raw, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encoding schema %s: %w", path, err)
	}

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", path, err)
	}
	return schema, nil
}

func decodeInstanceFile(path string) (any, error) {
	instance, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance %s: %w", path, err)
	}
	return instance, nil
}

// decodeFile loads path as YAML (goccy/go-yaml) if it has a .yaml/.yml
// extension, JSON (go-json-experiment/json) otherwise. Both decoders produce
// the plain any tree Schema.Validate expects.
func decodeFile(path string) (any, error) {
	raw, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	var value any
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		return value, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}
