package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes the content of a single-language translation file into
// a nested key/template map.
type Parser interface {
	Parse(content []byte) (map[string]any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(content []byte) (map[string]any, error)

func (f ParserFunc) Parse(content []byte) (map[string]any, error) {
	return f(content)
}

// YAML parses YAML translation files.
var YAML Parser = ParserFunc(func(content []byte) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	return data, nil
})

// JSON parses JSON translation files.
var JSON Parser = ParserFunc(func(content []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	return data, nil
})

// parserFor picks a parser by file extension. It returns nil for files
// that are not translation files.
func parserFor(name string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	default:
		return nil
	}
}

// flatten turns nested maps into dotted keys:
// {"validation": {"is_null": "x"}} becomes {"validation.is_null": "x"}.
func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case map[any]any:
			// Older YAML decoders produce map[any]any for nested mappings.
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				ks, ok := mk.(string)
				if !ok {
					return errors.Join(ErrInvalidStructure, fmt.Errorf("non-string key %v under %q", mk, key))
				}
				converted[ks] = mv
			}
			if err := flatten(key, converted, out); err != nil {
				return err
			}
		default:
			return errors.Join(ErrInvalidStructure, fmt.Errorf("key %q: expected string or map, got %T", key, v))
		}
	}
	return nil
}
