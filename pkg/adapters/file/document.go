package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ReadDocument parses a YAML or JSON document, chosen by ext (".yaml", ".yml" or ".json").
// Unknown keys are rejected. Any list of symbols may also be written as one
// space-separated string, so `inputs: ["a b", ""]` holds the words [a b] and [].
// Scalars are weakly typed: `alphabet: [0, 1]` declares the symbols "0" and "1".
func ReadDocument(data []byte, ext string) (domain.Definition, error) {
	var raw map[string]any
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Definition{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Definition{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	default:
		return domain.Definition{}, fmt.Errorf("unsupported document extension %q", ext)
	}
	return DecodeDefinition(raw)
}

// DecodeDefinition maps already-unmarshalled fields onto a Definition.
func DecodeDefinition(raw map[string]any) (domain.Definition, error) {
	var def domain.Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       splitWordsHook,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &def,
		TagName:          "mapstructure",
	})
	if err != nil {
		return def, err
	}
	if err := decoder.Decode(raw); err != nil {
		return def, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return def, nil
}

var stringSlice = reflect.TypeOf([]string(nil))

func splitWordsHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to == stringSlice {
		return strings.Fields(data.(string)), nil
	}
	return data, nil
}

// Load reads a definition from path, dispatching on its extension.
// Anything other than a document extension is read as the text format.
// An unnamed definition is named after the file.
func Load(path string) (domain.Definition, error) {
	ext := filepath.Ext(path)

	var def domain.Definition
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return def, fmt.Errorf("failed to read definition: %w", err)
		}
		if def, err = ReadDocument(data, ext); err != nil {
			return def, fmt.Errorf("%s: %w", path, err)
		}
	default:
		f, err := os.Open(path)
		if err != nil {
			return def, fmt.Errorf("failed to read definition: %w", err)
		}
		defer f.Close()
		if def, err = ReadText(f); err != nil {
			return def, fmt.Errorf("%s: %w", path, err)
		}
	}

	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return def, nil
}
