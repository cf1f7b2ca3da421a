package topic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a topic file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads, validates and decodes the topic file at path.
func Load(path string) (Topic, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Topic{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Topic{}, fmt.Errorf("read topic file: %w", err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return Topic{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse validates data against the topic schema and decodes it.
func Parse(data []byte, format Format) (Topic, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return Topic{}, err
	}
	if err := validateDocument(raw); err != nil {
		return Topic{}, err
	}

	var t Topic
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return Topic{}, fmt.Errorf("decode topic: %w", err)
	}
	if err := Validate(t); err != nil {
		return Topic{}, err
	}
	return t, nil
}

// toJSON normalizes a topic document to JSON so one schema covers both
// encodings.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml to json: %w", err)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
