package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes rule documents of one format.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Document, error)
	SupportsFileExtension(ext string) bool
}

// YAMLParser implements the Parser interface for YAML documents
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes YAML content. Unknown fields are rejected so that typos in option names
// do not silently disable a constraint.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Join(ErrFailedToParseYAML, err)
	}
	return doc, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser implements the Parser interface for JSON documents
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON content, rejecting unknown fields.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, errors.Join(ErrJSONParsingCancelled, err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Join(ErrFailedToParseJSON, err)
	}
	return doc, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}

// ParserFor picks a parser by the extension of filename.
func ParserFor(filename string) (Parser, error) {
	ext := filepath.Ext(filename)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
}
