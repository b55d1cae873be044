package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func writeJSONLine(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return withCode(exitOutput, fmt.Errorf("json encode: %w", err))
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return withCode(exitOutput, fmt.Errorf("yaml encode: %w", err))
	}
	if err := enc.Close(); err != nil {
		return withCode(exitOutput, fmt.Errorf("yaml encode: %w", err))
	}
	return nil
}

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		return writeYAML(w, v)
	default:
		return writeJSONLine(w, v)
	}
}
