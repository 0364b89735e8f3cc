package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/naveenspark/pinestore/internal/config"
	"github.com/naveenspark/pinestore/pkg/client"
)

// print writes v in the configured output format. text renders the
// human-readable form and is only called for text output without a query.
func (a *app) print(cmd *cobra.Command, v any, text func() string) error {
	w := cmd.OutOrStdout()
	if a.query != "" {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return a.printQuery(w, b)
	}

	switch a.cfg.Output {
	case config.OutputJSON:
		return writeJSON(w, v)
	case config.OutputYAML:
		return writeYAML(w, v)
	default:
		_, err := io.WriteString(w, text())
		return err
	}
}

// printRaw runs op without conversion and writes the body. Text output
// falls back to indented JSON.
func (a *app) printRaw(cmd *cobra.Command, op client.Operation, args ...string) error {
	body, err := a.client.FetchRaw(cmd.Context(), op, args...)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if a.query != "" {
		return a.printQuery(w, body)
	}

	if a.cfg.Output == config.OutputYAML {
		doc, err := decodeJSON(body)
		if err != nil {
			return err
		}
		return writeYAML(w, doc)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// printQuery evaluates the --query JSONPath expression against a JSON
// document. Results are JSON unless YAML output was asked for.
func (a *app) printQuery(w io.Writer, doc []byte) error {
	v, err := decodeJSON(doc)
	if err != nil {
		return err
	}
	res, err := jsonpath.Get(a.query, v)
	if err != nil {
		return fmt.Errorf("query %q: %w", a.query, err)
	}
	if a.cfg.Output == config.OutputYAML {
		return writeYAML(w, res)
	}
	return writeJSON(w, res)
}

// decodeJSON decodes a JSON document into generic values. Integers come
// back as int64 and other numbers as float64, so ids and millisecond
// timestamps print as plain integers in both JSON and YAML.
func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return resolveNumbers(v), nil
}

func resolveNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = resolveNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = resolveNumbers(e)
		}
		return t
	default:
		return v
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
