// Package serializer writes command output to files or stdout in the
// supported formats.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	// FormatMarkdown expects a pre-rendered document and writes it
	// verbatim.
	FormatMarkdown Format = "markdown"
	// FormatJSON marshals the value as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML marshals the value as YAML.
	FormatYAML Format = "yaml"
)

// StdoutPath is the special output path indicating stdout.
const StdoutPath = "-"

// IsUnknown reports whether the format is not one of the supported values.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatMarkdown, FormatJSON, FormatYAML:
		return false
	}
	return true
}

// Writer serializes values to a single destination.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
}

// NewWriter creates a Writer over an existing io.Writer.
func NewWriter(format Format, out io.Writer) *Writer {
	return &Writer{format: format, out: out}
}

// NewFileWriterOrStdout creates a Writer for the given path. An empty path
// or "-" writes to stdout; anything else creates (or truncates) the file.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	if path == "" || path == StdoutPath {
		return NewWriter(format, os.Stdout), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize writes v in the writer's format. For FormatMarkdown, v must be a
// rendered document (string or []byte); structured values belong to the JSON
// and YAML formats.
func (w *Writer) Serialize(v any) error {
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()

	case FormatMarkdown:
		var doc string
		switch d := v.(type) {
		case string:
			doc = d
		case []byte:
			doc = string(d)
		default:
			return fmt.Errorf("markdown format requires a rendered document, got %T", v)
		}
		if !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		_, err := io.WriteString(w.out, doc)
		return err

	default:
		j, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(j))
		return err
	}
}

// Close releases the destination when the Writer owns it (file outputs);
// stdout writers close to a no-op.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
