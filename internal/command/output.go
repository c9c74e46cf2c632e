package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/jrsteele09/wellbe/api"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formatter writes command results.
type Formatter interface {
	Format(w io.Writer, data any) error
}

type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// YAMLFormatter goes through JSON first so field names follow the json tags.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return err
	}
	return enc.Close()
}

func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatJSON, "":
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// emit prints the data of a successful envelope, or exits with its error message.
func emit[T any](c *cli.Context, resp api.Response[T]) error {
	data, err := resp.Result()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	f, err := NewFormatter(Format(c.String("output")))
	if err != nil {
		return err
	}
	return f.Format(c.App.Writer, data)
}
