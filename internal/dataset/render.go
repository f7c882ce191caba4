package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how RenderModels prints.
type OutputFormat string

// Output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

const (
	tabwriterPadding = 2
	colWidthName     = 28
	colWidthCaps     = 24
)

// ParseOutputFormat parses a case-insensitive output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json or yaml)", ErrUnknownFormat, s)
	}
}

// RenderModels writes models to w in format.
func RenderModels(w io.Writer, models []Model, format OutputFormat) error {
	switch format {
	case OutputTable:
		return RenderTable(w, models)
	case OutputJSON:
		return RenderJSON(w, models)
	case OutputYAML:
		return RenderYAML(w, models)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderTable writes an aligned plain-text table of models.
func RenderTable(w io.Writer, models []Model) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "DATE\tCOMPANY\tMODEL\tPARAMS\tCAPABILITIES\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t-------\t-----\t------\t------------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, m := range models {
		name := m.Name
		if m.Highlight {
			name = "* " + name
		}
		params := m.Params
		if params == "" {
			params = "-"
		}
		caps := make([]string, len(m.Capabilities))
		for i, c := range m.Capabilities {
			caps[i] = string(c)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.ReleaseDate,
			m.Company,
			ansi.Truncate(name, colWidthName, "..."),
			params,
			ansi.Truncate(strings.Join(caps, ","), colWidthCaps, "..."),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\n%d models\n", len(models)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return tw.Flush()
}

// RenderJSON writes models as an indented JSON array.
func RenderJSON(w io.Writer, models []Model) error {
	if models == nil {
		models = []Model{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(models); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderYAML writes models as a YAML sequence.
func RenderYAML(w io.Writer, models []Model) error {
	if models == nil {
		models = []Model{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // Two-space indent.
	if err := encoder.Encode(models); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}
