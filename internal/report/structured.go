package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render writes r in the named format: text, json or yaml.
func Render(w io.Writer, r *Report, format string) error {
	if r == nil {
		return fmt.Errorf("render: nil report")
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return RenderText(w, r)
	case "json":
		return RenderJSON(w, r)
	case "yaml", "yml":
		return RenderYAML(w, r)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

func RenderYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
