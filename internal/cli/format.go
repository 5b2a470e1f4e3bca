package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/casetrail/internal/config"
	"github.com/spf13/pflag"
)

// formatValue is the --format flag.
type formatValue struct {
	value config.Format
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(def config.Format) *formatValue {
	if !config.ValidFormats[def] {
		def = config.FormatAuto
	}
	return &formatValue{value: def}
}

func (f *formatValue) String() string { return string(f.value) }

func (f *formatValue) Set(s string) error {
	v := config.Format(strings.ToLower(strings.TrimSpace(s)))
	if !config.ValidFormats[v] {
		return fmt.Errorf("invalid format %q (want auto, text or json)", s)
	}
	f.value = v
	return nil
}

func (f *formatValue) Type() string { return "format" }

// resolve maps auto to text on a terminal and to json otherwise.
func (f *formatValue) resolve(app *App) config.Format {
	if f.value != config.FormatAuto {
		return f.value
	}
	if app.IsTerminal != nil && app.IsTerminal() {
		return config.FormatText
	}
	return config.FormatJSON
}

// render writes v as indented JSON, or the text produced by text.
func render(w io.Writer, format config.Format, v any, text func() string) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text())
	return err
}
