// Package console renders drill output, the program's only external interface.
package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects how lines are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for any format other than text or json.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts the flag and config spelling of a format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Printer writes one line per call. The first write error sticks and
// suppresses later output; callers check Err once at the end.
type Printer struct {
	w      io.Writer
	format Format
	drill  string
	state  *state
}

type state struct {
	err error
}

// jsonLine is the shape of a single line in json format.
type jsonLine struct {
	Drill string `json:"drill,omitempty"`
	Label string `json:"label,omitempty"`
	Value any    `json:"value,omitempty"`
}

// NewPrinter validates the format up front so drills never see a bad one.
func NewPrinter(w io.Writer, format Format) (*Printer, error) {
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &Printer{w: w, format: format, state: &state{}}, nil
}

// ForDrill returns a printer that tags json lines with the drill name.
func (p *Printer) ForDrill(name string) *Printer {
	return &Printer{w: p.w, format: p.format, drill: name, state: p.state}
}

// Line prints a label followed by zero or more values.
func (p *Printer) Line(label string, values ...any) {
	if p.state.err != nil {
		return
	}
	var err error
	switch p.format {
	case FormatJSON:
		err = p.writeJSON(label, values)
	default:
		err = p.writeText(label, values)
	}
	if err != nil {
		p.state.err = err
	}
}

// Err reports the first write failure, if any.
func (p *Printer) Err() error {
	return p.state.err
}

func (p *Printer) writeText(label string, values []any) error {
	parts := make([]string, 0, len(values)+1)
	if label != "" {
		parts = append(parts, label)
	}
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	_, err := fmt.Fprintln(p.w, strings.Join(parts, " "))
	return err
}

func (p *Printer) writeJSON(label string, values []any) error {
	line := jsonLine{Drill: p.drill, Label: label}
	switch len(values) {
	case 0:
	case 1:
		line.Value = values[0]
	default:
		line.Value = values
	}
	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("encode line: %w", err)
	}
	data = append(data, '\n')
	_, err = p.w.Write(data)
	return err
}
