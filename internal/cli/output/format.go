// Package output provides output formatting utilities for CLI commands.
package output

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

// Format represents the output format type.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a string into a Format, returning an error if invalid.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: table, json, yaml)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Printer handles formatted output to a writer.
//
// A Printer is also the CLI's dark-mode marker: SetDark switches the
// palette used for table headers and status messages.
type Printer struct {
	out    io.Writer
	format Format
	color  bool
	dark   atomic.Bool
}

// NewPrinter creates a new Printer with the given options.
func NewPrinter(out io.Writer, format Format, color bool) *Printer {
	return &Printer{
		out:    out,
		format: format,
		color:  color,
	}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the printer's output writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// SetDark selects the dark or light palette.
func (p *Printer) SetDark(dark bool) {
	p.dark.Store(dark)
}

// Dark reports whether the dark palette is active.
func (p *Printer) Dark() bool {
	return p.dark.Load()
}

// Print outputs data in the configured format.
// For table format, data should implement TableRenderer.
// For JSON/YAML, data will be marshaled directly.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatTable:
		if renderer, ok := data.(TableRenderer); ok {
			return p.printTable(renderer)
		}
		return PrintJSON(p.out, data)
	case FormatJSON:
		return PrintJSON(p.out, data)
	case FormatYAML:
		return PrintYAML(p.out, data)
	default:
		return fmt.Errorf("unknown format: %s", p.format)
	}
}

func (p *Printer) printTable(data TableRenderer) error {
	if !p.color {
		return PrintTable(p.out, data)
	}
	return PrintTableStyled(p.out, data, HeaderStyle(p.Dark()))
}

// Println prints a message followed by a newline.
func (p *Printer) Println(args ...any) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// Printf prints a formatted message.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Success prints a success message.
func (p *Printer) Success(msg string) {
	p.colored("32", msg)
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	p.colored("31", msg)
}

// Warning prints a warning message.
func (p *Printer) Warning(msg string) {
	p.colored("33", msg)
}

func (p *Printer) colored(code, msg string) {
	if !p.color {
		_, _ = fmt.Fprintln(p.out, msg)
		return
	}
	// bright variants read better on dark backgrounds
	if p.Dark() {
		code = "1;" + code
	}
	_, _ = fmt.Fprintf(p.out, "\033[%sm%s\033[0m\n", code, msg)
}
