package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// DiagnosticSink receives every diagnostic found by the tokenizer and the parser.
type DiagnosticSink interface {
	Report(line int, kind ErrorKind)
}

var (
	colorError = lipgloss.Color("#EF4444") // Red
	colorMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// ConsoleSink prints diagnostics and keeps nothing.
type ConsoleSink struct {
	w          io.Writer
	color      bool
	lineStyle  lipgloss.Style
	lexerStyle lipgloss.Style
}

// NewConsoleSink writes to w. With color set, the LINE<n>: prefix is rendered
// with lipgloss, which falls back to plain text when w is not a terminal.
func NewConsoleSink(w io.Writer, color bool) *ConsoleSink {
	renderer := lipgloss.NewRenderer(w)
	return &ConsoleSink{
		w:          w,
		color:      color,
		lineStyle:  renderer.NewStyle().Foreground(colorError).Bold(true),
		lexerStyle: renderer.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

func (sink *ConsoleSink) Report(line int, kind ErrorKind) {
	if !sink.color {
		fmt.Fprintln(sink.w, formatDiagnostic(line, kind))
		return
	}
	prefix := sink.lineStyle.Render(fmt.Sprintf("LINE%d:", line))
	msg := kind.Message()
	if kind.IsLexical() {
		msg = sink.lexerStyle.Render(msg)
	}
	fmt.Fprintf(sink.w, "%s %s\n", prefix, msg)
}

// FileSink appends diagnostics to a file, creating it on first use.
type FileSink struct {
	path   string
	logger *slog.Logger
	err    error
}

func NewFileSink(path string, logger *slog.Logger) *FileSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSink{path: path, logger: logger}
}

func (sink *FileSink) Report(line int, kind ErrorKind) {
	err := sink.append(formatDiagnostic(line, kind) + "\n")
	if err != nil {
		// Report has no error return, keep the first failure for Err.
		sink.logger.Error("diagnostic: failed to write error file", "path", sink.path, "err", err)
		if sink.err == nil {
			sink.err = err
		}
	}
}

func (sink *FileSink) append(text string) error {
	f, err := os.OpenFile(sink.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	_, err = f.WriteString(text)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (sink *FileSink) Path() string {
	return sink.path
}

// Err returns the first write failure, if any.
func (sink *FileSink) Err() error {
	return sink.err
}

// DiagnosticList collects diagnostics in report order.
type DiagnosticList struct {
	Diagnostics []*Diagnostic
}

func (list *DiagnosticList) Report(line int, kind ErrorKind) {
	list.Diagnostics = append(list.Diagnostics, &Diagnostic{Line: line, Kind: kind})
}

func (list *DiagnosticList) Len() int {
	return len(list.Diagnostics)
}

type teeSink []DiagnosticSink

func (sinks teeSink) Report(line int, kind ErrorKind) {
	for _, sink := range sinks {
		sink.Report(line, kind)
	}
}

// TeeSinks forwards every report to all sinks in order. Nil sinks are skipped.
func TeeSinks(sinks ...DiagnosticSink) DiagnosticSink {
	var tee teeSink
	for _, sink := range sinks {
		if sink != nil {
			tee = append(tee, sink)
		}
	}
	return tee
}

type nopSink struct{}

func (nopSink) Report(int, ErrorKind) {}
