package internal

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDiagnostic_Error(t *testing.T) {
	d := &Diagnostic{Line: 12, Kind: MissingEnd}
	assert.Equal(t, "LINE12: missing END: this block is not covered", d.Error())
	assert.Equal(t, "MissingEnd", MissingEnd.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
	assert.Equal(t, "unknown error", ErrorKind(99).Message())
}

func TestErrorKind_Messages(t *testing.T) {
	for kind := SyntaxError; kind <= FoundRepeatDeclarationInThisField; kind++ {
		assert.NotEqual(t, "unknown error", kind.Message(), kind.String())
		assert.NotContains(t, kind.String(), "ErrorKind(")
	}
	assert.True(t, InvalidNumber.IsLexical())
	assert.True(t, OverflowIdentifier.IsLexical())
	assert.True(t, FailMatchingSemicolon.IsLexical())
	assert.False(t, MissingSemicolon.IsLexical())
}

func TestConsoleSink_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewConsoleSink(buf, false)
	sink.Report(3, MissingEnd)
	sink.Report(4, InvalidNumber)
	assert.Equal(t, "LINE3: missing END: this block is not covered\nLINE4: Invalid number!\n", buf.String())

	buf.Reset()
	sink = NewConsoleSink(buf, true)
	sink.Report(7, MissingThen)
	assert.Contains(t, buf.String(), "LINE7:")
	assert.Contains(t, buf.String(), "expected 'then'")
}

func TestFileSink_Report(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.err")
	sink := NewFileSink(path, discardLogger())
	sink.Report(1, FailMatchingSemicolon)
	sink.Report(2, MissingSemicolon)
	assert.Nil(t, sink.Err())
	assert.Equal(t, path, sink.Path())

	content, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "LINE1: Semicolon matching failed!\nLINE2: missing a ';' at the end of the statement\n", string(content))
}

func TestFileSink_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "prog.err")
	sink := NewFileSink(path, discardLogger())
	sink.Report(1, SyntaxError)
	assert.NotNil(t, sink.Err())
}

func TestTeeSinks(t *testing.T) {
	first, second := &DiagnosticList{}, &DiagnosticList{}
	sink := TeeSinks(first, nil, second)
	sink.Report(5, MissingElse)
	expected := []*Diagnostic{{Line: 5, Kind: MissingElse}}
	assert.Equal(t, expected, first.Diagnostics)
	assert.Equal(t, expected, second.Diagnostics)
}
