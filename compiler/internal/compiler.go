package internal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	StatusCompiled    = "compiled"
	StatusSyntaxError = "syntax error"
)

// Result is the outcome of compiling one source file.
type Result struct {
	Name      string
	Tokens    Tokens
	LexErrors []*Diagnostic
	// Diagnostics lists every report sent to the sink, in order.
	Diagnostics []*Diagnostic
	// ParseError is the first parser error, nil when the parse succeeded.
	ParseError *Diagnostic
	Env        *SymbolEnvironment
	// Outputs lists the files written during the run.
	Outputs []string
}

func (r *Result) Succeeded() bool {
	return len(r.LexErrors) == 0 && r.ParseError == nil
}

func (r *Result) Status() string {
	if r.Succeeded() {
		return StatusCompiled
	}
	return StatusSyntaxError
}

type Compiler struct {
	config   *Config
	recovery RecoveryStrategy
	logger   *slog.Logger
	stdout   io.Writer
}

// NewCompiler checks cfg and returns a compiler printing console diagnostics
// to stdout.
func NewCompiler(cfg *Config, logger *slog.Logger, stdout io.Writer) (*Compiler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	recovery, err := RecoveryByName(cfg.Recovery)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Compiler{config: cfg, recovery: recovery, logger: logger, stdout: stdout}, nil
}

// Compile runs the default compiler on path.
func Compile(path string, cfg *Config) (*Result, error) {
	compiler, err := NewCompiler(cfg, nil, nil)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(path)
}

// Compile tokenizes and parses one file. Language errors end up in the Result,
// the returned error is for I/O failures only.
func (compiler *Compiler) Compile(path string) (*Result, error) {
	compiler.logger.Debug("compiler: start loading source", "path", path)
	name, source, err := loadSource(path)
	if err != nil {
		return nil, err
	}
	base := compiler.outputBase(path, name)
	result := &Result{Name: name}

	output, fileSink, err := compiler.newSink(base)
	if err != nil {
		return nil, err
	}
	reported := &DiagnosticList{}
	sink := TeeSinks(output, reported)

	compiler.logger.Debug("compiler: start tokenizer", "name", name)
	tokenizer := NewTokenizer(sink)
	result.Tokens, result.LexErrors = tokenizer.Tokenize(source)
	compiler.logger.Debug("compiler: tokenizer done", "tokens", len(result.Tokens), "errors", len(result.LexErrors))

	if compiler.config.DumpTokens {
		err = compiler.writeFile(result, base+".dyd", func(w io.Writer) error {
			return WriteTokens(w, result.Tokens)
		})
		if err != nil {
			return nil, err
		}
	}

	compiler.logger.Debug("compiler: start parser", "name", name)
	result.Env = NewSymbolEnvironment()
	parser := NewParser(result.Tokens, WithSink(sink), WithRecovery(compiler.recovery))
	err = parser.Analyse(result.Env)
	if err != nil {
		var diagnostic *Diagnostic
		if !errors.As(err, &diagnostic) {
			return nil, err
		}
		result.ParseError = diagnostic
	}

	result.Diagnostics = reported.Diagnostics

	if compiler.config.DumpTables {
		err = compiler.writeFile(result, base+".var", func(w io.Writer) error {
			return WriteVariables(w, result.Env)
		})
		if err != nil {
			return nil, err
		}
		err = compiler.writeFile(result, base+".pro", func(w io.Writer) error {
			return WriteProcedures(w, result.Env)
		})
		if err != nil {
			return nil, err
		}
	}

	if fileSink != nil {
		if err = fileSink.Err(); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", fileSink.Path(), err)
		}
		if !result.Succeeded() {
			result.Outputs = append(result.Outputs, fileSink.Path())
		}
	}
	compiler.logger.Info("compiler: done", "name", name, "status", result.Status())
	return result, nil
}

// loadSource reads the whole file. The name is the file name without its
// extension.
func loadSource(path string) (name, content string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read source %s: %w", path, err)
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)), string(data), nil
}

func (compiler *Compiler) outputBase(path, name string) string {
	dir := compiler.config.OutputDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, name)
}

// newSink builds the sink for the configured mode. In file mode the .err file
// of a previous run is removed first, reports of this run are appended.
func (compiler *Compiler) newSink(base string) (DiagnosticSink, *FileSink, error) {
	if compiler.config.Mode != ModeFile {
		return NewConsoleSink(compiler.stdout, compiler.config.Color), nil, nil
	}
	path := base + ".err"
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("failed to remove stale %s: %w", path, err)
	}
	fileSink := NewFileSink(path, compiler.logger)
	return fileSink, fileSink, nil
}

func (compiler *Compiler) writeFile(result *Result, path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	compiler.logger.Debug("compiler: wrote output", "path", path)
	result.Outputs = append(result.Outputs, path)
	return nil
}
