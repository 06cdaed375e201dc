package internal

import (
	"github.com/stretchr/testify/assert"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, ModeConsole, cfg.Mode)
	assert.Equal(t, RecoverySkipLine, cfg.Recovery)
	assert.True(t, cfg.DumpTokens)
	assert.False(t, cfg.DumpTables)
	level, err := cfg.SlogLevel()
	assert.Nil(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParseConfig(t *testing.T) {
	tomlContent := `
mode = "file"
recovery = "statement"
dump_tables = true
output_dir = "out"
log_level = "debug"
`
	yamlContent := `
mode: file
recovery: statement
dump_tables: true
output_dir: out
log_level: debug
`
	expected := &Config{
		Mode:       ModeFile,
		Recovery:   RecoverySkipStatement,
		DumpTokens: true,
		DumpTables: true,
		OutputDir:  "out",
		LogLevel:   "debug",
	}
	cfg, err := ParseConfig([]byte(tomlContent), FormatTOML)
	assert.Nil(t, err)
	assert.Equal(t, expected, cfg)

	cfg, err = ParseConfig([]byte(yamlContent), FormatYAML)
	assert.Nil(t, err)
	assert.Equal(t, expected, cfg)

	level, err := cfg.SlogLevel()
	assert.Nil(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseConfig_Invalid(t *testing.T) {
	testData := []struct {
		content string
		format  ConfigFormat
	}{
		{`mode = "printer"`, FormatTOML},
		{`recovery = "panic"`, FormatTOML},
		{`log_level = "loud"`, FormatTOML},
		{`mode = `, FormatTOML},
		{"mode: [console", FormatYAML},
	}
	for _, data := range testData {
		_, err := ParseConfig([]byte(data.content), data.format)
		assert.NotNil(t, err, data.content)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minipas.yml")
	assert.Nil(t, os.WriteFile(path, []byte("dump_tokens: false\ncolor: true\n"), 0644))
	cfg, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.False(t, cfg.DumpTokens)
	assert.True(t, cfg.Color)
	assert.Equal(t, ModeConsole, cfg.Mode)

	_, err = LoadConfig(filepath.Join(dir, "absent.toml"))
	assert.NotNil(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, detectFormat("a.yaml"))
	assert.Equal(t, FormatYAML, detectFormat("a.YML"))
	assert.Equal(t, FormatTOML, detectFormat("a.toml"))
	assert.Equal(t, FormatTOML, detectFormat("minipasrc"))
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "toml", FormatTOML.String())
}
