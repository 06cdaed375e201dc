package internal

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func padLeft(s string) string {
	return strings.Repeat(" ", 16-len(s)) + s
}

func TestFormatToken(t *testing.T) {
	testData := []struct {
		token    Token
		expected string
	}{
		{sym(BeginTP), padLeft("begin") + " 01\n"},
		{ident("k"), padLeft("k") + " 10\n"},
		{lit(123), padLeft("123") + " 11\n"},
		{sym(AssignTP), padLeft(":=") + " 20\n"},
		{sym(EolTP), padLeft(`\EOL`) + " 24\n"},
		{sym(EofTP), padLeft(`\EOF`) + " 25\n"},
		{NewIllegalToken('#'), padLeft("#") + " 00\n"},
	}
	for _, data := range testData {
		assert.Equal(t, data.expected, FormatToken(data.token))
	}
}

func TestWriteTokens(t *testing.T) {
	tokens, _ := (&Tokenizer{}).Tokenize("begin\nend")
	buf := &bytes.Buffer{}
	assert.Nil(t, WriteTokens(buf, tokens))
	expected := padLeft("begin") + " 01\n" + padLeft(`\EOL`) + " 24\n" + padLeft("end") + " 02\n" + padLeft(`\EOF`) + " 25\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTables(t *testing.T) {
	env, _, err := analyse(t, factorialProgram, SkipLine{})
	assert.Nil(t, err)

	buf := &bytes.Buffer{}
	assert.Nil(t, WriteVariables(buf, env))
	assert.Equal(t, padLeft("k")+" "+padLeft("global")+" 0 0\n"+padLeft("n")+" "+padLeft("F")+" 0 1\n", buf.String())

	buf.Reset()
	assert.Nil(t, WriteProcedures(buf, env))
	assert.Equal(t, padLeft("F")+" 0 1\n", buf.String())
}
