package internal

import (
	"math"
	"minipas/util"
	"strconv"
	"strings"
)

// A simple Tokenizer for minipas.

// minipas has those elements:
// * KeyWord: begin, end, integer, function, if, then, else, read, write.
// * Symbol: -, *, :=, =, <>, <, <=, >, >=, (, ), ;.
// * Constant: integer.
// * Identifier: letters, digits, underscore, not starting with a digit, at most 16 characters.
// * Line end: every '\n' becomes an Eol token, the parser uses it to count lines.

type TokenType int

const (
	IdentifierTP        TokenType = iota // varA
	IntegerLiteralTP                     // 1010
	MinusTP                              // -
	MultiplyTP                           // *
	AssignTP                             // :=
	EqualTP                              // =
	NotEqualTP                           // <>
	LessTP                               // <
	LessEqualTP                          // <=
	GreaterTP                            // >
	GreaterEqualTP                       // >=
	BeginTP                              // begin
	EndTP                                // end
	LeftParentThesesTP                   // (
	RightParentThesesTP                  // )
	SemiColonTP                          // ;
	EolTP                                // \n
	EofTP                                // end of source
	IntegerTP                            // integer
	FunctionTP                           // function
	IfTP                                 // if
	ThenTP                               // then
	ElseTP                               // else
	ReadTP                               // read
	WriteTP                              // write
	IllegalTP                            // anything else
)

const MaxIdentifierLength = 16

// keyWordTokenTPMap is the mapping from reserved word to the corresponding TokenTP.
var keyWordTokenTPMap = map[string]TokenType{
	"begin":    BeginTP,
	"end":      EndTP,
	"integer":  IntegerTP,
	"function": FunctionTP,
	"if":       IfTP,
	"then":     ThenTP,
	"else":     ElseTP,
	"read":     ReadTP,
	"write":    WriteTP,
}

// simpleSymbolTokenTPMap holds the symbols made of exactly one character.
var simpleSymbolTokenTPMap = map[rune]TokenType{
	';': SemiColonTP,
	'=': EqualTP,
	'(': LeftParentThesesTP,
	')': RightParentThesesTP,
	'-': MinusTP,
	'*': MultiplyTP,
}

var tokenSymbols = map[TokenType]string{
	MinusTP:             "-",
	MultiplyTP:          "*",
	AssignTP:            ":=",
	EqualTP:             "=",
	NotEqualTP:          "<>",
	LessTP:              "<",
	LessEqualTP:         "<=",
	GreaterTP:           ">",
	GreaterEqualTP:      ">=",
	BeginTP:             "begin",
	EndTP:               "end",
	LeftParentThesesTP:  "(",
	RightParentThesesTP: ")",
	SemiColonTP:         ";",
	EolTP:               `\EOL`,
	EofTP:               `\EOF`,
	IntegerTP:           "integer",
	FunctionTP:          "function",
	IfTP:                "if",
	ThenTP:              "then",
	ElseTP:              "else",
	ReadTP:              "read",
	WriteTP:             "write",
}

// Token is a comparable value, position is not part of it. Two identifiers
// with the same name are the same token.
type Token struct {
	tp      TokenType
	content string
	value   int64
	illegal rune
}

func NewSymbolToken(tp TokenType) Token {
	return Token{tp: tp}
}

func NewIdentifierToken(name string) Token {
	return Token{tp: IdentifierTP, content: name}
}

func NewIntegerLiteralToken(value int64) Token {
	return Token{tp: IntegerLiteralTP, value: value}
}

func NewIllegalToken(c rune) Token {
	return Token{tp: IllegalTP, illegal: c}
}

func (t Token) Type() TokenType {
	return t.tp
}

// Name is the identifier name, empty for other tokens.
func (t Token) Name() string {
	return t.content
}

func (t Token) Value() int64 {
	return t.value
}

func (t Token) Char() rune {
	return t.illegal
}

// String returns the source text the token stands for.
func (t Token) String() string {
	switch t.tp {
	case IdentifierTP:
		return t.content
	case IntegerLiteralTP:
		return strconv.FormatInt(t.value, 10)
	case IllegalTP:
		return string(t.illegal)
	}
	return tokenSymbols[t.tp]
}

type Tokens []Token

type Tokenizer struct {
	source      []rune
	currentPos  int
	cha         rune
	eof         bool
	token       strings.Builder
	tokenLen    int
	currentLine int

	// Interning caches, only valid for one Tokenize call.
	wordTable    map[string]Token
	literalTable map[int64]Token

	sink   DiagnosticSink
	errors []*Diagnostic
	tokens Tokens
}

func NewTokenizer(sink DiagnosticSink) *Tokenizer {
	return &Tokenizer{sink: sink}
}

// Tokenize scans the whole source. Lexical errors don't stop the scan, they
// are reported to the sink, returned and replaced by an Illegal token.
// The returned tokens always end with exactly one Eof token.
func (tokenizer *Tokenizer) Tokenize(source string) (Tokens, []*Diagnostic) {
	tokenizer.Reset()
	tokenizer.source = []rune(source)
	tokenizer.getChar()
	for {
		token := tokenizer.getNextToken()
		tokenizer.tokens = append(tokenizer.tokens, token)
		if token.tp == EofTP {
			return tokenizer.tokens, tokenizer.errors
		}
	}
}

func (tokenizer *Tokenizer) Reset() {
	tokenizer.source, tokenizer.currentPos, tokenizer.cha, tokenizer.eof = nil, -1, 0, false
	tokenizer.token.Reset()
	tokenizer.tokenLen = 0
	tokenizer.currentLine = 1
	tokenizer.wordTable = map[string]Token{}
	tokenizer.literalTable = map[int64]Token{}
	tokenizer.errors, tokenizer.tokens = nil, nil
}

// getChar moves to the next character. Leaving a '\n' starts a new line.
func (tokenizer *Tokenizer) getChar() {
	if !tokenizer.eof && tokenizer.currentPos >= 0 && tokenizer.cha == '\n' {
		tokenizer.currentLine++
	}
	tokenizer.currentPos++
	if tokenizer.currentPos >= len(tokenizer.source) {
		tokenizer.cha, tokenizer.eof = 0, true
		return
	}
	tokenizer.cha = tokenizer.source[tokenizer.currentPos]
}

// peekChar returns the character after the current one without consuming it.
func (tokenizer *Tokenizer) peekChar() (rune, bool) {
	next := tokenizer.currentPos + 1
	if next >= len(tokenizer.source) {
		return 0, false
	}
	return tokenizer.source[next], true
}

// trimSpace skips blanks but stops at a newline.
func (tokenizer *Tokenizer) trimSpace() {
	for !tokenizer.eof && util.IsBlank(tokenizer.cha) {
		tokenizer.getChar()
	}
}

func (tokenizer *Tokenizer) concat() {
	tokenizer.token.WriteRune(tokenizer.cha)
	tokenizer.tokenLen++
}

// getNextToken returns the next token starting at the current character.
func (tokenizer *Tokenizer) getNextToken() Token {
	tokenizer.token.Reset()
	tokenizer.tokenLen = 0
	tokenizer.trimSpace()
	if tokenizer.eof {
		return NewSymbolToken(EofTP)
	}
	c := tokenizer.cha
	if tp, ok := simpleSymbolTokenTPMap[c]; ok {
		tokenizer.getChar()
		return NewSymbolToken(tp)
	}
	switch {
	case c == '\n':
		tokenizer.getChar()
		return NewSymbolToken(EolTP)
	case c == '<':
		return tokenizer.tokenLess()
	case c == '>':
		return tokenizer.tokenGreater()
	case c == ':':
		return tokenizer.tokenAssign()
	case util.IsLetterOrUnderscore(c):
		return tokenizer.toKeywordOrIdentifier()
	case util.IsNumber(c):
		return tokenizer.tokenNumber()
	default:
		tokenizer.getChar()
		return NewIllegalToken(c)
	}
}

func (tokenizer *Tokenizer) tokenLess() Token {
	next, _ := tokenizer.peekChar()
	switch next {
	case '=':
		tokenizer.getChar()
		tokenizer.getChar()
		return NewSymbolToken(LessEqualTP)
	case '>':
		tokenizer.getChar()
		tokenizer.getChar()
		return NewSymbolToken(NotEqualTP)
	}
	tokenizer.getChar()
	return NewSymbolToken(LessTP)
}

func (tokenizer *Tokenizer) tokenGreater() Token {
	next, _ := tokenizer.peekChar()
	if next == '=' {
		tokenizer.getChar()
		tokenizer.getChar()
		return NewSymbolToken(GreaterEqualTP)
	}
	tokenizer.getChar()
	return NewSymbolToken(GreaterTP)
}

// ':' is only legal as the first half of ':='.
func (tokenizer *Tokenizer) tokenAssign() Token {
	next, _ := tokenizer.peekChar()
	if next != '=' {
		return tokenizer.fail(FailMatchingSemicolon, ':')
	}
	tokenizer.getChar()
	tokenizer.getChar()
	return NewSymbolToken(AssignTP)
}

func (tokenizer *Tokenizer) toKeywordOrIdentifier() Token {
	for !tokenizer.eof && util.IsLetterOrUnderscoreOrNumber(tokenizer.cha) {
		if tokenizer.tokenLen >= MaxIdentifierLength {
			return tokenizer.fail(OverflowIdentifier, tokenizer.cha)
		}
		tokenizer.concat()
		tokenizer.getChar()
	}
	text := tokenizer.token.String()
	if tp, isKeyWord := keyWordTokenTPMap[text]; isKeyWord {
		return NewSymbolToken(tp)
	}
	return tokenizer.word(text)
}

func (tokenizer *Tokenizer) tokenNumber() Token {
	var value int64
	overflow := false
	last := tokenizer.cha
	for !tokenizer.eof && util.IsNumber(tokenizer.cha) {
		digit := int64(tokenizer.cha - '0')
		if value > (math.MaxInt64-digit)/10 {
			overflow = true
		} else {
			value = value*10 + digit
		}
		last = tokenizer.cha
		tokenizer.concat()
		tokenizer.getChar()
	}
	// A digit run directly followed by a letter, like 123abc.
	if !tokenizer.eof && util.IsLetter(tokenizer.cha) {
		return tokenizer.fail(InvalidNumber, tokenizer.cha)
	}
	if overflow {
		return tokenizer.fail(InvalidNumber, last)
	}
	return tokenizer.literal(value)
}

func (tokenizer *Tokenizer) word(name string) Token {
	if token, ok := tokenizer.wordTable[name]; ok {
		return token
	}
	token := NewIdentifierToken(name)
	tokenizer.wordTable[name] = token
	return token
}

func (tokenizer *Tokenizer) literal(value int64) Token {
	if token, ok := tokenizer.literalTable[value]; ok {
		return token
	}
	token := NewIntegerLiteralToken(value)
	tokenizer.literalTable[value] = token
	return token
}

// fail reports kind at the current line and drops the rest of that line. The
// newline is left in place so it still produces its Eol token.
func (tokenizer *Tokenizer) fail(kind ErrorKind, offending rune) Token {
	diagnostic := &Diagnostic{Line: tokenizer.currentLine, Kind: kind}
	tokenizer.errors = append(tokenizer.errors, diagnostic)
	if tokenizer.sink != nil {
		tokenizer.sink.Report(diagnostic.Line, diagnostic.Kind)
	}
	tokenizer.skipBadLine()
	return NewIllegalToken(offending)
}

func (tokenizer *Tokenizer) skipBadLine() {
	for !tokenizer.eof && tokenizer.cha != '\n' {
		tokenizer.getChar()
	}
}
