package internal

import (
	"bufio"
	"fmt"
	"io"
)

// tokenLabels are the numeric codes written to the .dyd file. Any type not
// listed is written as 00.
var tokenLabels = map[TokenType]int{
	BeginTP:             1,
	EndTP:               2,
	IntegerTP:           3,
	IfTP:                4,
	ThenTP:              5,
	ElseTP:              6,
	FunctionTP:          7,
	ReadTP:              8,
	WriteTP:             9,
	IdentifierTP:        10,
	IntegerLiteralTP:    11,
	EqualTP:             12,
	NotEqualTP:          13,
	LessEqualTP:         14,
	LessTP:              15,
	GreaterEqualTP:      16,
	GreaterTP:           17,
	MinusTP:             18,
	MultiplyTP:          19,
	AssignTP:            20,
	LeftParentThesesTP:  21,
	RightParentThesesTP: 22,
	SemiColonTP:         23,
	EolTP:               24,
	EofTP:               25,
}

func TokenLabel(tp TokenType) int {
	return tokenLabels[tp]
}

// FormatToken renders one .dyd line: the symbol right aligned in 16 columns
// and a two digit label.
func FormatToken(token Token) string {
	return fmt.Sprintf("%16s %02d\n", token.String(), TokenLabel(token.tp))
}

func WriteTokens(w io.Writer, tokens Tokens) error {
	bw := bufio.NewWriter(w)
	for _, token := range tokens {
		if _, err := bw.WriteString(FormatToken(token)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteVariables writes one line per declared variable: name owner kind level.
func WriteVariables(w io.Writer, env *SymbolEnvironment) error {
	bw := bufio.NewWriter(w)
	for _, v := range env.Variables() {
		if _, err := fmt.Fprintf(bw, "%16s %16s %d %d\n", v.Name, v.Owner, v.Kind, v.Level); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteProcedures writes one line per declared procedure: name level arity.
func WriteProcedures(w io.Writer, env *SymbolEnvironment) error {
	bw := bufio.NewWriter(w)
	for _, p := range env.Procedures() {
		if _, err := fmt.Fprintf(bw, "%16s %d %d\n", p.Name, p.Level, p.Arity); err != nil {
			return err
		}
	}
	return bw.Flush()
}
