package internal

import "fmt"

// RecoveryStrategy moves the parser cursor to a synchronization point after a
// syntax error has been reported.
type RecoveryStrategy interface {
	Recover(parser *Parser)
}

// SkipLine discards tokens until the cursor reaches the next line or EOF.
type SkipLine struct{}

func (SkipLine) Recover(parser *Parser) {
	line := parser.currentLine
	for !parser.atEnd() && parser.currentLine == line {
		parser.stepForward()
	}
}

// SkipStatement discards tokens up to and including the next ';'. It stops in
// front of 'end' so the enclosing block can still be closed.
type SkipStatement struct{}

func (SkipStatement) Recover(parser *Parser) {
	for !parser.atEnd() {
		switch parser.getCurrentToken().tp {
		case SemiColonTP:
			parser.stepForward()
			return
		case EndTP:
			return
		}
		parser.stepForward()
	}
}

const (
	RecoverySkipLine      = "line"
	RecoverySkipStatement = "statement"
)

func RecoveryByName(name string) (RecoveryStrategy, error) {
	switch name {
	case RecoverySkipLine, "":
		return SkipLine{}, nil
	case RecoverySkipStatement:
		return SkipStatement{}, nil
	}
	return nil, fmt.Errorf("unknown recovery strategy %q", name)
}
