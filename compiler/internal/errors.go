package internal

import "fmt"

type ErrorKind int

const (
	SyntaxError                       ErrorKind = iota // unknown construct
	WrongReserveYouMeanFunction                        // fuction
	WrongReserveYouMeanRead                            // raed
	WrongReserveYouMeanWrite                           // wirte
	WrongAssignToken                                   // x = 1
	InvalidTypeExpectedInteger                         // int x
	InvalidNumber                                      // 123abc
	OverflowIdentifier                                 // more than 16 characters
	FailMatchingSemicolon                              // ':' without '='
	MissingSemicolon                                   // ;
	MissingLeftParenthesis                             // (
	MissingRightParenthesis                            // )
	MissingIf                                          // if
	MissingThen                                        // then
	MissingElse                                        // else
	MissingMultiply                                    // *
	SyntaxErrorExpectedABlock                          // begin
	FailMatching                                       // generic symbol mismatch
	MissingEnd                                         // end
	ExpectedIdentifier                                 // identifier
	FoundRepeatDeclarationInThisField                  // redeclared in the same scope
)

var errorKindNames = map[ErrorKind]string{
	SyntaxError:                       "SyntaxError",
	WrongReserveYouMeanFunction:       "WrongReserveYouMeanFunction",
	WrongReserveYouMeanRead:           "WrongReserveYouMeanRead",
	WrongReserveYouMeanWrite:          "WrongReserveYouMeanWrite",
	WrongAssignToken:                  "WrongAssignToken",
	InvalidTypeExpectedInteger:        "InvalidTypeExpectedInteger",
	InvalidNumber:                     "InvalidNumber",
	OverflowIdentifier:                "OverflowIdentifier",
	FailMatchingSemicolon:             "FailMatchingSemicolon",
	MissingSemicolon:                  "MissingSemicolon",
	MissingLeftParenthesis:            "MissingLeftParenthesis",
	MissingRightParenthesis:           "MissingRightParenthesis",
	MissingIf:                         "MissingIf",
	MissingThen:                       "MissingThen",
	MissingElse:                       "MissingElse",
	MissingMultiply:                   "MissingMultiply",
	SyntaxErrorExpectedABlock:         "SyntaxErrorExpectedABlock",
	FailMatching:                      "FailMatching",
	MissingEnd:                        "MissingEnd",
	ExpectedIdentifier:                "ExpectedIdentifier",
	FoundRepeatDeclarationInThisField: "FoundRepeatDeclarationInThisField",
}

// errorMessages holds the human readable text written after the LINE<n>: prefix.
var errorMessages = map[ErrorKind]string{
	SyntaxError:                       "unknown token!",
	WrongReserveYouMeanFunction:       "wrong reserve: you mean 'function'?",
	WrongReserveYouMeanRead:           "wrong reserve: you mean 'read'?",
	WrongReserveYouMeanWrite:          "wrong reserve: you mean 'write'?",
	WrongAssignToken:                  "wrong assign operator: you mean ':='?",
	InvalidTypeExpectedInteger:        "invalid type: expected INTEGER",
	InvalidNumber:                     "Invalid number!",
	OverflowIdentifier:                "Identifier length overflow!",
	FailMatchingSemicolon:             "Semicolon matching failed!",
	MissingSemicolon:                  "missing a ';' at the end of the statement",
	MissingLeftParenthesis:            "expected '(' following the function statement",
	MissingRightParenthesis:           "expected ')' to cover the block",
	MissingIf:                         "expected 'if'",
	MissingThen:                       "expected 'then'",
	MissingElse:                       "expected 'else'",
	MissingMultiply:                   "expected '*'",
	SyntaxErrorExpectedABlock:         "syntax error, expected a block",
	FailMatching:                      "Symbol matching error!",
	MissingEnd:                        "missing END: this block is not covered",
	ExpectedIdentifier:                "Expected identifier in this field",
	FoundRepeatDeclarationInThisField: "this symbol's declaration repeated in this field",
}

func (kind ErrorKind) String() string {
	name, ok := errorKindNames[kind]
	if !ok {
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
	return name
}

func (kind ErrorKind) Message() string {
	msg, ok := errorMessages[kind]
	if !ok {
		return "unknown error"
	}
	return msg
}

// IsLexical reports whether the kind is raised by the tokenizer.
func (kind ErrorKind) IsLexical() bool {
	switch kind {
	case InvalidNumber, OverflowIdentifier, FailMatchingSemicolon:
		return true
	}
	return false
}

// Diagnostic is an ErrorKind tagged with the line it was found at. It is the
// error returned by Parser.Analyse.
type Diagnostic struct {
	Line int
	Kind ErrorKind
}

func (d *Diagnostic) Error() string {
	return formatDiagnostic(d.Line, d.Kind)
}

func formatDiagnostic(line int, kind ErrorKind) string {
	return fmt.Sprintf("LINE%d: %s", line, kind.Message())
}
