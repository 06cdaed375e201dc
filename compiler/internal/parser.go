package internal

// Parser is a recursive descent parser for minipas. It builds no tree, it only
// checks the syntax and the declarations against a SymbolEnvironment.
//
// program       := block
// block         := begin decl_table exec_table end
// decl_table    := { decl ; }
// decl          := integer decl_tail
// decl_tail     := identifier | function identifier ( expr ) ; function_body
// function_body := begin decl_table exec_table end
// exec_table    := { exec_stmt ; }
// exec_stmt     := read_stmt | write_stmt | if_stmt | assign_stmt
// assign_stmt   := identifier := expr
// if_stmt       := if condition then exec_stmt else exec_stmt
// read_stmt     := read ( identifier )
// write_stmt    := write ( identifier )
// condition     := expr relop expr
// expr          := term { - term }
// term          := factor { * factor }
// factor        := ( expr ) | integer_literal | identifier [ ( expr ) ]
//
// The first error aborts the parse. It is reported once, the recovery
// strategy moves the cursor, and every caller returns the same *Diagnostic.
type Parser struct {
	currentTokenPos int
	currentTokens   Tokens
	currentLine     int

	sink     DiagnosticSink
	recovery RecoveryStrategy
	env      *SymbolEnvironment
	// owners is the stack of functions being parsed, used as variable owner.
	owners []string
}

type ParserOption func(parser *Parser)

func WithSink(sink DiagnosticSink) ParserOption {
	return func(parser *Parser) {
		parser.sink = sink
	}
}

func WithRecovery(recovery RecoveryStrategy) ParserOption {
	return func(parser *Parser) {
		parser.recovery = recovery
	}
}

func NewParser(tokens Tokens, opts ...ParserOption) *Parser {
	parser := &Parser{
		currentTokens: tokens,
		sink:          nopSink{},
		recovery:      SkipLine{},
	}
	for _, opt := range opts {
		opt(parser)
	}
	parser.reset()
	return parser
}

func (parser *Parser) reset() {
	parser.currentTokenPos, parser.currentLine, parser.owners = 0, 1, nil
	parser.skipEol()
}

// Analyse parses the whole token sequence. It returns nil or the *Diagnostic
// of the first error.
func (parser *Parser) Analyse(env *SymbolEnvironment) error {
	if env == nil {
		env = NewSymbolEnvironment()
	}
	parser.env = env
	parser.reset()
	return parser.parseProgram()
}

// Line is the line of the token under the cursor.
func (parser *Parser) Line() int {
	return parser.currentLine
}

func (parser *Parser) getCurrentToken() Token {
	if parser.currentTokenPos >= len(parser.currentTokens) {
		return NewSymbolToken(EofTP)
	}
	return parser.currentTokens[parser.currentTokenPos]
}

// peekToken returns the token after the current one, ignoring line ends.
func (parser *Parser) peekToken() Token {
	pos := parser.currentTokenPos + 1
	for pos < len(parser.currentTokens) && parser.currentTokens[pos].tp == EolTP {
		pos++
	}
	if pos >= len(parser.currentTokens) {
		return NewSymbolToken(EofTP)
	}
	return parser.currentTokens[pos]
}

// stepForward moves to the next token. Eol tokens are never current, stepping
// over one counts a line.
func (parser *Parser) stepForward() {
	if parser.currentTokenPos >= len(parser.currentTokens) {
		return
	}
	parser.currentTokenPos++
	parser.skipEol()
}

func (parser *Parser) skipEol() {
	for parser.currentTokenPos < len(parser.currentTokens) && parser.currentTokens[parser.currentTokenPos].tp == EolTP {
		parser.currentLine++
		parser.currentTokenPos++
	}
}

func (parser *Parser) atEnd() bool {
	return parser.getCurrentToken().tp == EofTP
}

// expectToken checks the current token type and steps over it on a match when
// stepForward is set.
func (parser *Parser) expectToken(tp TokenType, stepForward bool) (Token, bool) {
	token := parser.getCurrentToken()
	if token.tp != tp {
		return token, false
	}
	if stepForward {
		parser.stepForward()
	}
	return token, true
}

func (parser *Parser) makeError(kind ErrorKind) error {
	return parser.makeErrorAt(parser.currentLine, kind)
}

func (parser *Parser) makeErrorAt(line int, kind ErrorKind) error {
	parser.sink.Report(line, kind)
	parser.recovery.Recover(parser)
	return &Diagnostic{Line: line, Kind: kind}
}

func (parser *Parser) currentOwner() string {
	if len(parser.owners) == 0 {
		return GlobalOwner
	}
	return parser.owners[len(parser.owners)-1]
}

func (parser *Parser) parseProgram() error {
	return parser.parseBlock()
}

// begin decl_table exec_table end, in a scope of its own.
func (parser *Parser) parseBlock() error {
	_, match := parser.expectToken(BeginTP, true)
	if !match {
		return parser.makeError(SyntaxErrorExpectedABlock)
	}
	parser.env.EnterScope()
	defer parser.env.ExitScope()
	return parser.parseBlockBody()
}

func (parser *Parser) parseBlockBody() error {
	err := parser.parseDeclarationTable()
	if err != nil {
		return err
	}
	err = parser.parseExecutionTable()
	if err != nil {
		return err
	}
	_, match := parser.expectToken(EndTP, true)
	if !match {
		return parser.makeError(MissingEnd)
	}
	return nil
}

// The declaration table has no terminator, it ends when the lookahead is in
// its FOLLOW set.
func (parser *Parser) parseDeclarationTable() error {
	for {
		token := parser.getCurrentToken()
		if token.tp != IntegerTP {
			if parser.looksLikeDeclaration(token) {
				return parser.makeError(InvalidTypeExpectedInteger)
			}
			switch token.tp {
			case ReadTP, WriteTP, IfTP, IdentifierTP, EndTP, EofTP:
				return nil
			}
			return parser.makeError(SyntaxError)
		}
		err := parser.parseDeclaration()
		if err != nil {
			return err
		}
		_, match := parser.expectToken(SemiColonTP, true)
		if !match {
			return parser.makeError(MissingSemicolon)
		}
	}
}

// looksLikeDeclaration catches a declaration whose type word is not integer,
// like "int x" or "real function f".
func (parser *Parser) looksLikeDeclaration(token Token) bool {
	if token.tp != IdentifierTP {
		return false
	}
	next := parser.peekToken().tp
	return next == IdentifierTP || next == FunctionTP
}

func (parser *Parser) parseDeclaration() error {
	_, match := parser.expectToken(IntegerTP, true)
	if !match {
		return parser.makeError(InvalidTypeExpectedInteger)
	}
	return parser.parseDeclarationTail()
}

func (parser *Parser) parseDeclarationTail() error {
	token := parser.getCurrentToken()
	if token.tp == FunctionTP {
		return parser.parseFunctionDeclaration()
	}
	if token.tp == IdentifierTP && isNearMiss(token.content, "function", 2) && parser.peekToken().tp == IdentifierTP {
		return parser.makeError(WrongReserveYouMeanFunction)
	}
	return parser.parseVariableDeclaration()
}

func (parser *Parser) parseVariableDeclaration() error {
	line := parser.currentLine
	name, err := parser.parseIdentifier()
	if err != nil {
		return err
	}
	if parser.env.IsRedeclaredInCurrentScope(name) {
		return parser.makeErrorAt(line, FoundRepeatDeclarationInThisField)
	}
	parser.env.DeclareVariable(name, parser.currentOwner(), LocalVariable)
	return nil
}

// function identifier ( expr ) ; function_body
// The name lives in the enclosing scope, the body opens a new one.
func (parser *Parser) parseFunctionDeclaration() error {
	_, match := parser.expectToken(FunctionTP, true)
	if !match {
		return parser.makeError(WrongReserveYouMeanFunction)
	}
	line := parser.currentLine
	name, err := parser.parseIdentifier()
	if err != nil {
		return err
	}
	if parser.env.IsRedeclaredInCurrentScope(name) {
		return parser.makeErrorAt(line, FoundRepeatDeclarationInThisField)
	}
	parser.env.DeclareProcedure(name)

	_, match = parser.expectToken(LeftParentThesesTP, true)
	if !match {
		return parser.makeError(MissingLeftParenthesis)
	}
	err = parser.parseExpression()
	if err != nil {
		return err
	}
	_, match = parser.expectToken(RightParentThesesTP, true)
	if !match {
		return parser.makeError(MissingRightParenthesis)
	}
	_, match = parser.expectToken(SemiColonTP, true)
	if !match {
		return parser.makeError(MissingSemicolon)
	}
	return parser.parseFunctionBody(name)
}

func (parser *Parser) parseFunctionBody(name string) error {
	parser.owners = append(parser.owners, name)
	defer func() {
		parser.owners = parser.owners[:len(parser.owners)-1]
	}()
	return parser.parseBlock()
}

// The execution table ends on end or EOF.
func (parser *Parser) parseExecutionTable() error {
	for {
		switch parser.getCurrentToken().tp {
		case ReadTP, WriteTP, IfTP, IdentifierTP:
		case EndTP, EofTP:
			return nil
		default:
			return parser.makeError(SyntaxError)
		}
		err := parser.parseStatement()
		if err != nil {
			return err
		}
		_, match := parser.expectToken(SemiColonTP, true)
		if !match {
			return parser.makeError(MissingSemicolon)
		}
	}
}

func (parser *Parser) parseStatement() error {
	token := parser.getCurrentToken()
	switch token.tp {
	case ReadTP:
		return parser.parseReadStatement()
	case WriteTP:
		return parser.parseWriteStatement()
	case IfTP:
		return parser.parseIfStatement()
	case IdentifierTP:
		// read and write are the only statements followed by '('. A declared
		// name is taken as meant, never as a misspelled keyword.
		if parser.peekToken().tp == LeftParentThesesTP && !parser.env.Resolve(token.content) {
			switch {
			case isNearMiss(token.content, "read", 1):
				return parser.makeError(WrongReserveYouMeanRead)
			case isNearMiss(token.content, "write", 1):
				return parser.makeError(WrongReserveYouMeanWrite)
			}
		}
		return parser.parseAssignStatement()
	}
	return parser.makeError(SyntaxError)
}

func (parser *Parser) parseAssignStatement() error {
	_, err := parser.parseIdentifier()
	if err != nil {
		return err
	}
	_, match := parser.expectToken(AssignTP, true)
	if !match {
		return parser.makeError(WrongAssignToken)
	}
	return parser.parseExpression()
}

// if condition then exec_stmt else exec_stmt
func (parser *Parser) parseIfStatement() error {
	_, match := parser.expectToken(IfTP, true)
	if !match {
		return parser.makeError(MissingIf)
	}
	err := parser.parseCondition()
	if err != nil {
		return err
	}
	_, match = parser.expectToken(ThenTP, true)
	if !match {
		return parser.makeError(MissingThen)
	}
	err = parser.parseStatement()
	if err != nil {
		return err
	}
	_, match = parser.expectToken(ElseTP, true)
	if !match {
		return parser.makeError(MissingElse)
	}
	return parser.parseStatement()
}

func (parser *Parser) parseReadStatement() error {
	_, match := parser.expectToken(ReadTP, true)
	if !match {
		return parser.makeError(WrongReserveYouMeanRead)
	}
	return parser.parseParenthesizedVariable()
}

func (parser *Parser) parseWriteStatement() error {
	_, match := parser.expectToken(WriteTP, true)
	if !match {
		return parser.makeError(WrongReserveYouMeanWrite)
	}
	return parser.parseParenthesizedVariable()
}

// ( identifier ), the argument of read and write.
func (parser *Parser) parseParenthesizedVariable() error {
	_, match := parser.expectToken(LeftParentThesesTP, true)
	if !match {
		return parser.makeError(MissingLeftParenthesis)
	}
	_, err := parser.parseIdentifier()
	if err != nil {
		return err
	}
	_, match = parser.expectToken(RightParentThesesTP, true)
	if !match {
		return parser.makeError(MissingRightParenthesis)
	}
	return nil
}

func (parser *Parser) parseCondition() error {
	err := parser.parseExpression()
	if err != nil {
		return err
	}
	if !isRelationalOperator(parser.getCurrentToken().tp) {
		return parser.makeError(SyntaxError)
	}
	parser.stepForward()
	return parser.parseExpression()
}

func isRelationalOperator(tp TokenType) bool {
	switch tp {
	case EqualTP, NotEqualTP, LessTP, LessEqualTP, GreaterTP, GreaterEqualTP:
		return true
	}
	return false
}

func (parser *Parser) parseExpression() error {
	err := parser.parseTerm()
	if err != nil {
		return err
	}
	for {
		_, match := parser.expectToken(MinusTP, true)
		if !match {
			return nil
		}
		err = parser.parseTerm()
		if err != nil {
			return err
		}
	}
}

func (parser *Parser) parseTerm() error {
	err := parser.parseFactor()
	if err != nil {
		return err
	}
	for {
		switch parser.getCurrentToken().tp {
		case MultiplyTP:
			parser.stepForward()
		case IntegerLiteralTP, LeftParentThesesTP:
			// Two factors side by side, like 2 x or (a)(b).
			return parser.makeError(MissingMultiply)
		default:
			return nil
		}
		err = parser.parseFactor()
		if err != nil {
			return err
		}
	}
}

func (parser *Parser) parseFactor() error {
	token := parser.getCurrentToken()
	switch token.tp {
	case LeftParentThesesTP:
		parser.stepForward()
		err := parser.parseExpression()
		if err != nil {
			return err
		}
		_, match := parser.expectToken(RightParentThesesTP, true)
		if !match {
			return parser.makeError(MissingRightParenthesis)
		}
		return nil
	case IntegerLiteralTP:
		parser.stepForward()
		return nil
	case IdentifierTP:
		parser.stepForward()
		return parser.parseCallSuffix()
	}
	return parser.makeError(SyntaxError)
}

// parseCallSuffix parses the optional ( expr ) after an identifier. The
// argument is not checked against the called function.
func (parser *Parser) parseCallSuffix() error {
	_, match := parser.expectToken(LeftParentThesesTP, true)
	if !match {
		return nil
	}
	err := parser.parseExpression()
	if err != nil {
		return err
	}
	_, match = parser.expectToken(RightParentThesesTP, true)
	if !match {
		return parser.makeError(MissingRightParenthesis)
	}
	return nil
}

func (parser *Parser) parseIdentifier() (string, error) {
	token, match := parser.expectToken(IdentifierTP, true)
	if !match {
		return "", parser.makeError(ExpectedIdentifier)
	}
	return token.content, nil
}
