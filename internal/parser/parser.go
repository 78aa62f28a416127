// Package parser implements a Pratt (operator-precedence) parser that
// turns a token stream into an *ast.Program.
//
// The parser tracks the current and next token (one token of
// lookahead), registers one prefix parse function per literal/prefix
// token kind and one infix parse function per binary/call/index/member
// operator, and stops at the first structured error it encounters:
// the contract is "at most one fatal error per parse", matching the
// language's diagnostic model of a single located syntax error.
package parser

import (
	"fmt"
	"strconv"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/diag"
	"github.com/pana-lang/pana/internal/lexer"
	"github.com/pana-lang/pana/internal/token"
)

const (
	_ int = iota
	LOWEST
	ASSIGN      // =
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x +x !x
	CALL        // f(...)
	INDEX       // x[i]
	MEMBER      // x.m(...)
)

var precedences = map[token.Type]int{
	token.ASSIGN:   ASSIGN,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
	token.DOT:      MEMBER,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes a lexer's token stream and produces a Program. It
// stops at the first error, recorded in Err.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	Err *diag.ParseError

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New constructs a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[token.Type]prefixParseFn{}
	p.infixFns = map[token.Type]infixParseFn{}

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.VERDAD, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSO, p.parseBooleanLiteral)
	p.registerPrefix(token.NULO, p.parseNullLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.LBRACE, p.parseDictLiteral)
	p.registerPrefix(token.SI, p.parseIfExpression)
	p.registerPrefix(token.MIENTRAS, p.parseWhileExpression)
	p.registerPrefix(token.PARA, p.parseForRangeExpression)
	p.registerPrefix(token.FN, p.parseFunctionLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.PLUS, p.parsePrefixExpression)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)

	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.PERCENT, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.LT_EQ, p.parseInfixExpression)
	p.registerInfix(token.GT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignmentExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	// Newlines and comments carry no grammatical meaning anywhere in
	// Pana's statement grammar; the lexer still emits them so the
	// token stream is total, but the parser skips over them as if
	// they were whitespace.
	for p.peekToken.Type == token.NEWLINE || p.peekToken.Type == token.COMMENT {
		p.peekToken = p.l.NextToken()
	}
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) fail(format string, args ...interface{}) {
	if p.Err != nil {
		return // first fatal error wins
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	p.Err = diag.NewParseError(p.curToken.Pos.Line, p.curToken.Pos.Col, msg)
}

// expectPeek advances past peekToken if it matches t, recording a
// located error named by errMsg otherwise.
func (p *Parser) expectPeek(t token.Type, errMsg string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekFail(errMsg)
	return false
}

func (p *Parser) peekFail(msg string) {
	if p.Err != nil {
		return
	}
	p.Err = diag.NewParseError(p.peekToken.Pos.Line, p.peekToken.Pos.Col, msg)
}

// ParseProgram parses the whole token stream into a Program. Parsing
// stops as soon as p.Err is set; the caller should check Err after
// calling ParseProgram.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) && p.Err == nil {
		stmt := p.parseStatement()
		if p.Err != nil {
			break
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.VAR:
		return p.parseVarStatement()
	case token.RETORNAR:
		return p.parseReturnStatement()
	case token.ROMPER:
		return p.parseBreakStatement()
	case token.CONTINUAR:
		return p.parseContinueStatement()
	case token.FN:
		if p.peekTokenIs(token.IDENT) {
			return p.parseFunctionStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarStatement() ast.Statement {
	stmt := &ast.VarStatement{}
	stmt.Token = p.curToken

	if !p.expectPeek(token.IDENT, "Se esperaba un identificador") {
		return nil
	}
	stmt.Name = &ast.Identifier{Value: p.curToken.Literal}
	stmt.Name.Token = p.curToken

	if !p.expectPeek(token.ASSIGN, "Se esperaba `=`") {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if p.Err != nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON, "Se esperaba `;`") {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{}
	stmt.Token = p.curToken
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if p.Err != nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON, "Se esperaba `;`") {
		return nil
	}
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{}
	stmt.Token = p.curToken
	if !p.expectPeek(token.SEMICOLON, "Se esperaba `;`") {
		return nil
	}
	return stmt
}

func (p *Parser) parseContinueStatement() ast.Statement {
	stmt := &ast.ContinueStatement{}
	stmt.Token = p.curToken
	if !p.expectPeek(token.SEMICOLON, "Se esperaba `;`") {
		return nil
	}
	return stmt
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	stmt := &ast.FunctionStatement{}
	stmt.Token = p.curToken

	p.nextToken() // move to the name
	stmt.Name = &ast.Identifier{Value: p.curToken.Literal}
	stmt.Name.Token = p.curToken

	if !p.expectPeek(token.LPAREN, "Se esperaba `(`") {
		return nil
	}
	stmt.Parameters = p.parseFunctionParameters()
	if p.Err != nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE, "Se esperaba `{`") {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{}
	stmt.Token = p.curToken

	stmt.Expr = p.parseExpression(LOWEST)
	if p.Err != nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{}
	block.Token = p.curToken

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && p.Err == nil {
		stmt := p.parseStatement()
		if p.Err != nil {
			return block
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if !p.curTokenIs(token.RBRACE) {
		p.fail("Se esperaba `}`")
		return block
	}
	return block
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.fail("No se esperaba el token `%s`", p.curToken.Literal)
		return nil
	}
	left := prefix()
	if p.Err != nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if p.Err != nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	v, err := parseInt(p.curToken.Literal)
	if err != nil {
		p.fail("Numero entero invalido: %s", p.curToken.Literal)
		return nil
	}
	lit.Value = v
	return lit
}

func parseInt(literal string) (int64, error) {
	switch {
	case len(literal) > 2 && literal[0] == '0' && (literal[1] == 'x' || literal[1] == 'X'):
		return strconv.ParseInt(literal[2:], 16, 64)
	case len(literal) > 2 && literal[0] == '0' && (literal[1] == 'o' || literal[1] == 'O'):
		return strconv.ParseInt(literal[2:], 8, 64)
	case len(literal) > 2 && literal[0] == '0' && (literal[1] == 'b' || literal[1] == 'B'):
		return strconv.ParseInt(literal[2:], 2, 64)
	default:
		return strconv.ParseInt(literal, 10, 64)
	}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := &ast.FloatLiteral{Token: p.curToken}
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.fail("Numero flotante invalido: %s", p.curToken.Literal)
		return nil
	}
	lit.Value = v
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.VERDAD)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if p.Err != nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, "Se esperaba `)`") {
		return nil
	}
	return expr
}

func (p *Parser) parseListLiteral() ast.Expression {
	lit := &ast.ListLiteral{Token: p.curToken}
	lit.Elements = p.parseExpressionList(token.RBRACKET)
	return lit
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	if p.Err != nil {
		return nil
	}

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(end) { // trailing comma
			p.nextToken()
			return list
		}
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
		if p.Err != nil {
			return nil
		}
	}

	closeMsg := "Se esperaba `)`"
	if end == token.RBRACKET {
		closeMsg = "Se esperaba `]`"
	}
	if !p.expectPeek(end, closeMsg) {
		return nil
	}
	return list
}

func (p *Parser) parseDictLiteral() ast.Expression {
	dict := &ast.DictLiteral{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		if p.curTokenIs(token.FN) {
			p.fail("No se puede usar una funcion como llave de diccionario")
			return nil
		}
		key := p.parseExpression(LOWEST)
		if p.Err != nil {
			return nil
		}

		if !p.expectPeek(token.COLON, "Se esperaba `:`") {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if p.Err != nil {
			return nil
		}

		dict.Keys = append(dict.Keys, key)
		dict.Values = append(dict.Values, value)

		if p.peekTokenIs(token.RBRACE) {
			break
		}
		if !p.expectPeek(token.COMMA, "Se esperaba `,`") {
			return nil
		}
		if p.peekTokenIs(token.RBRACE) { // trailing comma
			break
		}
	}

	if !p.expectPeek(token.RBRACE, "Se esperaba `}`") {
		return nil
	}
	return dict
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)
	if p.Err != nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE, "Se esperaba `{`") {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()
	if p.Err != nil {
		return nil
	}

	if p.peekTokenIs(token.SINO) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE, "Se esperaba `{`") {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseWhileExpression() ast.Expression {
	expr := &ast.WhileExpression{Token: p.curToken}

	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)
	if p.Err != nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE, "Se esperaba `{`") {
		return nil
	}
	expr.Body = p.parseBlockStatement()
	return expr
}

func (p *Parser) parseForRangeExpression() ast.Expression {
	expr := &ast.ForRangeExpression{Token: p.curToken}

	if !p.expectPeek(token.IDENT, "Se esperaba un identificador") {
		return nil
	}
	expr.Ident = p.curToken.Literal

	if !p.expectPeek(token.EN, "Se esperaba `en`") {
		return nil
	}
	if !p.expectPeek(token.RANGO, "Se esperaba `rango`") {
		return nil
	}
	if !p.expectPeek(token.LPAREN, "Se esperaba `(`") {
		return nil
	}

	expr.Args = p.parseExpressionList(token.RPAREN)
	if p.Err != nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE, "Se esperaba `{`") {
		return nil
	}
	expr.Body = p.parseBlockStatement()
	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN, "Se esperaba `(`") {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()
	if p.Err != nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE, "Se esperaba `{`") {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	var params []*ast.Identifier

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN, "Se esperaba `)`") {
		return nil
	}
	return params
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.curToken, Left: left, Operator: p.curToken.Literal}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Callee: callee}
	expr.Args = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if p.Err != nil {
		return nil
	}
	if !p.expectPeek(token.RBRACKET, "Se esperaba `]`") {
		return nil
	}
	return expr
}

func (p *Parser) parseMemberExpression(receiver ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Receiver: receiver}

	if !p.expectPeek(token.IDENT, "Se esperaba un identificador") {
		return nil
	}
	expr.Method = p.curToken.Literal

	if !p.expectPeek(token.LPAREN, "Se esperaba `(`") {
		return nil
	}
	expr.Args = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	switch left.(type) {
	case *ast.Identifier, *ast.IndexExpression:
	default:
		p.fail("Lado izquierdo de la asignacion invalido")
		return nil
	}

	expr := &ast.AssignmentExpression{Token: p.curToken, Target: left}
	p.nextToken()
	expr.Value = p.parseExpression(LOWEST)
	return expr
}

