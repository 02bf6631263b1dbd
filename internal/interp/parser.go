package interp

// parseExpr is the Pratt parser driver: it parses one expression bound by
// rbp, the minimum left-binding-power a following operator must have to be
// absorbed into this expression rather than returned to an enclosing call.
func parseExpr(p *tokenStream, rbp int) (*Node, error) {
	t := p.Next()
	left, err := t.nud(p)
	if err != nil {
		return nil, err
	}

	for rbp < p.Peek().class.lbp {
		t = p.Next()
		left, err = t.led(left, p)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parseVecLiteral parses `$[` arg_list `]`: a vector literal whose elements
// are evaluated left-to-right at eval time (§4.2). The leading '$' has
// already been consumed by the caller.
func parseVecLiteral(p *tokenStream) (*Node, error) {
	if open := p.Next(); open.class != tcLBracket {
		return nil, syntaxErrorFromToken("expected '[' after '$'", open)
	}
	var elems []*Node
	if p.Peek().class != tcRBracket {
		for {
			e, err := parseExpr(p, 0)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if p.Peek().class != tcComma {
				break
			}
			p.Next()
		}
	}
	if next := p.Next(); next.class != tcRBracket {
		return nil, syntaxErrorFromToken("expected ']' to close '$['", next)
	}
	return vecNode(elems), nil
}

// parseExprListBlock parses `[` expr_list `]`: a sequence of ';'-separated
// (and optionally terminated) sub-expressions, evaluated in order and yielding the
// last (or Nil if empty). The leading '[' has already been consumed.
func parseExprListBlock(p *tokenStream) (*Node, error) {
	var children []*Node
	for p.Peek().class != tcRBracket {
		e, err := parseExpr(p, 0)
		if err != nil {
			return nil, err
		}
		children = append(children, e)
		if p.Peek().class == tcSemi {
			p.Next()
			continue
		}
		break
	}
	if next := p.Next(); next.class != tcRBracket {
		return nil, syntaxErrorFromToken("expected ']' to close '['", next)
	}
	return exprListNode(children), nil
}

// parseConditionalBlock parses `{` conditional `}` (§4.2):
//
//	conditional := expr ':' expr ',' conditional
//	             | expr ':' expr
//	             | expr
//	             | ε
//
// The leading '{' has already been consumed.
func parseConditionalBlock(p *tokenStream) (*Node, error) {
	cond, err := parseConditional(p)
	if err != nil {
		return nil, err
	}
	if next := p.Next(); next.class != tcRBrace {
		return nil, syntaxErrorFromToken("expected '}' to close '{'", next)
	}
	return cond, nil
}

// parseConditional parses the conditional grammar body (without the
// enclosing braces), recursing on the ',' continuation to build a chain of
// NodeIf nodes.
func parseConditional(p *tokenStream) (*Node, error) {
	if p.Peek().class == tcRBrace {
		return litNode(Nil), nil
	}

	cond, err := parseExpr(p, 0)
	if err != nil {
		return nil, err
	}

	if p.Peek().class != tcColon {
		// bare expr in tail position: the else-branch value itself.
		return cond, nil
	}
	p.Next() // consume ':'

	then, err := parseExpr(p, 0)
	if err != nil {
		return nil, err
	}

	if p.Peek().class != tcComma {
		return ifNode(cond, then, nil), nil
	}
	p.Next() // consume ','

	els, err := parseConditional(p)
	if err != nil {
		return nil, err
	}
	return ifNode(cond, then, els), nil
}

// parseFunDef parses `fn NAME ( params... ) body`.
func parseFunDef(p *tokenStream) (*Node, error) {
	name := p.Next()
	if name.class != tcName {
		return nil, syntaxErrorFromToken("expected function name after 'fn'", name)
	}
	if open := p.Next(); open.class != tcLParen {
		return nil, syntaxErrorFromToken("expected '(' after function name", open)
	}

	var params []string
	if p.Peek().class != tcRParen {
		for {
			pn := p.Next()
			if pn.class != tcName {
				return nil, syntaxErrorFromToken("expected parameter name", pn)
			}
			params = append(params, pn.lexeme)
			if p.Peek().class != tcComma {
				break
			}
			p.Next()
		}
	}
	if close := p.Next(); close.class != tcRParen {
		return nil, syntaxErrorFromToken("expected ')' to close parameter list", close)
	}

	body, err := parseExpr(p, 0)
	if err != nil {
		return nil, err
	}

	return funDefNode(name.lexeme, params, body), nil
}

// parseWhile parses `while expr ':' expr` (§4.2). The leading 'while' has
// already been consumed.
func parseWhile(p *tokenStream) (*Node, error) {
	cond, err := parseExpr(p, 0)
	if err != nil {
		return nil, err
	}
	if colon := p.Next(); colon.class != tcColon {
		return nil, syntaxErrorFromToken("expected ':' after while condition", colon)
	}
	body, err := parseExpr(p, 0)
	if err != nil {
		return nil, err
	}
	return whileNode(cond, body), nil
}

// Parse lexes and parses source into a sequence of top-level expressions,
// the forklang program (§4.2). Top-level expressions are separated (and
// optionally terminated) by ';'.
func Parse(source string) ([]*Node, error) {
	ts, err := lex(source)
	if err != nil {
		return nil, err
	}

	var program []*Node
	for ts.Peek().class != tcEOF {
		e, err := parseExpr(ts, 0)
		if err != nil {
			return nil, err
		}
		program = append(program, e)

		if ts.Peek().class == tcSemi {
			ts.Next()
		} else if ts.Peek().class != tcEOF {
			return nil, syntaxErrorFromToken("expected ';' between top-level expressions", ts.Peek())
		}
	}

	return program, nil
}
