package interp

import (
	"math/big"
	"strings"
)

// nud is the null denotation of lex: how it behaves at the start of an
// expression, before anything has been parsed to its left. Returning a nil
// error with a nil node is never valid; every token that can legally start
// an expression must produce a node here or report a SyntaxError.
func (lex token) nud(p *tokenStream) (*Node, error) {
	switch lex.class {
	case tcInteger:
		n := new(big.Int)
		n.SetString(lex.lexeme, 10)
		return litNode(Value{kind: KindInteger, i: n}), nil
	case tcFloat:
		f := zeroFloat()
		f.Parse(lex.lexeme, 10)
		return litNode(Value{kind: KindFloat, f: f}), nil
	case tcString:
		return litNode(NewString(strings.Trim(lex.lexeme, `"`))), nil
	case tcName:
		return getNode(lex.lexeme), nil
	case tcLParen:
		expr, err := parseExpr(p, 0)
		if err != nil {
			return nil, err
		}
		if next := p.Next(); next.class != tcRParen {
			return nil, syntaxErrorFromToken("expected ')' to close '('", next)
		}
		return expr, nil
	case tcDollar:
		return parseVecLiteral(p)
	case tcLBracket:
		return parseExprListBlock(p)
	case tcLBrace:
		return parseConditionalBlock(p)
	case tcFn:
		return parseFunDef(p)
	case tcWhile:
		return parseWhile(p)
	default:
		return nil, syntaxErrorFromToken("expected an expression here, found "+lex.class.human, lex)
	}
}

// led is the left denotation of lex: how it continues an expression whose
// left-hand side, left, has already been parsed. Binary operators and
// postfix call syntax are led-driven.
func (lex token) led(left *Node, p *tokenStream) (*Node, error) {
	switch lex.class {
	case tcAssign:
		if left.Kind != NodeGet {
			return nil, syntaxErrorFromToken("left side of '=' must be a name", lex)
		}
		right, err := parseExpr(p, lex.class.lbp-1)
		if err != nil {
			return nil, err
		}
		return setNode(left.Name, right), nil
	case tcEq, tcNeq, tcLt, tcGt, tcLte, tcGte, tcPlus, tcMinus, tcStar, tcSlash, tcPercent, tcCaret:
		right, err := parseExpr(p, lex.class.lbp)
		if err != nil {
			return nil, err
		}
		return forkNode(opSymbol(lex.class), left, right), nil
	case tcLParen:
		if left.Kind != NodeGet {
			return nil, syntaxErrorFromToken("'(' must follow a function name", lex)
		}
		var args []*Node
		if p.Peek().class != tcRParen {
			for {
				a, err := parseExpr(p, 0)
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.Peek().class != tcComma {
					break
				}
				p.Next()
			}
		}
		if next := p.Next(); next.class != tcRParen {
			return nil, syntaxErrorFromToken("expected ')' to close call", next)
		}
		return callNode(left.Name, args), nil
	default:
		return nil, syntaxErrorFromToken("unexpected "+lex.class.human, lex)
	}
}

func opSymbol(c tokenClass) string {
	switch c {
	case tcEq:
		return "=="
	case tcNeq:
		return "!="
	case tcLt:
		return "<"
	case tcGt:
		return ">"
	case tcLte:
		return "<="
	case tcGte:
		return ">="
	case tcPlus:
		return "+"
	case tcMinus:
		return "-"
	case tcStar:
		return "*"
	case tcSlash:
		return "/"
	case tcPercent:
		return "%"
	case tcCaret:
		return "^"
	default:
		panic("not an operator token class")
	}
}
