package interp

import (
	"regexp"
	"strconv"
	"strings"
)

// tokenClass identifies the category of a token, carrying the left-binding
// power used to drive the Pratt parser (§4.2).
type tokenClass struct {
	id    string
	human string
	lbp   int
}

func (c tokenClass) String() string { return c.id }

var (
	tcEOF        = tokenClass{id: "EOF", human: "end of input"}
	tcName       = tokenClass{id: "NAME", human: "identifier"}
	tcInteger    = tokenClass{id: "INTEGER", human: "integer literal"}
	tcFloat      = tokenClass{id: "FLOAT", human: "float literal"}
	tcString     = tokenClass{id: "STRING", human: "string literal"}
	tcFn         = tokenClass{id: "FN", human: "'fn'"}
	tcWhile      = tokenClass{id: "WHILE", human: "'while'"}
	tcLParen     = tokenClass{id: "LPAREN", human: "'('", lbp: 130}
	tcRParen     = tokenClass{id: "RPAREN", human: "')'"}
	tcLBracket   = tokenClass{id: "LBRACKET", human: "'['"}
	tcRBracket   = tokenClass{id: "RBRACKET", human: "']'"}
	tcLBrace     = tokenClass{id: "LBRACE", human: "'{'"}
	tcRBrace     = tokenClass{id: "RBRACE", human: "'}'"}
	tcComma      = tokenClass{id: "COMMA", human: "','"}
	tcColon      = tokenClass{id: "COLON", human: "':'"}
	tcSemi       = tokenClass{id: "SEMI", human: "';'"}
	tcDollar     = tokenClass{id: "DOLLAR", human: "'$'"}
	tcAssign     = tokenClass{id: "ASSIGN", human: "'='", lbp: 10}
	tcEq         = tokenClass{id: "EQ", human: "'=='", lbp: 20}
	tcNeq        = tokenClass{id: "NEQ", human: "'!='", lbp: 20}
	tcLt         = tokenClass{id: "LT", human: "'<'", lbp: 20}
	tcGt         = tokenClass{id: "GT", human: "'>'", lbp: 20}
	tcLte        = tokenClass{id: "LTE", human: "'<='", lbp: 20}
	tcGte        = tokenClass{id: "GTE", human: "'>='", lbp: 20}
	tcPlus       = tokenClass{id: "PLUS", human: "'+'", lbp: 30}
	tcMinus      = tokenClass{id: "MINUS", human: "'-'", lbp: 30}
	tcStar       = tokenClass{id: "STAR", human: "'*'", lbp: 40}
	tcSlash      = tokenClass{id: "SLASH", human: "'/'", lbp: 40}
	tcPercent    = tokenClass{id: "PERCENT", human: "'%'", lbp: 50}
	tcCaret      = tokenClass{id: "CARET", human: "'^'", lbp: 50}
)

var keywords = map[string]tokenClass{
	"fn":    tcFn,
	"while": tcWhile,
}

// matchRule is one regex alternative tried, in order, at the current lexer
// position. The first rule whose pattern matches at the start of the
// remaining input wins, so more specific rules (floats, multi-char
// operators) must precede their looser relatives. Keywords have no rules of
// their own: a NAME lexeme that is a keyword is given the keyword's class.
type matchRule struct {
	pattern *regexp.Regexp
	class   tokenClass
	skip    bool
}

func mustRule(pattern string, class tokenClass) matchRule {
	return matchRule{pattern: regexp.MustCompile(`^(?:` + pattern + `)`), class: class}
}

var matchRules = []matchRule{
	{pattern: regexp.MustCompile(`^//[^\n]*`), skip: true},
	{pattern: regexp.MustCompile(`(?s)^/\*.*?\*/`), skip: true},
	{pattern: regexp.MustCompile(`^[ \t\r\n]+`), skip: true},

	mustRule(`"[^"]*"`, tcString),
	mustRule(`\d+\.\d+`, tcFloat),
	mustRule(`\.\d+`, tcFloat),
	mustRule(`\d+`, tcInteger),

	mustRule(`[a-zA-Z_][a-zA-Z0-9_]*`, tcName),

	mustRule(`==`, tcEq),
	mustRule(`!=`, tcNeq),
	mustRule(`<=`, tcLte),
	mustRule(`>=`, tcGte),
	mustRule(`<`, tcLt),
	mustRule(`>`, tcGt),
	mustRule(`=`, tcAssign),
	mustRule(`\+`, tcPlus),
	mustRule(`-`, tcMinus),
	mustRule(`\*`, tcStar),
	mustRule(`/`, tcSlash),
	mustRule(`%`, tcPercent),
	mustRule(`\^`, tcCaret),
	mustRule(`\(`, tcLParen),
	mustRule(`\)`, tcRParen),
	mustRule(`\[`, tcLBracket),
	mustRule(`\]`, tcRBracket),
	mustRule(`\{`, tcLBrace),
	mustRule(`\}`, tcRBrace),
	mustRule(`,`, tcComma),
	mustRule(`:`, tcColon),
	mustRule(`;`, tcSemi),
	mustRule(`\$`, tcDollar),
}

// token is a single lexeme produced by the lexer, along with its source
// position for diagnostics.
type token struct {
	lexeme   string
	class    tokenClass
	pos      int
	line     int
	col      int
	fullLine string
}

// tokenStream is a cursor over a slice of tokens, always terminated by a
// tcEOF token so Peek never runs off the end.
type tokenStream struct {
	tokens []token
	cur    int
}

func (ts *tokenStream) Peek() token {
	if ts.cur >= len(ts.tokens) {
		return ts.tokens[len(ts.tokens)-1]
	}
	return ts.tokens[ts.cur]
}

func (ts *tokenStream) Next() token {
	t := ts.Peek()
	if ts.cur < len(ts.tokens) {
		ts.cur++
	}
	return t
}

// lex scans source into a tokenStream, or returns a SyntaxError if no rule
// matches at some position.
func lex(source string) (*tokenStream, error) {
	lines := strings.Split(source, "\n")

	var toks []token
	pos := 0
	line := 1
	col := 1

	for pos < len(source) {
		rest := source[pos:]

		matched := false
		for _, r := range matchRules {
			loc := r.pattern.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}
			lexeme := rest[:loc[1]]
			matched = true

			if !r.skip {
				class := r.class
				if class.id == "NAME" {
					if kw, ok := keywords[lexeme]; ok {
						class = kw
					}
				}
				toks = append(toks, token{
					lexeme:   lexeme,
					class:    class,
					pos:      pos,
					line:     line,
					col:      col,
					fullLine: safeLine(lines, line-1),
				})
			}

			newlines := strings.Count(lexeme, "\n")
			if newlines > 0 {
				line += newlines
				last := strings.LastIndexByte(lexeme, '\n')
				col = len(lexeme) - last
			} else {
				col += len(lexeme)
			}
			pos += loc[1]
			break
		}

		if !matched {
			return nil, &SyntaxError{
				sourceLine: safeLine(lines, line-1),
				source:     string(rest[0]),
				line:       line,
				pos:        col,
				message:    "unrecognized input " + strconv.Quote(string(rest[0])),
			}
		}
	}

	toks = append(toks, token{class: tcEOF, pos: pos, line: line, col: col, fullLine: safeLine(lines, line-1)})
	return &tokenStream{tokens: toks}, nil
}

func safeLine(lines []string, idx int) string {
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}
