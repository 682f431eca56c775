package css

import (
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Linter looks for fragments which render into selector text a browser would
// not accept the way caller most likely intended. It only inspects selectors
// produced by this program, it is not a general CSS validator.
type Linter struct {
	log *zap.Logger
}

// NewLinter creates a new selector linter.
func NewLinter(log *zap.Logger) *Linter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Linter{log: log.Named("css-lint")}
}

// Lint tokenizes rendered selector and returns warnings, nil if none.
func (l *Linter) Lint(selector string) []string {
	if strings.TrimSpace(selector) == "" {
		return []string{"empty selector"}
	}

	var (
		warnings []string
		brackets int // [ ] depth
		parens   int // ( ) depth, functions included

		prev     css.TokenType // last token other than whitespace
		needName string        // prefix waiting for a name, "." or ":"
	)
	warn := func(msg string) {
		for _, w := range warnings {
			if w == msg {
				return
			}
		}
		warnings = append(warnings, msg)
	}

	lexer := css.NewLexer(parse.NewInputString(selector))
	for {
		tt, data := lexer.Next()
		last := prev
		if tt != css.WhitespaceToken {
			prev = tt
		}
		if needName != "" {
			switch {
			case tt == css.IdentToken || tt == css.FunctionToken:
				needName = ""
			case tt == css.ColonToken && last == css.ColonToken && needName == ":":
				// pseudo-element, name is still expected
			default:
				warn("empty fragment: " + needName)
				needName = ""
			}
		}

		switch tt {
		case css.ErrorToken:
			if brackets != 0 {
				warn("unbalanced attribute brackets")
			}
			if parens != 0 {
				warn("unbalanced parentheses")
			}
			if len(warnings) > 0 {
				l.log.Debug("Selector has problems", zap.String("selector", selector), zap.Strings("warnings", warnings))
			}
			return warnings

		case css.LeftBracketToken:
			brackets++
		case css.RightBracketToken:
			if last == css.LeftBracketToken {
				warn("empty fragment: []")
			}
			if brackets == 0 {
				warn("unbalanced attribute brackets")
				continue
			}
			brackets--
		case css.FunctionToken, css.LeftParenthesisToken:
			parens++
		case css.RightParenthesisToken:
			if parens == 0 {
				warn("unbalanced parentheses")
				continue
			}
			parens--

		case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken:
			warn("declaration block syntax inside selector: " + string(data))
		case css.CommaToken:
			if parens == 0 {
				warn("comma makes selector a selector list")
			}
		case css.CommentToken:
			warn("comment inside selector")
		case css.BadStringToken, css.BadURLToken:
			warn("malformed string: " + string(data))

		case css.DelimToken:
			switch string(data) {
			case ".":
				needName = "."
			case "#":
				warn("empty fragment: #")
			}
		case css.ColonToken:
			if needName == "" {
				needName = ":"
			}
		case css.HashToken:
			// #1x is a valid hash token but not a valid id selector
			if len(data) > 1 && !isNameStart(rune(data[1])) {
				warn("id is not an identifier: " + string(data))
			}
		case css.NumberToken, css.DimensionToken, css.PercentageToken:
			if brackets == 0 && parens == 0 {
				warn("name starts with a digit: " + string(data))
			}
		}
	}
}

func isNameStart(r rune) bool {
	return r == '_' || r == '-' || r == '\\' || r > unicode.MaxASCII || unicode.IsLetter(r)
}
