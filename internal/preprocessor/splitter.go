package preprocessor

import (
	"strings"
	"unicode"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// terminator closes a general statement.
const terminator = ';'

// Statement is one extracted unit of work.
type Statement struct {
	Text      string
	Kind      hivescript.StatementKind
	StartLine int // first physical line that contributed text (1-based)
	EndLine   int // last physical line that contributed text (1-based)
}

// quoteState is the splitter's position relative to string literals.
type quoteState int

const (
	stateNormal quoteState = iota
	stateSingleQuote
	stateDoubleQuote
)

// StatementSplitter assembles statements from filtered, substituted lines.
// A StatementSplitter is read-only after construction and safe for concurrent use.
type StatementSplitter struct {
	directives *DirectiveTable
}

// NewStatementSplitter creates a splitter. A nil table selects DefaultDirectiveTable.
func NewStatementSplitter(directives *DirectiveTable) *StatementSplitter {
	if directives == nil {
		directives = DefaultDirectiveTable()
	}
	return &StatementSplitter{directives: directives}
}

// Split walks lines in order and returns the statements they form.
//
// Rules, in priority order:
//   - A directive line outside a quoted literal is emitted on its own,
//     verbatim, minus trailing terminators. An unterminated statement in
//     progress is closed first and emitted as is.
//   - Any other line is appended to the statement in progress. A line break
//     becomes a single space; indentation is kept. The statement closes at each
//     terminator outside a quoted literal. Quote state carries across lines.
//   - A non-blank remainder at end of input is emitted without a terminator.
//
// Split never fails and never emits an empty statement.
func (s *StatementSplitter) Split(lines []Line) []Statement {
	var (
		statements []Statement
		buf        strings.Builder
		state      = stateNormal
		escaped    bool
		startLine  int
		lastLine   int
	)

	write := func(segment string, number int) {
		if strings.TrimSpace(segment) != "" {
			if startLine == 0 {
				startLine = number
			}
			lastLine = number
		}
		buf.WriteString(segment)
	}

	flush := func(endLine int) {
		text := strings.TrimSpace(buf.String())
		if text != "" {
			statements = append(statements, Statement{
				Text:      text,
				Kind:      hivescript.StatementGeneral,
				StartLine: startLine,
				EndLine:   endLine,
			})
		}
		buf.Reset()
		startLine = 0
	}

	for _, line := range lines {
		blankLine := strings.TrimSpace(line.Text) == ""

		if state == stateNormal {
			if blankLine {
				continue
			}
			if s.directives.Match(line.Text) {
				flush(lastLine)
				statements = append(statements, directiveStatement(line))
				continue
			}
		}

		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}

		text := line.Text
		segStart := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			switch state {
			case stateNormal:
				switch c {
				case '\'':
					state = stateSingleQuote
				case '"':
					state = stateDoubleQuote
				case terminator:
					write(text[segStart:i], line.Number)
					flush(line.Number)
					segStart = i + 1
				}
			case stateSingleQuote, stateDoubleQuote:
				if escaped {
					escaped = false
					continue
				}
				switch {
				case c == '\\':
					escaped = true
				case c == '\'' && state == stateSingleQuote,
					c == '"' && state == stateDoubleQuote:
					state = stateNormal
				}
			}
		}
		write(text[segStart:], line.Number)
	}

	flush(lastLine)
	return statements
}

func directiveStatement(line Line) Statement {
	text := strings.TrimRightFunc(line.Text, func(r rune) bool {
		return r == terminator || unicode.IsSpace(r)
	})
	return Statement{
		Text:      strings.TrimSpace(text),
		Kind:      hivescript.StatementDirective,
		StartLine: line.Number,
		EndLine:   line.Number,
	}
}
