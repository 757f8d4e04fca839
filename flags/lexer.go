package flags

import (
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenValue tokenKind = iota
	tokenShort
	tokenLong
)

type token struct {
	kind tokenKind
	// text is the long name without its dashes, or the whole value.
	text  string
	short rune
}

// lexer splits a command line into short flags, long flags and values.
//
// It understands -x, clustered shorts (-sl), values glued to a short (-npikachu, -n=pikachu),
// --name, --name=value and --. Everything after -- is a value, and so is a lone -.
type lexer struct {
	args []string
	pos  int

	// shorts is whatever is left of the current short cluster.
	shorts string
	// pending is the value glued to the last long flag with =.
	pending    string
	hasPending bool

	lastFlag string
	finished bool
}

func newLexer(args []string) *lexer {
	return &lexer{args: args}
}

// next returns the next token. ok is false once the command line is used up.
func (l *lexer) next() (tok token, ok bool, err error) {
	if l.hasPending {
		l.hasPending = false
		return token{}, false, markf(ErrUnexpectedValue, "unexpected value %q for flag %s", l.pending, l.lastFlag)
	}

	if l.shorts != "" {
		if strings.HasPrefix(l.shorts, "=") {
			value := l.shorts[1:]
			l.shorts = ""
			return token{}, false, markf(ErrUnexpectedValue, "unexpected value %q for flag %s", value, l.lastFlag)
		}

		r, size := utf8.DecodeRuneInString(l.shorts)
		l.shorts = l.shorts[size:]
		l.lastFlag = "-" + string(r)

		return token{kind: tokenShort, short: r}, true, nil
	}

	if l.pos >= len(l.args) {
		return token{}, false, nil
	}

	arg := l.args[l.pos]
	l.pos++

	switch {
	case l.finished:
		return token{kind: tokenValue, text: arg}, true, nil
	case arg == "--":
		l.finished = true
		return l.next()
	case strings.HasPrefix(arg, "--"):
		name, value, hasValue := strings.Cut(arg[2:], "=")
		if hasValue {
			l.pending = value
			l.hasPending = true
		}
		l.lastFlag = "--" + name

		return token{kind: tokenLong, text: name}, true, nil
	case strings.HasPrefix(arg, "-") && arg != "-":
		l.shorts = arg[1:]
		return l.next()
	default:
		return token{kind: tokenValue, text: arg}, true, nil
	}
}

// value takes the value for the flag just returned by next. That is the text glued to the flag
// if there is any, otherwise the whole next argument, whatever it looks like.
func (l *lexer) value() (string, bool) {
	if l.hasPending {
		l.hasPending = false
		return l.pending, true
	}

	if l.shorts != "" {
		value := strings.TrimPrefix(l.shorts, "=")
		l.shorts = ""
		return value, true
	}

	if l.pos < len(l.args) {
		value := l.args[l.pos]
		l.pos++
		return value, true
	}

	return "", false
}
