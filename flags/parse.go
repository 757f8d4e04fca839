package flags

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Parser turns a command line into Args.
//
// Its state is fully determined by the flag definitions it was built from and never changes
// after construction, so one Parser can be built at startup and reused.
type Parser struct {
	// fmap holds every flag name (short, long and negated), pointing into info.
	fmap FlagMap
	info []FlagInfo
}

// NewParser builds a parser for Flags.
func NewParser() *Parser {
	return newParser(Flags)
}

func newParser(defs []*Flag) *Parser {
	info := make([]FlagInfo, 0, len(defs)*2)

	for _, flag := range defs {
		mustBeValidFlag(flag)

		info = append(info, FlagInfo{
			Flag: flag,
			Name: flag.Long,
			Kind: Standard,
		})

		if flag.Short != 0 {
			info = append(info, FlagInfo{
				Flag:    flag,
				Name:    string(flag.Short),
				IsShort: true,
				Kind:    Standard,
			})
		}

		if flag.Negated != "" {
			info = append(info, FlagInfo{
				Flag: flag,
				Name: flag.Negated,
				Kind: Negated,
			})
		}
	}

	return &Parser{fmap: NewFlagMap(info), info: info}
}

// Parse parses argv, which should not include the program name.
//
// If -h, --help, -v or --version shows up anywhere the result is Special, even when some other
// argument was invalid; help and version output never depend on the rest of the command line.
func (p *Parser) Parse(argv []string) ParseResult {
	var args Args

	special, err := p.parse(argv, &args)
	if special != SpecialNone {
		return specialResult(special)
	}
	if err != nil {
		return errResult(err)
	}

	return okResult(args)
}

func (p *Parser) parse(argv []string, args *Args) (SpecialMode, error) {
	lex := newLexer(argv)
	special := SpecialNone

	for {
		tok, ok, err := lex.next()
		if err != nil {
			return scanForSpecial(lex, special), errors.Wrap(err, "invalid CLI arguments")
		}
		if !ok {
			return special, nil
		}

		// -h/--help and -v/--version output differs between the short and long flag,
		// so they are handled here instead of going through the flag map.
		if mode, isSpecial := specialFor(tok); isSpecial {
			special = mode
			continue
		}

		if err := p.apply(lex, tok, args); err != nil {
			return scanForSpecial(lex, special), err
		}
	}
}

func (p *Parser) apply(lex *lexer, tok token, args *Args) error {
	var info *FlagInfo

	switch tok.kind {
	case tokenValue:
		if !utf8.ValidString(tok.text) {
			return markf(ErrInvalidText, "failed to convert argument %q to text", tok.text)
		}

		args.Positional = append(args.Positional, tok.text)
		return nil
	case tokenShort:
		found, ok := p.findShort(tok.short)
		if !ok {
			return markf(ErrUnrecognizedFlag, "unrecognized flag -%c", tok.short)
		}
		info = found
	case tokenLong:
		found, ok := p.findLong(tok.text)
		if !ok {
			return markf(ErrUnrecognizedFlag, "unrecognized flag --%s", tok.text)
		}
		info = found
	}

	var val FlagValue
	switch {
	case info.Kind == Negated:
		val = SwitchValue(false)
	case info.Flag.Switch:
		val = SwitchValue(true)
	default:
		raw, ok := lex.value()
		if !ok {
			return markf(ErrMissingValue, "missing value for flag %s", info)
		}
		val = TextValue(raw)
	}

	if err := info.Flag.Update(val, args); err != nil {
		return errors.Wrapf(err, "error parsing flag %s", info)
	}

	return nil
}

func (p *Parser) findShort(short rune) (*FlagInfo, bool) {
	if short > unicode.MaxASCII {
		return nil, false
	}

	index, ok := p.fmap.Find(string(byte(short)))
	if !ok {
		return nil, false
	}

	return &p.info[index], true
}

func (p *Parser) findLong(name string) (*FlagInfo, bool) {
	index, ok := p.fmap.Find(name)
	if !ok || p.info[index].IsShort {
		return nil, false
	}

	return &p.info[index], true
}

func specialFor(tok token) (SpecialMode, bool) {
	switch {
	case tok.kind == tokenShort && tok.short == 'h':
		return HelpShort, true
	case tok.kind == tokenShort && tok.short == 'v':
		return VersionShort, true
	case tok.kind == tokenLong && tok.text == "help":
		return HelpLong, true
	case tok.kind == tokenLong && tok.text == "version":
		return VersionLong, true
	default:
		return SpecialNone, false
	}
}

// scanForSpecial runs through the rest of the command line after an error, only looking for
// help and version flags.
func scanForSpecial(lex *lexer, special SpecialMode) SpecialMode {
	for {
		tok, ok, err := lex.next()
		if err != nil {
			continue
		}
		if !ok {
			return special
		}

		if mode, isSpecial := specialFor(tok); isSpecial {
			special = mode
		}
	}
}

var reservedNames = []string{"h", "v", "help", "version"}

func mustBeValidFlag(flag *Flag) {
	if flag.update == nil {
		panic(fmt.Sprintf("flag --%s has no update function", flag.Long))
	}

	if len(flag.Long) < 2 || !isASCII(flag.Long) {
		panic(fmt.Sprintf("flag long name %q must be at least 2 ASCII characters", flag.Long))
	}

	if flag.Short != 0 && !isASCIIAlphanumeric(flag.Short) {
		panic(fmt.Sprintf("flag --%s has a short name that is not ASCII alphanumeric: %q", flag.Long, flag.Short))
	}

	if flag.Negated != "" {
		if !flag.Switch {
			panic(fmt.Sprintf("flag --%s has a negation but is not a switch", flag.Long))
		}
		if len(flag.Negated) < 2 || !isASCII(flag.Negated) {
			panic(fmt.Sprintf("flag negated name %q must be at least 2 ASCII characters", flag.Negated))
		}
	}

	for _, reserved := range reservedNames {
		if flag.Long == reserved || flag.Negated == reserved || string(flag.Short) == reserved {
			panic(fmt.Sprintf("flag %s uses the reserved name %q", flag, reserved))
		}
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}

	return true
}

func isASCIIAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
