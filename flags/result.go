package flags

type ResultKind int

const (
	ResultOk ResultKind = iota
	ResultErr
	ResultSpecial
)

// ParseResult is the outcome of parsing a command line. Exactly one of Args, Err and Special
// is meaningful, as told by Kind.
type ParseResult struct {
	Kind    ResultKind
	Args    Args
	Err     error
	Special SpecialMode
}

func okResult(args Args) ParseResult {
	return ParseResult{Kind: ResultOk, Args: args}
}

func errResult(err error) ParseResult {
	return ParseResult{Kind: ResultErr, Err: err}
}

func specialResult(mode SpecialMode) ParseResult {
	return ParseResult{Kind: ResultSpecial, Special: mode}
}
