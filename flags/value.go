package flags

import "github.com/cockroachdb/errors"

type valueKind int

const (
	switchValue valueKind = iota
	textValue
	multiValue
)

// FlagValue is what the parser hands to a flag's update function.
// It is either a switch (on or off), a single user value, or a list of user values.
// No flag currently takes a list; the shape exists so one can be added without touching the parser.
type FlagValue struct {
	kind   valueKind
	on     bool
	text   string
	values []string
}

func SwitchValue(on bool) FlagValue {
	return FlagValue{kind: switchValue, on: on}
}

func TextValue(text string) FlagValue {
	return FlagValue{kind: textValue, text: text}
}

func MultiValue(values []string) FlagValue {
	return FlagValue{kind: multiValue, values: values}
}

func (v FlagValue) IsSwitch() bool {
	return v.kind == switchValue
}

// Switch returns the on/off state of a switch value.
// Asking a non-switch value for its state is a bug in the flag definition, not a user error.
func (v FlagValue) Switch() (bool, error) {
	if v.kind != switchValue {
		return false, errors.AssertionFailedf("got %s but expected a switch", v.kind)
	}

	return v.on, nil
}

func (v FlagValue) Value() (string, error) {
	if v.kind != textValue {
		return "", errors.AssertionFailedf("got %s but expected a flag value", v.kind)
	}

	return v.text, nil
}

func (v FlagValue) Values() ([]string, error) {
	if v.kind != multiValue {
		return nil, errors.AssertionFailedf("got %s but expected a list of flag values", v.kind)
	}

	return v.values, nil
}

func (k valueKind) String() string {
	switch k {
	case switchValue:
		return "switch"
	case textValue:
		return "flag value"
	case multiValue:
		return "list of flag values"
	default:
		return "unknown value"
	}
}
