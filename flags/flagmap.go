package flags

import "fmt"

// FlagInfoKind is the kind of name that was matched for a flag.
type FlagInfoKind int

const (
	// Standard is a flag's short or long name, e.g. -n or --name.
	Standard FlagInfoKind = iota
	// Negated is a flag's negation, e.g. --no-title.
	Negated
)

func (k FlagInfoKind) String() string {
	if k == Negated {
		return "negated"
	}

	return "standard"
}

// FlagInfo ties one name in the FlagMap to the flag it belongs to.
type FlagInfo struct {
	Flag *Flag
	// Name is the exact name stored in the FlagMap. Short names are a single byte.
	Name    string
	IsShort bool
	Kind    FlagInfoKind
}

func (i FlagInfo) String() string {
	if i.Kind == Negated {
		return "--" + i.Name
	}

	return i.Flag.String()
}

// FlagMap maps every flag name (short, long and negated) to its index in a FlagInfo slice.
type FlagMap struct {
	names map[string]int
}

// NewFlagMap builds the map for infos. The index of each info is its ID.
//
// Two infos sharing a name is a mistake in the flag definitions, so this panics instead of
// returning an error.
func NewFlagMap(infos []FlagInfo) FlagMap {
	names := make(map[string]int, len(infos))

	for index, info := range infos {
		if previous, exists := names[info.Name]; exists {
			panic(fmt.Sprintf("flag name %q is used by both %s and %s", info.Name, infos[previous], info))
		}

		names[info.Name] = index
	}

	return FlagMap{names: names}
}

// Find looks up an exact name. There is no prefix matching.
func (m FlagMap) Find(name string) (int, bool) {
	index, ok := m.names[name]
	return index, ok
}

func (m FlagMap) Len() int {
	return len(m.names)
}
