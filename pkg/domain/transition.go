package domain

// DefaultEpsilon is the reserved symbol labelling epsilon transitions
// when a Definition does not name its own marker.
const DefaultEpsilon = "e"

// Transition is an edge of the automaton, expressed with state labels.
type Transition struct {
	From   string `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
}

// Definition is the already-parsed description of an automaton.
// It is what loaders produce and what NewAutomaton validates.
type Definition struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Alphabet    []string     `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	States      []string     `json:"states" yaml:"states" mapstructure:"states"`
	Start       string       `json:"start" yaml:"start" mapstructure:"start"`
	Accept      []string     `json:"accept" yaml:"accept" mapstructure:"accept"`
	Transitions []Transition `json:"transitions" yaml:"transitions" mapstructure:"transitions"`

	// Epsilon overrides the reserved epsilon marker. Empty means DefaultEpsilon.
	Epsilon string `json:"epsilon,omitempty" yaml:"epsilon,omitempty" mapstructure:"epsilon"`

	// Inputs are words to run against the automaton, already split into symbols.
	Inputs [][]string `json:"inputs,omitempty" yaml:"inputs,omitempty" mapstructure:"inputs"`
}

// EpsilonMarker returns the marker in effect for this definition.
func (d Definition) EpsilonMarker() string {
	if d.Epsilon == "" {
		return DefaultEpsilon
	}
	return d.Epsilon
}

// Clone returns a deep copy of d.
func (d Definition) Clone() Definition {
	c := d
	c.Alphabet = append([]string(nil), d.Alphabet...)
	c.States = append([]string(nil), d.States...)
	c.Accept = append([]string(nil), d.Accept...)
	c.Transitions = append([]Transition(nil), d.Transitions...)
	if d.Inputs != nil {
		c.Inputs = make([][]string, len(d.Inputs))
		for i, w := range d.Inputs {
			c.Inputs[i] = append([]string(nil), w...)
		}
	}
	return c
}
