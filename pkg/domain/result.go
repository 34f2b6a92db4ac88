package domain

import "time"

// Verdict strings, as printed at the end of a trace.
const (
	VerdictAccept = "accept"
	VerdictReject = "reject"
)

// UnknownSymbolPolicy decides what happens to input symbols outside the alphabet.
type UnknownSymbolPolicy string

const (
	// PolicyStrict fails the run with an *UnknownSymbolError before simulating.
	PolicyStrict UnknownSymbolPolicy = "strict"
	// PolicyLenient lets the symbol match nothing, emptying the active set.
	PolicyLenient UnknownSymbolPolicy = "lenient"
)

// ParsePolicy maps a configuration string to a policy. Empty means PolicyStrict.
func ParsePolicy(s string) (UnknownSymbolPolicy, bool) {
	switch UnknownSymbolPolicy(s) {
	case "", PolicyStrict:
		return PolicyStrict, true
	case PolicyLenient:
		return PolicyLenient, true
	}
	return "", false
}

// Snapshot is the active state set right after consuming Symbol.
type Snapshot struct {
	Symbol string
	Active StateSet
}

// Result is the outcome of running one input sequence.
type Result struct {
	Accepted bool
	// Trace holds one snapshot per consumed symbol, in input order.
	Trace []Snapshot
	// Final is the active set once every symbol was consumed.
	Final StateSet
}

// Verdict returns "accept" or "reject".
func (r *Result) Verdict() string {
	if r.Accepted {
		return VerdictAccept
	}
	return VerdictReject
}

// RunRecord is a finished run as kept by a RunStore.
type RunRecord struct {
	ID        string     `json:"id"`
	Automaton string     `json:"automaton"`
	Input     []string   `json:"input"`
	Verdict   string     `json:"verdict"`
	Trace     [][]string `json:"trace"` // each row: symbol followed by one "0"/"1" per state
	States    []string   `json:"states"`
	CreatedAt time.Time  `json:"created_at"`

	// Sealed holds the encrypted record when the store encrypts at rest;
	// Input, Trace and States are then empty.
	Sealed string `json:"sealed,omitempty"`
}
