// Package automaton implements the deterministic finite automaton that
// decides whether a string is lexically a Sri Lankan NIC number.
//
// Two layouts are recognized: the legacy 10-character form (9 digits plus a
// V/X suffix) and the modern 12-digit form. The automaton is almost a pure
// DFA; the single deviation is the branch state reached after seven digits,
// whose transition also consults the total normalized length and, for
// 12-digit inputs, the first character. Length is knowable up front, so the
// machine stays deterministic.
//
// The package is pure domain logic: no I/O, no clock, no shared state.
package automaton

import (
	"nicgate/pkg/domain"
)

// State is one node of the automaton. The zero value is the start state.
type State uint8

const (
	StateStart State = iota
	StateYear1
	StateYear2
	StateDay1
	StateDay2
	StateDay3
	StateSerial1
	// StateSerial2 is the branch point: the next transition depends on the
	// total input length (10 vs 12) and, for 12-digit inputs, on the first
	// character being '1' or '2'.
	StateSerial2
	StateLegacySerial3
	StateLegacySerial4
	// StateLegacySuffix is reached by a V or X after nine digits. Accepting.
	StateLegacySuffix
	StateModernSerial1
	StateModernSerial2
	StateModernSerial3
	StateModernSerial4
	// StateModernSerial5 is reached by the twelfth digit. Accepting.
	StateModernSerial5
	// StateReject is the absorbing sink; once entered, no input can leave it.
	StateReject
)

var stateNames = map[State]string{
	StateStart:         "start",
	StateYear1:         "year_1",
	StateYear2:         "year_2",
	StateDay1:          "day_1",
	StateDay2:          "day_2",
	StateDay3:          "day_3",
	StateSerial1:       "serial_1",
	StateSerial2:       "serial_2",
	StateLegacySerial3: "legacy_serial_3",
	StateLegacySerial4: "legacy_serial_4",
	StateLegacySuffix:  "legacy_suffix",
	StateModernSerial1: "modern_serial_1",
	StateModernSerial2: "modern_serial_2",
	StateModernSerial3: "modern_serial_3",
	StateModernSerial4: "modern_serial_4",
	StateModernSerial5: "modern_serial_5",
	StateReject:        "reject",
}

var stateLabels = map[State]string{
	StateStart:         "Start",
	StateYear1:         "Year digit 1",
	StateYear2:         "Year digit 2",
	StateDay1:          "Day digit 1",
	StateDay2:          "Day digit 2",
	StateDay3:          "Day digit 3",
	StateSerial1:       "Serial digit 1",
	StateSerial2:       "Serial digit 2 (format branch)",
	StateLegacySerial3: "Legacy format: serial digit 3",
	StateLegacySerial4: "Legacy format: serial digit 4",
	StateLegacySuffix:  "Legacy format: V/X suffix (accept)",
	StateModernSerial1: "Modern format: serial digit 1",
	StateModernSerial2: "Modern format: serial digit 2",
	StateModernSerial3: "Modern format: serial digit 3",
	StateModernSerial4: "Modern format: serial digit 4",
	StateModernSerial5: "Modern format: serial digit 5 (accept)",
	StateReject:        "Reject",
}

// String returns the short machine-readable state name used in traces.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label returns the diagnostic description of the state. Labels have no
// behavioral effect.
func (s State) Label() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Accepting reports whether the state is one of the two accept states.
func (s State) Accepting() bool {
	return s == StateLegacySuffix || s == StateModernSerial5
}

// Result is the verdict of one automaton run.
type Result struct {
	// Accepted is true iff the final state is accepting, which by
	// construction means the whole input was consumed and the last
	// character produced the accept transition.
	Accepted bool
	// Trace starts with the start state and records one state per consumed
	// character. It ends early once the reject state is entered.
	Trace []State
	// FinalState is the last entry of Trace.
	FinalState State
}

// TraceStrings renders the trace with machine-readable state names.
func (r Result) TraceStrings() []string {
	out := make([]string, len(r.Trace))
	for i, s := range r.Trace {
		out[i] = s.String()
	}
	return out
}

// Run drives the automaton over the input and returns the full verdict.
//
// The input is normalized (trimmed, upper-cased) before the first
// transition, so the V/X suffix is matched case-insensitively. Any string is
// a valid argument; rejection is the verdict, never an error.
func Run(input string) Result {
	nic := domain.Normalize(input)

	state := StateStart
	trace := make([]State, 1, len(nic)+1)
	trace[0] = state

	for i := 0; i < len(nic); i++ {
		state = next(state, nic[i], nic)
		trace = append(trace, state)
		if state == StateReject {
			// Absorbing: remaining characters cannot change the verdict.
			break
		}
	}

	return Result{
		Accepted:   state.Accepting(),
		Trace:      trace,
		FinalState: state,
	}
}

// next computes a single transition. nic is the whole normalized input; only
// the StateSerial2 branch reads anything beyond the current character.
func next(state State, c byte, nic string) State {
	switch state {
	case StateStart:
		return onDigit(c, StateYear1)
	case StateYear1:
		return onDigit(c, StateYear2)
	case StateYear2:
		return onDigit(c, StateDay1)
	case StateDay1:
		return onDigit(c, StateDay2)
	case StateDay2:
		return onDigit(c, StateDay3)
	case StateDay3:
		return onDigit(c, StateSerial1)
	case StateSerial1:
		return onDigit(c, StateSerial2)

	case StateSerial2:
		switch len(nic) {
		case 10:
			return onDigit(c, StateLegacySerial3)
		case 12:
			if nic[0] != '1' && nic[0] != '2' {
				return StateReject
			}
			return onDigit(c, StateModernSerial1)
		default:
			return StateReject
		}

	case StateLegacySerial3:
		return onDigit(c, StateLegacySerial4)
	case StateLegacySerial4:
		if c == 'V' || c == 'X' {
			return StateLegacySuffix
		}
		return StateReject

	case StateModernSerial1:
		return onDigit(c, StateModernSerial2)
	case StateModernSerial2:
		return onDigit(c, StateModernSerial3)
	case StateModernSerial3:
		return onDigit(c, StateModernSerial4)
	case StateModernSerial4:
		return onDigit(c, StateModernSerial5)

	default:
		// Accept states have no outgoing edges; anything after acceptance,
		// and any unhandled state, falls into the sink.
		return StateReject
	}
}

func onDigit(c byte, then State) State {
	if c >= '0' && c <= '9' {
		return then
	}
	return StateReject
}
