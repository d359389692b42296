//go:build go1.18

package automaton

import (
	"strings"
	"testing"
)

// FuzzRun verifies the automaton never panics and its trace invariants hold
// for arbitrary input. Rejection is the only failure mode the contract
// allows.
func FuzzRun(f *testing.F) {
	f.Add("891234567V")
	f.Add("851234567x")
	f.Add("199851234567")
	f.Add("900012345678")
	f.Add("")
	f.Add("   ")
	f.Add("89AB123456V")
	f.Add(strings.Repeat("1", 100))
	f.Add(string([]byte{0x00, 0xff, 0x30}))

	f.Fuzz(func(t *testing.T, input string) {
		res := Run(input)

		if len(res.Trace) == 0 || res.Trace[0] != StateStart {
			t.Fatal("trace must begin at the start state")
		}
		normalized := strings.ToUpper(strings.TrimSpace(input))
		if len(res.Trace) > len(normalized)+1 {
			t.Fatalf("trace longer than input+1: %d > %d", len(res.Trace), len(normalized)+1)
		}
		if res.FinalState != res.Trace[len(res.Trace)-1] {
			t.Fatal("final state must equal the last trace entry")
		}
		if res.Accepted {
			if !res.FinalState.Accepting() {
				t.Fatal("accepted result with non-accepting final state")
			}
			// Acceptance requires the whole input to have been consumed.
			if len(res.Trace) != len(normalized)+1 {
				t.Fatal("accepted result without consuming all input")
			}
		}
		for i, s := range res.Trace {
			if s == StateReject && i != len(res.Trace)-1 {
				t.Fatal("states appended after the reject state")
			}
		}

		// Determinism.
		again := Run(input)
		if again.FinalState != res.FinalState || again.Accepted != res.Accepted {
			t.Fatal("repeated runs disagree")
		}
	})
}
