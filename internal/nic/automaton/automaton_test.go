package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Verdicts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		accepted bool
	}{
		// Legacy format
		{"legacy male", "891234567V", true},
		{"legacy female", "851234567X", true},
		{"legacy year 00", "001234567X", true},
		{"legacy born 1939", "391234567V", true},
		{"legacy lowercase suffix", "891234567v", true},
		{"legacy surrounding whitespace", "  891234567V\t", true},

		// Modern format
		{"modern female", "199851234567", true},
		{"modern year 2000", "200012345678", true},
		{"modern born 1955", "195501234567", true},

		// Rejections
		{"too short", "123456V", false},
		{"eleven digits", "19981234567", false},
		{"modern leading 9", "900012345678", false},
		{"modern leading letter", "A99851234567", false},
		{"wrong suffix", "891234567A", false},
		{"letters in numeric body", "89AB123456V", false},
		{"legacy missing suffix", "891234567", false},
		{"empty input", "", false},
		{"whitespace only", "   ", false},
		{"thirteen digits", "1998512345678", false},
		{"way too long", strings.Repeat("1", 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(tt.input)
			assert.Equal(t, tt.accepted, res.Accepted)
			assert.Equal(t, tt.accepted, res.FinalState.Accepting())
		})
	}
}

func TestRun_SuffixCaseInsensitive(t *testing.T) {
	upper := Run("891234567V")
	lower := Run("891234567v")

	require.True(t, upper.Accepted)
	assert.Equal(t, upper, lower, "verdict must not depend on suffix case")

	upperX := Run("851234567X")
	lowerX := Run("851234567x")
	require.True(t, upperX.Accepted)
	assert.Equal(t, upperX, lowerX)
}

func TestRun_LegacyTrace(t *testing.T) {
	res := Run("891234567V")

	require.True(t, res.Accepted)
	assert.Equal(t, StateLegacySuffix, res.FinalState)
	assert.Equal(t, []State{
		StateStart,
		StateYear1, StateYear2,
		StateDay1, StateDay2, StateDay3,
		StateSerial1, StateSerial2,
		StateLegacySerial3, StateLegacySerial4,
		StateLegacySuffix,
	}, res.Trace)
}

func TestRun_ModernTrace(t *testing.T) {
	res := Run("199851234567")

	require.True(t, res.Accepted)
	assert.Equal(t, StateModernSerial5, res.FinalState)
	assert.Equal(t, []State{
		StateStart,
		StateYear1, StateYear2,
		StateDay1, StateDay2, StateDay3,
		StateSerial1, StateSerial2,
		StateModernSerial1, StateModernSerial2,
		StateModernSerial3, StateModernSerial4,
		StateModernSerial5,
	}, res.Trace)
}

func TestRun_EarlyStopOnReject(t *testing.T) {
	// 'A' at the third position diverges to the sink; nothing after it may
	// be consumed or traced.
	res := Run("89AB123456V")

	require.False(t, res.Accepted)
	assert.Equal(t, StateReject, res.FinalState)
	assert.Equal(t, []State{StateStart, StateYear1, StateYear2, StateReject}, res.Trace)
}

func TestRun_BranchRejections(t *testing.T) {
	t.Run("length neither 10 nor 12 dies at the branch", func(t *testing.T) {
		res := Run("19981234567") // 11 digits
		require.False(t, res.Accepted)
		// Seven digits reach the branch state; the eighth triggers the
		// length check and lands in the sink.
		assert.Equal(t, StateSerial2, res.Trace[7])
		assert.Equal(t, StateReject, res.Trace[8])
		assert.Len(t, res.Trace, 9)
	})

	t.Run("modern format requires leading 1 or 2", func(t *testing.T) {
		res := Run("900012345678")
		require.False(t, res.Accepted)
		assert.Equal(t, StateSerial2, res.Trace[7])
		assert.Equal(t, StateReject, res.Trace[8])
	})

	t.Run("nine digit legacy input exhausts before acceptance", func(t *testing.T) {
		res := Run("891234567")
		require.False(t, res.Accepted)
		assert.Equal(t, StateReject, res.FinalState)
	})
}

func TestRun_EmptyInput(t *testing.T) {
	res := Run("")

	assert.False(t, res.Accepted)
	assert.Equal(t, StateStart, res.FinalState)
	assert.Equal(t, []State{StateStart}, res.Trace)
}

func TestRun_TraceInvariants(t *testing.T) {
	inputs := []string{
		"891234567V", "199851234567", "", "x", "12", "891234567A",
		"900012345678", strings.Repeat("9", 30), "  199851234567  ",
	}

	for _, input := range inputs {
		res := Run(input)

		require.NotEmpty(t, res.Trace)
		assert.Equal(t, StateStart, res.Trace[0], "trace must begin at the start state")
		assert.LessOrEqual(t, len(res.Trace), len(strings.TrimSpace(input))+1)
		assert.Equal(t, res.FinalState, res.Trace[len(res.Trace)-1])

		for i, s := range res.Trace {
			if s == StateReject {
				assert.Equal(t, len(res.Trace)-1, i, "reject state must end the trace")
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	for _, input := range []string{"891234567V", "199851234567", "bogus", ""} {
		first := Run(input)
		second := Run(input)
		assert.Equal(t, first, second)
	}
}

func TestState_Labels(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "reject", StateReject.String())
	assert.Equal(t, "Legacy format: V/X suffix (accept)", StateLegacySuffix.Label())
	assert.Equal(t, "unknown", State(200).String())
}

func TestResult_TraceStrings(t *testing.T) {
	res := Run("12x")
	assert.Equal(t, []string{"start", "year_1", "year_2", "reject"}, res.TraceStrings())
}
