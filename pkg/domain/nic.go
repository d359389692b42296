// Package domain holds shared value objects for the NIC gateway.
//
// Parsing happens at trust boundaries (HTTP handlers, store keys) so the rest
// of the codebase can pass typed values around without re-validating.
package domain

import (
	"strings"

	dErrors "nicgate/pkg/domain-errors"
)

// Gender inferred from the day-of-year field of a NIC.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the gender is one of the supported enum values.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// String returns the string representation.
func (g Gender) String() string {
	return string(g)
}

// Format identifies which of the two NIC layouts a value uses.
type Format string

const (
	// FormatLegacy is the 10-character layout: 9 digits plus a V/X suffix.
	FormatLegacy Format = "legacy"
	// FormatModern is the 12-digit layout introduced in 2016.
	FormatModern Format = "modern"
)

// IsValid checks if the format is one of the supported enum values.
func (f Format) IsValid() bool {
	return f == FormatLegacy || f == FormatModern
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// FormatForLength maps a normalized input length to its NIC format.
// The second return is false for lengths that match neither layout.
func FormatForLength(n int) (Format, bool) {
	switch n {
	case 10:
		return FormatLegacy, true
	case 12:
		return FormatModern, true
	default:
		return "", false
	}
}

// maxNICInput bounds raw input accepted at trust boundaries. Any real NIC is
// 10 or 12 characters; the cap only exists to reject abusive payloads before
// they reach stores or logs.
const maxNICInput = 64

// NIC is a normalized (trimmed, upper-cased) candidate NIC string.
//
// A NIC value is well-formed in length and character class but not
// necessarily accepted by the automaton; it is the type used for store keys
// and lookups, where "some 10/12-character alphanumeric string" is the
// contract.
type NIC struct {
	value string
}

// Normalize applies the canonical normalization shared by the automaton and
// the semantic checker: surrounding whitespace is trimmed and letters are
// upper-cased. It never fails; use ParseNIC to enforce shape.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ParseNIC normalizes raw input and enforces the lexical shape required for
// a store key: length 10 or 12, digits everywhere except an optional V/X
// suffix on 10-character values.
func ParseNIC(raw string) (NIC, error) {
	if len(raw) > maxNICInput {
		return NIC{}, dErrors.New(dErrors.CodeInvalidInput, "nic input too long")
	}
	v := Normalize(raw)
	if _, ok := FormatForLength(len(v)); !ok {
		return NIC{}, dErrors.New(dErrors.CodeInvalidInput, "nic must be 10 or 12 characters")
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if len(v) == 10 && i == 9 && (c == 'V' || c == 'X') {
			continue
		}
		return NIC{}, dErrors.New(dErrors.CodeInvalidInput, "nic contains invalid characters")
	}
	return NIC{value: v}, nil
}

// String returns the normalized NIC value.
func (n NIC) String() string {
	return n.value
}

// IsZero reports whether the NIC is the zero value (never produced by a
// successful ParseNIC).
func (n NIC) IsZero() bool {
	return n.value == ""
}

// Format returns the layout implied by the NIC's length.
func (n NIC) Format() Format {
	f, _ := FormatForLength(len(n.value))
	return f
}
