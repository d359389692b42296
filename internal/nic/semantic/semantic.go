// Package semantic applies the field-level checks the automaton's
// character-class transitions cannot express: day-of-year ranges, gender
// inference, and birth-year extraction.
//
// It is an independent second pass over the same string. It does not need
// the automaton's trace, only the raw input, and is safe to call standalone:
// it re-validates length itself and fails gracefully on anything malformed.
package semantic

import (
	"fmt"
	"strconv"

	"nicgate/pkg/domain"
)

// Reason is a structured rejection code. Callers branch on Reason, never on
// Message text.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonInvalidLength  Reason = "invalid_length"
	ReasonInvalidDay     Reason = "invalid_day"
	ReasonInvalidSuffix  Reason = "invalid_suffix"
	ReasonInvalidNumeric Reason = "invalid_numeric"
	ReasonDayOutOfRange  Reason = "day_out_of_range"
)

// Result is the outcome of a semantic check. On success it carries the
// decoded birth year, day of year (1-366, female offset already removed),
// and inferred gender.
type Result struct {
	Valid     bool
	Reason    Reason
	Message   string
	BirthYear int
	DayOfYear int
	Gender    domain.Gender
}

// legacyEpoch is added to the two-digit year of the 10-character format.
// The format has no century marker, so every legacy NIC decodes into the
// 1900s. Known limitation of the ID scheme itself, not of this checker.
const legacyEpoch = 1900

// femaleDayOffset is added to the day-of-year field to encode female gender.
const femaleDayOffset = 500

// Check decodes the fixed-width fields of a candidate NIC and validates
// their ranges. The input is normalized (trimmed, upper-cased) independently
// of the automaton.
func Check(input string) Result {
	nic := domain.Normalize(input)

	format, ok := domain.FormatForLength(len(nic))
	if !ok {
		return fail(ReasonInvalidLength, "invalid length: %d", len(nic))
	}

	if format == domain.FormatLegacy {
		return checkLegacy(nic)
	}
	return checkModern(nic)
}

func checkLegacy(nic string) Result {
	year, err := strconv.Atoi(nic[0:2])
	if err != nil {
		return fail(ReasonInvalidNumeric, "invalid numeric values")
	}
	day, err := strconv.Atoi(nic[2:5])
	if err != nil {
		return fail(ReasonInvalidNumeric, "invalid numeric values")
	}
	if day < 1 || day > 366 {
		return fail(ReasonInvalidDay, "invalid day: %d", day)
	}

	var gender domain.Gender
	switch nic[9] {
	case 'V':
		gender = domain.GenderMale
	case 'X':
		gender = domain.GenderFemale
	default:
		return fail(ReasonInvalidSuffix, "invalid suffix: %c", nic[9])
	}

	return succeed(legacyEpoch+year, day, gender)
}

func checkModern(nic string) Result {
	year, err := strconv.Atoi(nic[0:4])
	if err != nil {
		return fail(ReasonInvalidNumeric, "invalid numeric values")
	}
	day, err := strconv.Atoi(nic[4:7])
	if err != nil {
		return fail(ReasonInvalidNumeric, "invalid numeric values")
	}

	var gender domain.Gender
	switch {
	case day >= 1 && day <= 366:
		gender = domain.GenderMale
	case day >= femaleDayOffset+1 && day <= femaleDayOffset+366:
		gender = domain.GenderFemale
		day -= femaleDayOffset
	default:
		// Report the raw field so leading zeros survive in diagnostics.
		return fail(ReasonInvalidDay, "invalid day: %s", nic[4:7])
	}

	return succeed(year, day, gender)
}

func succeed(year, day int, gender domain.Gender) Result {
	// Unreachable after the branches above; kept as a guard so a future
	// change to the range checks cannot silently emit impossible days.
	if day > 366 {
		return fail(ReasonDayOutOfRange, "day out of range: %d", day)
	}
	return Result{
		Valid:     true,
		Message:   fmt.Sprintf("valid: year %d, day %d, gender %s", year, day, gender),
		BirthYear: year,
		DayOfYear: day,
		Gender:    gender,
	}
}

func fail(reason Reason, format string, args ...any) Result {
	return Result{
		Valid:   false,
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}
