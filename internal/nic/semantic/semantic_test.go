package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicgate/pkg/domain"
)

func TestCheck_Legacy(t *testing.T) {
	t.Run("male suffix V", func(t *testing.T) {
		res := Check("891234567V")
		require.True(t, res.Valid)
		assert.Equal(t, 1989, res.BirthYear)
		assert.Equal(t, 123, res.DayOfYear)
		assert.Equal(t, domain.GenderMale, res.Gender)
		assert.Equal(t, ReasonNone, res.Reason)
	})

	t.Run("female suffix X", func(t *testing.T) {
		res := Check("851234567X")
		require.True(t, res.Valid)
		assert.Equal(t, 1985, res.BirthYear)
		assert.Equal(t, 123, res.DayOfYear)
		assert.Equal(t, domain.GenderFemale, res.Gender)
	})

	t.Run("year 00 decodes to epoch", func(t *testing.T) {
		res := Check("001234567X")
		require.True(t, res.Valid)
		assert.Equal(t, 1900, res.BirthYear)
	})

	t.Run("lowercase suffix normalized", func(t *testing.T) {
		res := Check("891234567v")
		require.True(t, res.Valid)
		assert.Equal(t, domain.GenderMale, res.Gender)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		res := Check("  851234567X ")
		require.True(t, res.Valid)
		assert.Equal(t, domain.GenderFemale, res.Gender)
	})

	t.Run("day upper bound", func(t *testing.T) {
		res := Check("893661234V") // day field 366
		require.True(t, res.Valid)
		assert.Equal(t, 366, res.DayOfYear)
		assert.Equal(t, domain.GenderMale, res.Gender)
	})

	t.Run("day just above upper bound", func(t *testing.T) {
		res := Check("893671234V") // day field 367
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidDay, res.Reason)
		assert.Equal(t, "invalid day: 367", res.Message)
	})

	t.Run("day out of range", func(t *testing.T) {
		res := Check("899012345V") // day field 901
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidDay, res.Reason)
		assert.Equal(t, "invalid day: 901", res.Message)
	})

	t.Run("day zero", func(t *testing.T) {
		res := Check("890001234V") // day field 000
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidDay, res.Reason)
	})

	t.Run("invalid suffix", func(t *testing.T) {
		res := Check("891234567A")
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidSuffix, res.Reason)
		assert.Equal(t, "invalid suffix: A", res.Message)
	})

	t.Run("non numeric body", func(t *testing.T) {
		res := Check("89A234567V")
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidNumeric, res.Reason)
	})
}

func TestCheck_Modern(t *testing.T) {
	t.Run("female day offset removed", func(t *testing.T) {
		res := Check("199851234567") // day field 512
		require.True(t, res.Valid)
		assert.Equal(t, 1998, res.BirthYear)
		assert.Equal(t, 12, res.DayOfYear)
		assert.Equal(t, domain.GenderFemale, res.Gender)
	})

	t.Run("male day kept as-is", func(t *testing.T) {
		res := Check("200012345678") // day field 123
		require.True(t, res.Valid)
		assert.Equal(t, 2000, res.BirthYear)
		assert.Equal(t, 123, res.DayOfYear)
		assert.Equal(t, domain.GenderMale, res.Gender)
	})

	t.Run("female day upper bound", func(t *testing.T) {
		res := Check("199886612345") // day field 866 -> 366
		require.True(t, res.Valid)
		assert.Equal(t, 366, res.DayOfYear)
		assert.Equal(t, domain.GenderFemale, res.Gender)
	})

	t.Run("day in the dead zone", func(t *testing.T) {
		res := Check("199840012345") // day field 400
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidDay, res.Reason)
		assert.Equal(t, "invalid day: 400", res.Message)
	})

	t.Run("day above female range", func(t *testing.T) {
		res := Check("199886712345") // day field 867
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidDay, res.Reason)
	})

	t.Run("day zero keeps leading zeros in message", func(t *testing.T) {
		res := Check("199800012345")
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidDay, res.Reason)
		assert.Equal(t, "invalid day: 000", res.Message)
	})

	t.Run("non numeric year", func(t *testing.T) {
		res := Check("1A9851234567")
		require.False(t, res.Valid)
		assert.Equal(t, ReasonInvalidNumeric, res.Reason)
	})
}

func TestCheck_InvalidLength(t *testing.T) {
	for _, input := range []string{"", "123456V", "891234567", "19981234567", "1998512345678"} {
		res := Check(input)
		require.False(t, res.Valid, "input %q", input)
		assert.Equal(t, ReasonInvalidLength, res.Reason)
	}
}

func TestCheck_Idempotent(t *testing.T) {
	for _, input := range []string{"891234567V", "199851234567", "bogus input!"} {
		assert.Equal(t, Check(input), Check(input))
	}
}

func TestCheck_SuccessMessage(t *testing.T) {
	res := Check("891234567V")
	require.True(t, res.Valid)
	assert.Equal(t, "valid: year 1989, day 123, gender male", res.Message)
}
