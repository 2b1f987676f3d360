package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEmptyValidator(t *testing.T) {
	v := &NotEmptyValidator{}

	assert.Error(t, v.Validate(nil))
	assert.Error(t, v.Validate(""))
	assert.Error(t, v.Validate("   "))
	assert.Error(t, v.Validate([]string{}))
	assert.Error(t, v.Validate(map[string]int{}))
	assert.Error(t, v.Validate((*int)(nil)))

	assert.NoError(t, v.Validate("hello"))
	assert.NoError(t, v.Validate([]string{"a"}))
	assert.NoError(t, v.Validate(42))
}

func TestStringLengthValidator(t *testing.T) {
	v := &StringLengthValidator{Minimum: 3, Maximum: 5}

	assert.NoError(t, v.Validate(nil))
	assert.NoError(t, v.Validate("abc"))
	assert.NoError(t, v.Validate("abcde"))
	assert.Error(t, v.Validate("ab"))
	assert.Error(t, v.Validate("abcdef"))
	assert.Error(t, v.Validate(42))

	// Rune count, not byte count.
	assert.NoError(t, v.Validate("äöü"))

	unbounded := &StringLengthValidator{Minimum: 1}
	assert.NoError(t, unbounded.Validate("arbitrarily long string value"))
}

func TestEmailAddressValidator(t *testing.T) {
	v := &EmailAddressValidator{}

	assert.NoError(t, v.Validate(nil))
	assert.NoError(t, v.Validate("user@example.com"))
	assert.Error(t, v.Validate("not-an-email"))
	assert.Error(t, v.Validate(""))
	assert.Error(t, v.Validate(42))
}

func TestNumberRangeValidator(t *testing.T) {
	v := &NumberRangeValidator{Minimum: 1, Maximum: 10}

	assert.NoError(t, v.Validate(nil))
	assert.NoError(t, v.Validate(1))
	assert.NoError(t, v.Validate(10))
	assert.NoError(t, v.Validate(5.5))
	assert.Error(t, v.Validate(0))
	assert.Error(t, v.Validate(11))
	assert.Error(t, v.Validate("five"))
}

func TestRegularExpressionValidator(t *testing.T) {
	v := &RegularExpressionValidator{Pattern: regexp.MustCompile(`^[a-z]+$`)}

	assert.NoError(t, v.Validate(nil))
	assert.NoError(t, v.Validate("abc"))
	assert.Error(t, v.Validate("ABC"))
	assert.Error(t, v.Validate(42))
}

func TestUuidValidator(t *testing.T) {
	v := &UuidValidator{}

	assert.NoError(t, v.Validate(nil))
	assert.NoError(t, v.Validate("550e8400-e29b-41d4-a716-446655440000"))
	assert.Error(t, v.Validate("not-a-uuid"))
	assert.Error(t, v.Validate(42))
}

func TestResolverResolve(t *testing.T) {
	r := NewResolver()

	t.Run("resolves built-in by short name", func(t *testing.T) {
		validator, identity, err := r.Resolve("StringLength", Options{"minimum": "3", "maximum": "5"})
		require.NoError(t, err)
		require.NotNil(t, validator)
		assert.Equal(t, "StringLengthValidator", identity.Name())

		sl, ok := validator.(*StringLengthValidator)
		require.True(t, ok)
		assert.Equal(t, 3, sl.Minimum)
		assert.Equal(t, 5, sl.Maximum)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, _, err := r.Resolve("NoSuchThing", nil)
		require.Error(t, err)
		var notFound *NoSuchValidatorError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "NoSuchThing", notFound.Name)
	})

	t.Run("bad options", func(t *testing.T) {
		_, _, err := r.Resolve("StringLength", Options{"minimum": "three"})
		assert.Error(t, err)

		_, _, err = r.Resolve("RegularExpression", Options{"regularExpression": "["})
		assert.Error(t, err)

		_, _, err = r.Resolve("RegularExpression", nil)
		assert.Error(t, err)
	})

	t.Run("custom registration", func(t *testing.T) {
		r.Register("AlwaysFails", &NotEmptyValidator{}, func(Options) (Validator, error) {
			return &NotEmptyValidator{}, nil
		})
		assert.True(t, r.Has("AlwaysFails"))
		_, _, err := r.Resolve("AlwaysFails", nil)
		assert.NoError(t, err)
	})

	t.Run("names sorted", func(t *testing.T) {
		names := NewResolver().Names()
		assert.Equal(t, []string{
			"EmailAddress", "NotEmpty", "NumberRange",
			"RegularExpression", "StringLength", "Uuid",
		}, names)
	})
}
