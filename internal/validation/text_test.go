package validation

import (
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	t.Run("accepts text with content", func(t *testing.T) {
		t.Parallel()
		got, err := CleanText("  hello world  ")
		require.NoError(t, err)
		// Original text is preserved; trimming only decides validity.
		assert.Equal(t, "  hello world  ", got)
	})

	t.Run("rejects empty and whitespace-only text", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "   ", "\n\t ", "\r\n"} {
			_, err := CleanText(in)
			require.Error(t, err, "input %q", in)
			assert.True(t, models.IsCode(err, models.CodeValidation))
		}
	})

	t.Run("unicode text passes", func(t *testing.T) {
		t.Parallel()
		got, err := CleanText("Тестовый пост")
		require.NoError(t, err)
		assert.Equal(t, "Тестовый пост", got)
	})
}

func TestValidateGroupSlug(t *testing.T) {
	t.Parallel()

	for _, slug := range []string{"cats", "go-lang", "a1b2c3"} {
		assert.NoError(t, ValidateGroupSlug(slug), "slug %q", slug)
	}

	for _, slug := range []string{"", "ab", "UPPER", "with space", "-leading", "trailing-", "posts", "api", "feed"} {
		assert.Error(t, ValidateGroupSlug(slug), "slug %q", slug)
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"abc", "user_name", "user-name", "User123"} {
		assert.NoError(t, ValidateUsername(name), "username %q", name)
	}

	for _, name := range []string{"ab", "_leading", "trailing_", "has space", "bad!char"} {
		assert.Error(t, ValidateUsername(name), "username %q", name)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("Password123"))

	for _, pw := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		assert.Error(t, ValidatePassword(pw), "password %q", pw)
	}
}
