package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	cs, err := LoadEmbedded(165)
	require.NoError(t, err)

	assert.Equal(t, 165, cs.BaseLanguageID())
	assert.True(t, cs.Has(165))

	base := cs.Base()
	for _, key := range []string{
		KeyEventDataStatus, KeyUnauthorized, KeyInvalidUser, KeyInternalError,
		KeyConnectionStatus, KeyQueryExecutionStatus, KeyTotalUserCount,
		KeyImageStatus, KeySuccessMessage, KeyInvocationError, KeyQuestionsStatus,
		KeyRateLimited,
	} {
		assert.NotEqual(t, key, base.Message(key), "base catalog misses %s", key)
	}
}

func TestResolve(t *testing.T) {
	cs, err := Load([]byte(`
"165_MESSAGES":
  UNAUTHORIZED: "Not allowed"
  INVALID_USER: "No such user"
"140_MESSAGES":
  UNAUTHORIZED: "No permitido"
`), 165)
	require.NoError(t, err)

	t.Run("dedicated catalog", func(t *testing.T) {
		c := cs.Resolve(140)
		assert.Equal(t, 140, c.LanguageID())
		assert.Equal(t, "No permitido", c.Message(KeyUnauthorized))
	})

	t.Run("missing key falls back to base", func(t *testing.T) {
		assert.Equal(t, "No such user", cs.Resolve(140).Message(KeyInvalidUser))
	})

	t.Run("unknown language falls back to base", func(t *testing.T) {
		c := cs.Resolve(999)
		assert.Equal(t, 165, c.LanguageID())
		assert.Equal(t, "Not allowed", c.Message(KeyUnauthorized))
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		assert.Equal(t, "NOPE", cs.Base().Message("NOPE"))
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing base", `"140_MESSAGES": {A: b}`},
		{"bad section", `"MESSAGES": {A: b}`},
		{"non numeric", `"es_MESSAGES": {A: b}`},
		{"not yaml", `[unterminated`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc), 165)
			assert.Error(t, err)
		})
	}
}

func TestSectionName(t *testing.T) {
	assert.Equal(t, "165_MESSAGES", SectionName(165))
}
