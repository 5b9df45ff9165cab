package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilehub/internal/microservices/http-api/service"
)

func TestTokenCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--secret", "s3cret", "--id", "7", "--user", "u1", "--language-id", "140"})
	require.NoError(t, rootCmd.Execute())

	claims, err := service.NewCredentialVerifier("s3cret").Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.RecordID)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, 140, claims.LanguageID)
}
