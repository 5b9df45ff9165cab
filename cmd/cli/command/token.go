package command

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"profilehub/internal/microservices/http-api/service"
)

// tokenCmd mints a credential signed with TOKEN_SECRET_KEY, for local testing.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed credential for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, _ := cmd.Flags().GetString("secret")
		if secret == "" {
			return fmt.Errorf("a signing secret is required (--secret or TOKEN_SECRET_KEY)")
		}
		recordID, _ := cmd.Flags().GetInt64("id")
		userID, _ := cmd.Flags().GetString("user")
		lang, _ := cmd.Flags().GetInt("language-id")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		signed, err := service.IssueToken(secret, service.Claims{
			RecordID:   recordID,
			UserID:     userID,
			LanguageID: lang,
		}, ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("secret", os.Getenv("TOKEN_SECRET_KEY"), "HMAC signing secret")
	tokenCmd.Flags().Int64("id", 0, "users.id of the subject")
	tokenCmd.Flags().String("user", "", "users.user_id of the subject")
	tokenCmd.Flags().Int("language-id", 165, "language claim")
	tokenCmd.Flags().Duration("ttl", time.Hour, "validity")
	tokenCmd.MarkFlagRequired("id")
	tokenCmd.MarkFlagRequired("user")
}
