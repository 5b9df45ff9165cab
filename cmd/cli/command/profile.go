package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"profilehub/cmd/cli/command/client"
)

func newClient() *client.HTTPClient {
	c := client.NewHTTPClient(apiURL) // create new HTTP client
	c.SetToken(token)
	c.SetLanguage(languageID, acceptLang)
	return c
}

// notificationsCmd fetches the caller's unread notifications. The server
// marks every returned notification as read.
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show (and mark read) your active notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newClient().ActiveNotifications()
		if err != nil {
			return fmt.Errorf("fetching notifications failed: %w", err)
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No new notifications.")
			return nil
		}
		for _, n := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.NotificationType, n.NotificationJSON)
		}
		return nil
	},
}

var deletePictureCmd = &cobra.Command{
	Use:   "delete-picture",
	Short: "Delete your profile picture",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := newClient().DeletePicture()
		if err != nil {
			return fmt.Errorf("deleting picture failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", msg)
		return nil
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions of a language",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().Questions()
		if err != nil {
			return fmt.Errorf("fetching questions failed: %w", err)
		}
		if result.Message != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Language %d, %d active users\n", result.LanguageID, result.TotalUserCount)
		for _, q := range result.Questions {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", q.ID, q.Question)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("json", false, "print the raw result")
}
