package command

// root.go defines the root command for the profilehub CLI and its global flags.

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL     string // Global flag for API server URL
	token      string // credential sent as Authorization
	languageID string // language_id header, "null" to let the server detect it
	acceptLang string // Accept-Language header
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "profilehub",
	Short: "profilehub - command line client for the profile endpoints",
	Long: `profilehub talks to the profilehub API server. It can:
- mint a signed credential for local testing
- fetch (and mark read) your active notifications
- delete your profile picture
- list the assessment questions of a language

Use "profilehub command -h" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	// A local .env may hold PROFILEHUB_TOKEN and TOKEN_SECRET_KEY.
	_ = godotenv.Load(".env")

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("PROFILEHUB_API", "http://localhost:8080"), "API server URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("PROFILEHUB_TOKEN"), "credential for authenticated endpoints")
	rootCmd.PersistentFlags().StringVar(&languageID, "language", "", "language_id header (number or \"null\")")
	rootCmd.PersistentFlags().StringVar(&acceptLang, "accept-language", "", "Accept-Language header")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(deletePictureCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
