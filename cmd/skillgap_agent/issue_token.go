package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap-advisor/internal/config"
	"github.com/jonathan/skillgap-advisor/internal/server"
	"github.com/spf13/cobra"
)

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Issue a bearer token for the write endpoints of the API",
	Long:  "Signs an API token with JWT_SECRET. A new client ID is generated unless --client-id is given.",
	RunE:  runIssueToken,
}

var (
	issueClientID string
	issueLabel    string
)

func init() {
	issueTokenCmd.Flags().StringVar(&issueClientID, "client-id", "", "Client UUID to embed in the token")
	issueTokenCmd.Flags().StringVar(&issueLabel, "label", "", "Human-readable label stored as the token subject (required)")

	if err := issueTokenCmd.MarkFlagRequired("label"); err != nil {
		panic(fmt.Sprintf("failed to mark label flag as required: %v", err))
	}

	rootCmd.AddCommand(issueTokenCmd)
}

func runIssueToken(cmd *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	clientID := uuid.New()
	if issueClientID != "" {
		clientID, err = uuid.Parse(issueClientID)
		if err != nil {
			return fmt.Errorf("invalid --client-id: %w", err)
		}
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(clientID, issueLabel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "client_id: %s\n", clientID)
	_, _ = fmt.Fprintf(out, "expires_in: %s\n", jwtConfig.TTL())
	_, _ = fmt.Fprintf(out, "token: %s\n", token)
	return nil
}
