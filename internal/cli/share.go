package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"flag-quiz-service/internal/share"
)

// NewShareCmd encodes and decodes share tokens offline.
func NewShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode or decode score share tokens",
	}

	var (
		username string
		score    int
		total    int
		elapsed  int
		baseURL  string
	)
	encode := &cobra.Command{
		Use:   "encode",
		Short: "Print a share token (and URL when --base-url is set)",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := share.Encode(username, score, total, elapsed, time.Now())
			if err != nil {
				return err
			}
			if baseURL == "" {
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			}
			link, err := share.URL(baseURL, token)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	encode.Flags().StringVar(&username, "username", "", "player name")
	encode.Flags().IntVar(&score, "score", 0, "correct answers")
	encode.Flags().IntVar(&total, "total", 0, "rounds played")
	encode.Flags().IntVar(&elapsed, "elapsed", 0, "elapsed seconds")
	encode.Flags().StringVar(&baseURL, "base-url", "", "score page URL to append the token to")

	decode := &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Validate a share token and print its payload as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := share.Decode(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}
