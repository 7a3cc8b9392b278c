package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// emojisCommand creates the "emojis" command: profile a transcript file
// and print the custom-emoji usage leaderboard.
func (c *CLI) emojisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "emojis <transcript>",
		Short: "Show the emoji-usage leaderboard for a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readTranscript(args[0])
			if err != nil {
				return err
			}
			svc, err := c.newTranscriptService(0, 0, "", "")
			if err != nil {
				return err
			}
			ingestTranscript(cmd.Context(), svc, lines, c.Logger)

			board, err := svc.EmojiRanking(transcriptPlace)
			if err != nil {
				return err
			}
			printInfo("Emoji usage")
			fmt.Println(board)
			return nil
		},
	}
}
