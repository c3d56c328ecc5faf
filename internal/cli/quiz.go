package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Quiz commands",
	}

	cmd.AddCommand(newQuizStartCmd())
	cmd.AddCommand(newQuizAnswerCmd())

	return cmd
}

func newQuizStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code>",
		Short: "Start the quiz for a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/rooms/"+args[0]+"/quiz/start", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Quiz started")
			return nil
		},
	}
}

func newQuizAnswerCmd() *cobra.Command {
	var playerID string
	var chosenIndex int

	cmd := &cobra.Command{
		Use:   "answer <code>",
		Short: "Submit an answer for the current question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerID == "" {
				return fmt.Errorf("--player is required")
			}

			req := map[string]any{
				"player_id":    playerID,
				"chosen_index": chosenIndex,
			}
			if err := client.Post("/api/v1/rooms/"+args[0]+"/quiz/answer", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Answer submitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().IntVar(&chosenIndex, "index", 0, "Chosen answer index")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
