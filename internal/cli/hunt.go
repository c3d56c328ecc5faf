package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newHuntCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hunt",
		Short: "Scavenger hunt commands",
	}

	cmd.AddCommand(newHuntStartCmd())
	cmd.AddCommand(newHuntScanCmd())
	cmd.AddCommand(newHuntQRCmd())

	return cmd
}

func newHuntStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code>",
		Short: "Start the scavenger hunt for a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/rooms/"+args[0]+"/hunt/start", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Hunt started")
			return nil
		},
	}
}

func newHuntScanCmd() *cobra.Command {
	var playerID, token string

	cmd := &cobra.Command{
		Use:   "scan <code>",
		Short: "Submit a QR scan for validation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerID == "" || token == "" {
				return fmt.Errorf("--player and --token are required")
			}

			req := map[string]string{
				"player_id": playerID,
				"token":     token,
			}
			var result ScanResult

			if err := client.Post("/api/v1/rooms/"+args[0]+"/hunt/scan", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&token, "token", "", "Scanned QR token (required)")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newHuntQRCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "qr <token>",
		Short: "Download an item's QR code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := args[0]
			if outPath == "" {
				outPath = token + ".png"
			}

			resp, err := client.httpClient.Get(client.baseURL + "/api/v1/hunt/items/" + token + "/qr.png")
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != 200 {
				return fmt.Errorf("unexpected status: %d", resp.StatusCode)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			if _, err := f.ReadFrom(resp.Body); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Saved " + outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file path (default <token>.png)")

	return cmd
}
