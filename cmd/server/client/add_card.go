package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var addLevel int

var addCardCmd = &cobra.Command{
	Use:   "add-card [player-id] [card-name]",
	Short: "Add a support card to a player's roster",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddCard,
}

func init() {
	addCardCmd.Flags().IntVar(&addLevel, "level", 0, "Initial limit-break level")
}

func runAddCard(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AddOwnedCard(ctx, args[0], args[1], addLevel)
	if err != nil {
		return fmt.Errorf("failed to add card: %w", err)
	}

	return printResponse(resp)
}
