package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rosterCmd = &cobra.Command{
	Use:   "roster [player-id]",
	Short: "Show a player's roster with every card resolved",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoster,
}

func runRoster(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetRoster(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get roster: %w", err)
	}

	return printResponse(resp)
}
