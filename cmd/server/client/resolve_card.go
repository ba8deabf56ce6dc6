package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var resolveLevel int

var resolveCardCmd = &cobra.Command{
	Use:   "resolve-card [card-name]",
	Short: "Resolve a support card at a limit-break level",
	Long: `Resolve a support card by canonical or legacy name. Examples:

  resolve-card "Blazing Sprint" --level 2
  resolve-card "Speed Demon" --level 9`,
	Args: cobra.ExactArgs(1),
	RunE: runResolveCard,
}

func init() {
	resolveCardCmd.Flags().IntVar(&resolveLevel, "level", 0, "Limit-break level (clamped to 0-4)")
}

func runResolveCard(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Resolving %q at level %d on %s...", args[0], resolveLevel, serverAddr)

	resp, err := client.ResolveCard(ctx, args[0], resolveLevel)
	if err != nil {
		return fmt.Errorf("failed to resolve card: %w", err)
	}

	return printResponse(resp)
}
