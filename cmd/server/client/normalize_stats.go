package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var evolutionPotential int

var normalizeStatsCmd = &cobra.Command{
	Use:   "normalize-stats [stat=value...]",
	Short: "Normalize an ad hoc raw stat block",
	Long: `Normalize five raw stats. Examples:

  normalize-stats HP=100 Attack=100 Defense=100 Instinct=100 Speed=100 --potential 0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalizeStats,
}

func init() {
	normalizeStatsCmd.Flags().IntVar(&evolutionPotential, "potential", 2, "Evolution potential (0, 1 or 2)")
}

func runNormalizeStats(_ *cobra.Command, args []string) error {
	rawStats := make(map[string]interface{}, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid stat %q, expected stat=value", arg)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
		rawStats[name] = f
	}

	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.NormalizeStats(ctx, rawStats, evolutionPotential)
	if err != nil {
		return fmt.Errorf("failed to normalize stats: %w", err)
	}

	return printResponse(resp)
}
