package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trainer-api/internal/gamedata"
)

var validateDataDir string

var validateDataCmd = &cobra.Command{
	Use:   "validate-data",
	Short: "Load and validate the game data tables",
	Long: `Load the creature, card, progression and legacy name tables, validate them,
and print every creature's normalized stat total.`,
	RunE: runValidateData,
}

func init() {
	validateDataCmd.Flags().StringVar(&validateDataDir, "data-dir", "", "Directory of YAML tables (embedded data set when empty)")
}

func runValidateData(_ *cobra.Command, _ []string) error {
	tables, err := loadTables(validateDataDir)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d creatures, %d cards, %d progression tables, %d legacy names\n\n",
		len(tables.Creatures), len(tables.Cards), len(tables.Progressions), len(tables.LegacyNames))

	normalized := tables.NormalizedCreatures()
	for _, id := range tables.CreatureIDs() {
		def := tables.Creatures[id]
		stats := normalized[id]
		fmt.Printf("%-12s %-12s potential=%d total=%d\n", id, def.Name, def.EvolutionPotential, stats.Total())
	}

	return nil
}

// loadTables reads the YAML tables from dir, or the embedded set when dir is empty
func loadTables(dir string) (*gamedata.Tables, error) {
	if dir == "" {
		tables, err := gamedata.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded game data: %w", err)
		}
		return tables, nil
	}

	tables, err := gamedata.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load game data from %s: %w", dir, err)
	}
	return tables, nil
}
