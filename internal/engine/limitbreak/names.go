package limitbreak

import "github.com/KirkDiggler/trainer-api/internal/entities/card"

// NormalizeName maps a deprecated card identifier to its canonical name.
// Names that are not in the table are already canonical and come back as-is.
func NormalizeName(names card.LegacyNames, name string) string {
	if canonical, ok := names[name]; ok {
		return canonical
	}
	return name
}
