package gamedata

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/trainer-api/internal/errors"
)

// CardVersion fingerprints the card and progression tables. Table sets that
// would resolve some card differently get different versions.
func (t *Tables) CardVersion() (string, error) {
	h := xxhash.New()
	enc := json.NewEncoder(h)
	for _, part := range []interface{}{t.Cards, t.Progressions} {
		if err := enc.Encode(part); err != nil {
			return "", errors.Wrap(err, "failed to fingerprint card tables")
		}
	}
	return strconv.FormatUint(h.Sum64(), 16), nil
}
