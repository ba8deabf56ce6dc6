// Package gamedata loads the creature and card tables from YAML and checks
// them before the engine sees them
package gamedata

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/errors"
)

//go:embed data/*.yaml
var defaultData embed.FS

// LoadDefault loads the data set compiled into the binary
func LoadDefault() (*Tables, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded data")
	}
	return Load(sub)
}

// LoadDir loads the data set from a directory on disk
func LoadDir(dir string) (*Tables, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("data directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "data directory not readable")
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("%s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every table file from fsys, builds the tables and validates
// them. creatures.yaml and cards.yaml are required; progressions.yaml and
// legacy_names.yaml may be absent.
func Load(fsys fs.FS) (*Tables, error) {
	var creatures creaturesFile
	if err := decodeFile(fsys, CreaturesFile, &creatures, true); err != nil {
		return nil, err
	}

	var cards cardsFile
	if err := decodeFile(fsys, CardsFile, &cards, true); err != nil {
		return nil, err
	}

	var progressions progressionsFile
	if err := decodeFile(fsys, ProgressionsFile, &progressions, false); err != nil {
		return nil, err
	}

	var legacy legacyNamesFile
	if err := decodeFile(fsys, LegacyNamesFile, &legacy, false); err != nil {
		return nil, err
	}

	tables, err := build(&creatures, &cards, &progressions, &legacy)
	if err != nil {
		return nil, err
	}

	if err := Validate(tables); err != nil {
		return nil, err
	}

	return tables, nil
}

func decodeFile(fsys fs.FS, name string, out interface{}, required bool) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", name)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+name)
	}
	return nil
}

// build indexes the decoded files. Structural problems that would make the
// maps ambiguous are reported here; value checks belong to Validate.
func build(
	creatures *creaturesFile,
	cards *cardsFile,
	progressions *progressionsFile,
	legacy *legacyNamesFile,
) (*Tables, error) {
	vb := errors.NewValidationBuilder()

	tables := &Tables{
		Creatures:    make(map[string]*creature.Definition, len(creatures.Creatures)),
		Cards:        make(map[string]*card.Definition, len(cards.Cards)),
		Progressions: make(map[string]card.ProgressionTable, len(progressions.Progressions)),
		LegacyNames:  make(card.LegacyNames, len(legacy.LegacyNames)),
	}

	for i, c := range creatures.Creatures {
		if c == nil || c.ID == "" {
			vb.Fieldf("creatures", "entry %d has no id", i)
			continue
		}
		if _, dup := tables.Creatures[c.ID]; dup {
			vb.Field("creatures."+c.ID, "duplicate id")
			continue
		}
		tables.Creatures[c.ID] = c
	}

	for i, c := range cards.Cards {
		if c.Name == "" {
			vb.Fieldf("cards", "entry %d has no name", i)
			continue
		}
		if _, dup := tables.Cards[c.Name]; dup {
			vb.Field("cards."+c.Name, "duplicate name")
			continue
		}
		tables.Cards[c.Name] = c.toDefinition()
	}

	for name, rows := range progressions.Progressions {
		if len(rows) != card.ProgressionLevels {
			vb.Fieldf("progressions."+name, "must have exactly %d rows, got %d", card.ProgressionLevels, len(rows))
			continue
		}
		var table card.ProgressionTable
		copy(table[:], rows)
		tables.Progressions[name] = table
	}

	for legacyName, canonical := range legacy.LegacyNames {
		tables.LegacyNames[legacyName] = canonical
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return tables, nil
}
