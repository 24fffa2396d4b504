// internal/defs/spells.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrSpellNotFound is returned when a spell id is missing from a library.
var ErrSpellNotFound = errors.New("spell not found")

// Defaults for the numeric fields of a spell record that omits them.
const (
	DefaultSpellDamage = 0
	DefaultSpellSpeed  = 100.0
	DefaultSpellRange  = 100.0
)

//go:embed data/spells.json
var defaultSpellsJSON []byte

// SpellDefinition holds the static data of one castable spell.
type SpellDefinition struct {
	ID                   string
	Name                 string
	Description          string
	Type                 string
	Damage               float64
	Cooldown             float64
	Range                float64
	Speed                float64
	TrajectoryProperties TrajectoryConfig
}

// spellRecord mirrors the JSON layout; pointers tell a missing key from a zero.
type spellRecord struct {
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	Type                 string           `json:"type"`
	Damage               *float64         `json:"damage"`
	Cooldown             *float64         `json:"cooldown"`
	Range                *float64         `json:"range"`
	Speed                *float64         `json:"speed"`
	TrajectoryProperties TrajectoryConfig `json:"trajectory_properties"`
}

// SpellLibrary maps spell ids to their definitions.
type SpellLibrary map[string]SpellDefinition

// Get looks a spell up by id.
func (l SpellLibrary) Get(id string) (SpellDefinition, error) {
	def, ok := l[id]
	if !ok {
		return SpellDefinition{}, fmt.Errorf("%q: %w", id, ErrSpellNotFound)
	}
	return def, nil
}

// IDs returns the spell ids in sorted order.
func (l SpellLibrary) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ParseSpellLibrary decodes a JSON object keyed by spell id.
// Unknown keys are ignored and missing numeric fields take their defaults.
func ParseSpellLibrary(data []byte) (SpellLibrary, error) {
	var records map[string]spellRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spell definitions: %w", err)
	}

	lib := make(SpellLibrary, len(records))
	for id, rec := range records {
		def := SpellDefinition{
			ID:                   id,
			Name:                 rec.Name,
			Description:          rec.Description,
			Type:                 rec.Type,
			Damage:               valueOr(rec.Damage, DefaultSpellDamage),
			Cooldown:             valueOr(rec.Cooldown, 0),
			Range:                valueOr(rec.Range, DefaultSpellRange),
			Speed:                valueOr(rec.Speed, DefaultSpellSpeed),
			TrajectoryProperties: rec.TrajectoryProperties,
		}
		if def.TrajectoryProperties == nil {
			def.TrajectoryProperties = TrajectoryConfig{}
		}
		lib[id] = def
	}
	return lib, nil
}

// DefaultSpellLibrary returns the built-in spell catalog.
func DefaultSpellLibrary() (SpellLibrary, error) {
	lib, err := ParseSpellLibrary(defaultSpellsJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in spells: %w", err)
	}
	return lib, nil
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
