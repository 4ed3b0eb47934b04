package reference

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed data/*.yaml
var embedded embed.FS

// Tables is the full set of reference tables
type Tables struct {
	Classes     *Table[ClassDefinition]
	Species     *Table[SpeciesDefinition]
	Backgrounds *Table[Background]
	Spells      *Table[Spell]
	Weapons     *Table[Weapon]
	Armor       *Table[Armor]
	Feats       *Table[Feat]
	Invocations *Table[Invocation]
	Maneuvers   *Table[Maneuver]
	Metamagic   *Table[Metamagic]
	Tools       *Table[Tool]
}

// Load parses the embedded tables
func Load() (*Tables, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded reference data")
	}
	return LoadFS(sub)
}

// MustLoad is Load for process start; it panics when the embedded data is broken
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("reference: %v", err))
	}
	return t
}

// LoadFS parses one <table>.yaml file per table from the root of fsys
func LoadFS(fsys fs.FS) (*Tables, error) {
	var (
		t   Tables
		err error
	)

	if t.Classes, err = loadTable[ClassDefinition](fsys, "classes"); err != nil {
		return nil, err
	}
	if t.Species, err = loadTable[SpeciesDefinition](fsys, "species"); err != nil {
		return nil, err
	}
	if t.Backgrounds, err = loadTable[Background](fsys, "backgrounds"); err != nil {
		return nil, err
	}
	if t.Spells, err = loadTable[Spell](fsys, "spells"); err != nil {
		return nil, err
	}
	if t.Weapons, err = loadTable[Weapon](fsys, "weapons"); err != nil {
		return nil, err
	}
	if t.Armor, err = loadTable[Armor](fsys, "armor"); err != nil {
		return nil, err
	}
	if t.Feats, err = loadTable[Feat](fsys, "feats"); err != nil {
		return nil, err
	}
	if t.Invocations, err = loadTable[Invocation](fsys, "invocations"); err != nil {
		return nil, err
	}
	if t.Maneuvers, err = loadTable[Maneuver](fsys, "maneuvers"); err != nil {
		return nil, err
	}
	if t.Metamagic, err = loadTable[Metamagic](fsys, "metamagic"); err != nil {
		return nil, err
	}
	if t.Tools, err = loadTable[Tool](fsys, "tools"); err != nil {
		return nil, err
	}

	if err := t.validateClasses(); err != nil {
		return nil, err
	}

	return &t, nil
}

func loadTable[T Entry](fsys fs.FS, name string) (*Table[T], error) {
	file := name + ".yaml"
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", file)
	}

	var entries []T
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("failed to parse %s", file))
	}

	table, err := NewTable(name, entries)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid table %s", name)
	}
	return table, nil
}

// validateClasses checks the per-class shape the engine relies on
func (t *Tables) validateClasses() error {
	vb := errors.NewValidationBuilder()
	for _, c := range t.Classes.entries {
		field := "classes." + c.ID
		if c.HitDie <= 0 {
			vb.Field(field+".hit_die", "must be positive")
		}
		switch c.Progression {
		case ProgressionNone, ProgressionFull, ProgressionHalf, ProgressionPact:
		default:
			vb.Fieldf(field+".progression", "unknown progression %q", c.Progression)
		}
		if c.IsCaster() && !c.SpellcastingAbility.Valid() {
			vb.Field(field+".spellcasting_ability", "is required for casters")
		}
		if n := len(c.SpellsKnown); n != 0 && n != 20 {
			vb.Fieldf(field+".spells_known", "needs 20 entries, got %d", n)
		}
		seen := map[string]bool{}
		for _, s := range c.Subclasses {
			if s.ID == "" || seen[s.ID] {
				vb.Fieldf(field+".subclasses", "missing or duplicate id %q", s.ID)
			}
			seen[s.ID] = true
		}
	}
	return vb.Build()
}
