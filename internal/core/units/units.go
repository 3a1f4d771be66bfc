// Package units maps free-form unit strings from receipts onto the supported units.
package units

import (
	"fmt"
	"os"
	"strings"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"gopkg.in/yaml.v3"
)

var defaultAliases = map[string]v1.Unit{
	"lb": v1.UnitPound, "lbs": v1.UnitPound, "pound": v1.UnitPound, "pounds": v1.UnitPound, "#": v1.UnitPound,
	"oz": v1.UnitOunce, "ounce": v1.UnitOunce, "ounces": v1.UnitOunce,
	"kg": v1.UnitKilogram, "kgs": v1.UnitKilogram, "kilo": v1.UnitKilogram, "kilogram": v1.UnitKilogram, "kilograms": v1.UnitKilogram,
	"g": v1.UnitGram, "gr": v1.UnitGram, "gram": v1.UnitGram, "grams": v1.UnitGram,
	"l": v1.UnitLiter, "lt": v1.UnitLiter, "ltr": v1.UnitLiter, "liter": v1.UnitLiter, "liters": v1.UnitLiter, "litre": v1.UnitLiter, "litres": v1.UnitLiter,
	"ml": v1.UnitMilliliter, "milliliter": v1.UnitMilliliter, "milliliters": v1.UnitMilliliter, "millilitre": v1.UnitMilliliter,
	"gal": v1.UnitGallon, "gallon": v1.UnitGallon, "gallons": v1.UnitGallon,
	"fl oz": v1.UnitFluidOunce, "floz": v1.UnitFluidOunce, "fl_oz": v1.UnitFluidOunce, "fluid ounce": v1.UnitFluidOunce, "fluid ounces": v1.UnitFluidOunce,
	"ct": v1.UnitCount, "count": v1.UnitCount, "ea": v1.UnitCount, "each": v1.UnitCount, "pc": v1.UnitCount, "pcs": v1.UnitCount,
	"pk": v1.UnitCount, "pack": v1.UnitCount, "unit": v1.UnitCount, "units": v1.UnitCount,
}

// Table resolves unit aliases. The zero value is not usable; use NewTable or LoadTable.
type Table struct {
	aliases map[string]v1.Unit
}

// aliasFile is the on-disk YAML shape:
//
//	aliases:
//	  bunch: ct
//	  dozen: ct
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// NewTable returns a table holding the built-in aliases.
func NewTable() *Table {
	aliases := make(map[string]v1.Unit, len(defaultAliases))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
	return &Table{aliases: aliases}
}

// LoadTable returns the built-in aliases extended by the YAML file at path.
// An empty path yields the built-in table. File entries override built-ins.
func LoadTable(path string) (*Table, error) {
	t := NewTable()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit alias file: %w", err)
	}

	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse unit alias file %q: %w", path, err)
	}

	for alias, target := range file.Aliases {
		unit := v1.Unit(strings.ToLower(strings.TrimSpace(target)))
		if !unit.Valid() {
			return nil, fmt.Errorf("unit alias %q in %q maps to unsupported unit %q", alias, path, target)
		}
		key := normalizeKey(alias)
		if key == "" {
			return nil, fmt.Errorf("empty unit alias in %q", path)
		}
		t.aliases[key] = unit
	}

	return t, nil
}

// Normalize maps raw onto a supported unit. A blank raw value means a plain
// item count. ok is false when the alias is unknown.
func (t *Table) Normalize(raw string) (v1.Unit, bool) {
	key := normalizeKey(raw)
	if key == "" {
		return v1.UnitCount, true
	}
	if u := v1.Unit(key); u.Valid() {
		return u, true
	}
	u, ok := t.aliases[key]
	return u, ok
}

// Len returns the number of known aliases.
func (t *Table) Len() int {
	return len(t.aliases)
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return strings.TrimSuffix(strings.TrimSuffix(s, "."), " ")
}
