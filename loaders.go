package culture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/locales.yaml
var defaultLocalesYAML []byte

// DefaultTables decodes the embedded locale data.
func DefaultTables() (LocaleTables, error) {
	var tables LocaleTables
	if err := decodeYAML(defaultLocalesYAML, &tables); err != nil {
		return LocaleTables{}, fmt.Errorf("culture: decode embedded locales: %w", err)
	}
	return tables, nil
}

// LoadLocaleTables reads locale tables from a .json, .yaml or .yml file.
func LoadLocaleTables(path string) (LocaleTables, error) {
	var tables LocaleTables
	if err := decodeFile(path, &tables); err != nil {
		return LocaleTables{}, err
	}
	if len(tables.Locales) == 0 {
		return LocaleTables{}, fmt.Errorf("culture: %s defines no locales", path)
	}
	return tables, nil
}

// LoadOverrideTable reads user overrides from a .json, .yaml or .yml file.
func LoadOverrideTable(path string) (*OverrideTable, error) {
	var table OverrideTable
	if err := decodeFile(path, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("culture: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		err = decodeJSON(data, out)
	case ".yaml", ".yml":
		err = decodeYAML(data, out)
	default:
		return fmt.Errorf("culture: %s: unsupported extension %s", path, ext)
	}
	if err != nil {
		return fmt.Errorf("culture: decode %s: %w", path, err)
	}
	return nil
}

func decodeJSON(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func decodeYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
