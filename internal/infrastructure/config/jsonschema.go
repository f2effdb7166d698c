package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// Schema returns the JSON schema of the configuration file, indented.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dockyard/config.schema.json"
	schema.Title = "Dockyard Configuration"
	schema.Description = "Configuration schema for dockyard, a docking layout engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// GenerateSchemaFile writes config.schema.json next to the config file and
// returns its path.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	data, err := Schema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, schemaFileName)
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
