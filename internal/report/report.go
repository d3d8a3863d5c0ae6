// Package report writes a machine-readable summary of a patch run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/webchat-preview/internal/types"
)

// Marshal encodes result as JSON or YAML depending on format.
func Marshal(result types.RunResult, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml", "":
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported report format: %s", format)
}

// Write stores result at path, choosing the format from its extension.
func Write(path string, result types.RunResult) error {
	data, err := Marshal(result, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %s - %w", path, err)
	}
	return nil
}
