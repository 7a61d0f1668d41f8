// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
)

// TripFilePath validates a trip file path is non-empty and names a YAML file.
func TripFilePath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("trip file is required")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("trip file must be a .yaml or .yml file")
	}
}

// TripFilePathField returns a criterio validator for trip file paths.
func TripFilePathField(field, path string) error {
	return criterio.Run(field, path, TripFilePath)
}
