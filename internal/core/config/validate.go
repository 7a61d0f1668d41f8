package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// key binding conflicts and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateKeys(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings(configPath string) []ValidationWarning {
	var warnings []ValidationWarning

	path := c.ResolveTripFile(configPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		warnings = append(warnings, ValidationWarning{
			Category: "Trip",
			Item:     path,
			Message:  "trip file does not exist yet, the list will start empty",
		})
	}

	if !c.TUI.Watch {
		warnings = append(warnings, ValidationWarning{
			Category: "TUI",
			Item:     "watch",
			Message:  "file watching is disabled, external edits need a restart",
		})
	}

	return warnings
}

// validateFileAccess checks config file, data directory, and trip file.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		validate.TripFilePathField("trip_file", c.TripFile),
		criterio.Run("trip_file", c.ResolveTripFile(configPath), tripFileParses),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// tripFileParses validates that an existing trip file decodes cleanly.
// A missing file is reported as a warning instead.
func tripFileParses(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if _, err := trip.LoadFile(path); err != nil {
		return err
	}
	return nil
}

// validateKeys reports empty key names and keys bound to more than one action.
func (c *Config) validateKeys() error {
	bindings := []struct {
		field string
		keys  []string
	}{
		{"keys.expand", c.Keys.Expand},
		{"keys.favorite", c.Keys.Favorite},
		{"keys.submit", c.Keys.Submit},
		{"keys.rollup", c.Keys.Rollup},
		{"keys.delete", c.Keys.Delete},
		{"keys.cancel", c.Keys.Cancel},
	}

	var errs criterio.FieldErrorsBuilder
	owner := make(map[string]string)

	for _, b := range bindings {
		for i, k := range b.keys {
			field := fmt.Sprintf("%s[%d]", b.field, i)
			k = strings.TrimSpace(k)
			if k == "" {
				errs = errs.Append(field, fmt.Errorf("key cannot be empty"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != b.field {
				errs = errs.Append(field, fmt.Errorf("key %q is already bound to %s", k, prev))
				continue
			}
			owner[k] = b.field
		}
	}

	return errs.ToError()
}
