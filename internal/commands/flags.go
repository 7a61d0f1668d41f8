package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/waypoint/internal/core/config"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	DataDir      string
	TripFile     string
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// ResolveTripFile returns the trip file to open. The --trip flag wins over
// the configured path.
func (f *Flags) ResolveTripFile() string {
	if f.TripFile != "" {
		return f.TripFile
	}
	if f.Config == nil {
		return filepath.Join(f.DataDir, "trip.yaml")
	}
	return f.Config.ResolveTripFile(f.ConfigPath)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "waypoint", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "waypoint")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/waypoint/waypoint.log
// On Linux: $XDG_STATE_HOME/waypoint/waypoint.log (defaults to ~/.local/state/waypoint/waypoint.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "waypoint", "waypoint.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "waypoint", "waypoint.log")
	}

	return filepath.Join(home, ".local", "state", "waypoint", "waypoint.log")
}
