package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/waypoint/internal/core/config"
)

// Answers are the choices collected by the wizard.
type Answers struct {
	TripFile    string
	Theme       string
	DefaultSort string
	Watch       bool
	SampleTrip  bool
}

// DefaultAnswers returns the answers used with --yes.
func DefaultAnswers(dataDir string) Answers {
	defaults := config.DefaultConfig()
	return Answers{
		TripFile:    filepath.Join(dataDir, "trip.yaml"),
		Theme:       defaults.TUI.Theme,
		DefaultSort: defaults.TUI.DefaultSort,
		Watch:       defaults.TUI.Watch,
		SampleTrip:  true,
	}
}

// GenerateConfig builds the config file content for a.
func GenerateConfig(a Answers) ([]byte, error) {
	cfg := config.DefaultConfig()
	cfg.TripFile = a.TripFile
	cfg.TUI.Theme = a.Theme
	cfg.TUI.DefaultSort = a.DefaultSort
	cfg.TUI.Watch = a.Watch

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	header := "# waypoint configuration, generated by 'waypoint init'\n"
	return append([]byte(header), body...), nil
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, content, 0o644)
}

// SampleTrip is a small itinerary that exercises every column of the list.
const SampleTrip = `destinations:
  - id: ams
    name: Amsterdam
    description: |
      Canals, **bikes** and the Rijksmuseum.
    pictures:
      - https://picsum.photos/seed/ams/300/200
  - id: gva
    name: Geneva
    description: A lake city at the foot of the Alps.

offers:
  - type: taxi
    offers:
      - id: taxi-business
        title: Upgrade to business class
        price: 120
      - id: taxi-radio
        title: Choose the radio station
        price: 60
  - type: flight
    offers:
      - id: flight-luggage
        title: Add luggage
        price: 30
      - id: flight-meal
        title: Add meal
        price: 15

points:
  - type: taxi
    destination: ams
    from: 2024-07-10 22:55
    to: 2024-07-11 11:22
    base_price: 1100
    offers: [taxi-radio]
  - type: flight
    destination: gva
    from: 2024-07-12 08:10
    to: 2024-07-12 10:05
    base_price: 420
    is_favorite: true
    offers: [flight-luggage, flight-meal]
  - type: sightseeing
    destination: gva
    from: 2024-07-13 10:00
    to: 2024-07-13 13:30
    base_price: 40
`
