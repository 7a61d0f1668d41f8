package initcmd

import (
	"fmt"
	"os"

	"github.com/colonyops/waypoint/internal/core/config"
	"github.com/colonyops/waypoint/internal/core/trip"
)

type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// CheckItem is one line of the post-init report.
type CheckItem struct {
	Label  string
	Status Status
	Detail string
}

// Check verifies the files written by the wizard can be loaded back.
func Check(configPath, dataDir string) []CheckItem {
	cfg, err := config.Load(configPath, dataDir)
	if err != nil {
		return []CheckItem{{Label: "Config file", Status: StatusFail, Detail: err.Error()}}
	}

	items := []CheckItem{{Label: "Config file", Status: StatusPass, Detail: configPath}}
	return append(items, checkTrip(cfg.ResolveTripFile(configPath)))
}

func checkTrip(path string) CheckItem {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckItem{Label: "Trip file", Status: StatusWarn, Detail: path + " does not exist yet"}
	}

	t, err := trip.LoadFile(path)
	if err != nil {
		return CheckItem{Label: "Trip file", Status: StatusFail, Detail: err.Error()}
	}
	return CheckItem{Label: "Trip file", Status: StatusPass, Detail: fmt.Sprintf("%s (%d points)", path, len(t.Points))}
}
