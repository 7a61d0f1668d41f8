package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/waypoint/internal/core/logging"
	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/printer"
	"github.com/colonyops/waypoint/internal/tui"
	"github.com/colonyops/waypoint/internal/tui/keys"
	"github.com/colonyops/waypoint/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags

	noWatch bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "trip",
			Aliases:     []string{"t"},
			Usage:       "trip file to open (overrides trip_file from the config)",
			Sources:     cli.EnvVars("WAYPOINT_TRIP"),
			Destination: &cmd.flags.TripFile,
		},
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload the trip file when it changes on disk",
			Destination: &cmd.noWatch,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("WAYPOINT_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("waypoint needs an interactive terminal; use 'waypoint ls' for plain output")
	}

	cfg := cmd.flags.Config
	path := cmd.flags.ResolveTripFile()
	ctx = logging.WithTripFile(ctx, path)

	t, err := loadTrip(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		printer.Ctx(ctx).Warnf("No trip file at %s, starting with an empty trip", path)
	} else if err != nil {
		return err
	}

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, log.Logger)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	var watcher *trip.Watcher
	if cfg.TUI.Watch && !cmd.noWatch {
		watcher, err = trip.NewWatcher(path, logging.Component("trip-watcher"))
		if err != nil {
			// The list still works without live reload.
			log.Warn().Ctx(ctx).Err(err).Msg("trip watcher unavailable")
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	m := tui.New(trip.NewModel(t), tui.Options{
		KeyMap:   keys.NewKeyMap(cfg.Keys),
		Sort:     cfg.SortType(),
		TripFile: path,
		Watcher:  watcher,
	})

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// loadTrip reads the trip file at path. A missing file yields an empty trip
// together with an error wrapping fs.ErrNotExist.
func loadTrip(ctx context.Context, path string) (trip.Trip, error) {
	if _, err := os.Stat(path); err != nil {
		return trip.Trip{}, fmt.Errorf("open trip file: %w", err)
	}

	t, err := trip.LoadFile(path)
	if err != nil {
		return trip.Trip{}, err
	}

	log.Debug().Ctx(ctx).Int("points", len(t.Points)).Msg("trip loaded")
	return t, nil
}
