package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/printer"
	"github.com/colonyops/waypoint/internal/tui/views/points"
	"github.com/colonyops/waypoint/pkg/iojson"
	"github.com/colonyops/waypoint/pkg/tmpl"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	format     string
	sort       string
	favorites  bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List the points of a trip",
		UsageText: "waypoint ls [--json | --format tmpl] [--sort day|time|price] [pattern...]",
		Description: `Prints the points of the configured trip file as a table.

Patterns select other trip files instead and support ** globs:
  waypoint ls 'trips/**/*.yaml'

Use --json for one JSON object per point, or --format for a Go template
rendered once per point:
  waypoint ls --format '{{.ID}}\t{{euro .BasePrice}}\t{{join .Offers ", "}}'`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Go template rendered for each point (fields as in --json)",
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "sort",
				Aliases:     []string{"s"},
				Usage:       "sort order (day, time, price); defaults to tui.default_sort",
				Destination: &cmd.sort,
			},
			&cli.BoolFlag{
				Name:        "favorites",
				Aliases:     []string{"f"},
				Usage:       "only list favorite points",
				Destination: &cmd.favorites,
			},
		},
		ShellComplete: TripFileCompleter("."),
		Action:        cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.list(ctx, c)
	if err == nil || !cmd.jsonOutput {
		return err
	}

	// JSON consumers read failures from stdout too.
	var data map[string]any
	if patterns := c.Args().Slice(); len(patterns) > 0 {
		data = map[string]any{"patterns": patterns}
	}
	if werr := iojson.WriteError(c.Root().Writer, err.Error(), data); werr != nil {
		return errors.Join(err, werr)
	}
	return cli.Exit("", 1)
}

func (cmd *LsCmd) list(ctx context.Context, c *cli.Command) error {
	sortType := cmd.flags.Config.SortType()
	if cmd.sort != "" {
		st, err := trip.ParseSortType(cmd.sort)
		if err != nil {
			return err
		}
		sortType = st
	}

	var rowTmpl *tmpl.Template
	if cmd.format != "" {
		t, err := tmpl.Parse(cmd.format)
		if err != nil {
			return err
		}
		rowTmpl = t
	}

	files, err := cmd.tripFiles(c.Args().Slice())
	if err != nil {
		return err
	}

	var rows []pointInfo
	for _, path := range files {
		t, err := loadTrip(ctx, path)
		if errors.Is(err, fs.ErrNotExist) {
			printer.Ctx(ctx).Warnf("No trip file at %s", path)
			continue
		}
		if err != nil {
			return err
		}
		rows = append(rows, buildPointInfos(path, t, sortType, cmd.favorites)...)
	}

	out := c.Root().Writer

	switch {
	case cmd.jsonOutput:
		for _, r := range rows {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode point: %w", err)
			}
		}
		return nil
	case rowTmpl != nil:
		for _, r := range rows {
			if err := rowTmpl.Execute(out, r); err != nil {
				return fmt.Errorf("point %s: %w", r.ID, err)
			}
		}
		return nil
	}

	if len(rows) == 0 {
		printer.Ctx(ctx).Infof("No points found")
		return nil
	}

	return writePointTable(out, rows, len(files) > 1)
}

// tripFiles expands patterns into trip file paths. Without patterns the
// configured trip file is used.
func (cmd *LsCmd) tripFiles(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return []string{cmd.flags.ResolveTripFile()}, nil
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no trip files match %s", strings.Join(patterns, ", "))
	}
	return files, nil
}

// pointInfo is the JSON output format for waypoint ls --json.
type pointInfo struct {
	Trip        string    `json:"trip"`
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Destination string    `json:"destination"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	Duration    string    `json:"duration"`
	BasePrice   int       `json:"base_price"`
	Offers      []string  `json:"offers"`
	Favorite    bool      `json:"favorite"`
}

func buildPointInfos(path string, t trip.Trip, sortType trip.SortType, favoritesOnly bool) []pointInfo {
	model := trip.NewModel(t)

	var rows []pointInfo
	for _, p := range trip.SortPoints(model.Points(), sortType) {
		if favoritesOnly && !p.IsFavorite {
			continue
		}

		offers := make([]string, 0, len(p.Offers))
		for _, o := range trip.SelectedOffers(p, model.Offers(p.Type)) {
			offers = append(offers, o.Title)
		}

		rows = append(rows, pointInfo{
			Trip:        path,
			ID:          p.ID,
			Type:        string(p.Type),
			Destination: model.Destination(p.Destination).Name,
			From:        p.DueDate.From,
			To:          p.DueDate.To,
			Duration:    points.FormatDuration(p.DueDate.Duration()),
			BasePrice:   p.BasePrice,
			Offers:      offers,
			Favorite:    p.IsFavorite,
		})
	}
	return rows
}

func writePointTable(out io.Writer, rows []pointInfo, withTrip bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "DAY\tTYPE\tDESTINATION\tTIME\tDURATION\tPRICE\tOFFERS\tFAV"
	if withTrip {
		header = "TRIP\t" + header
	}
	_, _ = fmt.Fprintln(w, header)

	for _, r := range rows {
		fav := ""
		if r.Favorite {
			fav = "*"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%s-%s\t%s\t%d\t%s\t%s",
			strings.ToUpper(r.From.Format("Jan 02")),
			r.Type,
			r.Destination,
			r.From.Format("15:04"),
			r.To.Format("15:04"),
			r.Duration,
			r.BasePrice,
			strings.Join(r.Offers, ", "),
			fav,
		)
		if withTrip {
			line = r.Trip + "\t" + line
		}
		_, _ = fmt.Fprintln(w, line)
	}

	return w.Flush()
}
