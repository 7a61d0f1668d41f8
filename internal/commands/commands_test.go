package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waypoint/internal/core/config"
	"github.com/colonyops/waypoint/internal/printer"
	"github.com/colonyops/waypoint/pkg/iojson"
	"github.com/colonyops/waypoint/pkg/tuitest"
)

const lsTripYAML = `destinations:
  - id: ams
    name: Amsterdam
offers:
  - type: taxi
    offers:
      - id: radio
        title: Radio
        price: 5
points:
  - id: a
    type: taxi
    destination: ams
    from: 2024-01-01 10:00
    to: 2024-01-01 12:00
    base_price: 100
    offers: [radio]
  - id: b
    type: bus
    destination: ams
    from: 2024-01-02 09:00
    to: 2024-01-02 09:30
    base_price: 300
    is_favorite: true
`

type cliFixture struct {
	dir   string
	flags *Flags
	out   bytes.Buffer
	msgs  bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	cfg, err := config.Load(configPath, dir)
	require.NoError(t, err)

	return &cliFixture{
		dir:   dir,
		flags: &Flags{ConfigPath: configPath, DataDir: dir, Config: cfg},
	}
}

func (f *cliFixture) writeTrip(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (f *cliFixture) run(t *testing.T, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:           "waypoint",
		Writer:         &f.out,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = NewLsCmd(f.flags).Register(app)
	app = NewConfigValidateCmd(f.flags).Register(app)

	ctx := printer.NewContext(context.Background(), printer.New(&f.msgs))
	return app.Run(ctx, append([]string{"waypoint"}, args...))
}

func TestLs_Table(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trip.yaml", lsTripYAML)

	require.NoError(t, f.run(t, "ls"))

	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "DAY"))
	assert.Contains(t, lines[1], "JAN 01")
	assert.Contains(t, lines[1], "Amsterdam")
	assert.Contains(t, lines[1], "10:00-12:00")
	assert.Contains(t, lines[1], "02H 00M")
	assert.Contains(t, lines[1], "Radio")
	assert.Contains(t, lines[2], "*")
	assert.NotContains(t, lines[0], "TRIP")
}

func TestLs_JSON(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIDs []string
	}{
		{name: "default sort", args: []string{"ls", "--json"}, wantIDs: []string{"a", "b"}},
		{name: "price sort", args: []string{"ls", "--json", "--sort", "price"}, wantIDs: []string{"b", "a"}},
		{name: "favorites", args: []string{"ls", "--json", "--favorites"}, wantIDs: []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			f.writeTrip(t, "trip.yaml", lsTripYAML)

			require.NoError(t, f.run(t, tt.args...))

			var ids []string
			for _, line := range strings.Split(strings.TrimSpace(f.out.String()), "\n") {
				var info pointInfo
				require.NoError(t, json.Unmarshal([]byte(line), &info))
				ids = append(ids, info.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLs_JSONFields(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trip.yaml", lsTripYAML)

	require.NoError(t, f.run(t, "ls", "--json"))

	first := strings.SplitN(f.out.String(), "\n", 2)[0]
	var info pointInfo
	require.NoError(t, json.Unmarshal([]byte(first), &info))
	assert.Equal(t, "taxi", info.Type)
	assert.Equal(t, "Amsterdam", info.Destination)
	assert.Equal(t, []string{"Radio"}, info.Offers)
	assert.Equal(t, "02H 00M", info.Duration)
	assert.Equal(t, 100, info.BasePrice)
}

func TestLs_BadSort(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trip.yaml", lsTripYAML)

	assert.ErrorContains(t, f.run(t, "ls", "--sort", "random"), "unknown sort")
}

func TestLs_JSONErrors(t *testing.T) {
	tests := []struct {
		name         string
		trip         string
		args         []string
		wantMessage  string
		wantPatterns bool
	}{
		{
			name:        "bad sort",
			trip:        lsTripYAML,
			args:        []string{"--sort", "random"},
			wantMessage: "unknown sort",
		},
		{
			name:        "broken trip",
			trip:        "points: [{type: rocket}]",
			wantMessage: "rocket",
		},
		{
			name:         "no match",
			args:         []string{"nothing-here/*.yaml"},
			wantMessage:  "no trip files match",
			wantPatterns: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			if tt.trip != "" {
				f.writeTrip(t, "trip.yaml", tt.trip)
			}

			err := f.run(t, append([]string{"ls", "--json"}, tt.args...)...)
			require.Error(t, err, "failures exit non-zero")

			var got iojson.Error
			require.NoError(t, json.Unmarshal(f.out.Bytes(), &got))
			assert.Contains(t, got.Message, tt.wantMessage)
			if tt.wantPatterns {
				assert.Equal(t, []any{"nothing-here/*.yaml"}, got.Data["patterns"])
			} else {
				assert.Nil(t, got.Data)
			}
		})
	}
}

func TestLs_MissingTrip(t *testing.T) {
	f := newCLIFixture(t)

	require.NoError(t, f.run(t, "ls"))
	msgs := tuitest.StripANSI(f.msgs.String())
	assert.Contains(t, msgs, "No trip file at")
	assert.Contains(t, msgs, "No points found")
	assert.Empty(t, f.out.String())
}

func TestLs_Patterns(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trips/2024/jan.yaml", lsTripYAML)
	f.writeTrip(t, "trips/2024/feb/feb.yaml", lsTripYAML)
	f.writeTrip(t, "trips/notes.txt", "not a trip")

	require.NoError(t, f.run(t, "ls", filepath.Join(f.dir, "trips", "**", "*.yaml")))

	out := f.out.String()
	assert.True(t, strings.HasPrefix(out, "TRIP"), "multiple files add a trip column")
	assert.Equal(t, 2, strings.Count(out, "jan.yaml"))
	assert.Equal(t, 2, strings.Count(out, "feb.yaml"))
	assert.NotContains(t, out, "notes.txt")
}

func TestLs_PatternsNoMatch(t *testing.T) {
	f := newCLIFixture(t)

	err := f.run(t, "ls", filepath.Join(f.dir, "*.yaml"))
	assert.ErrorContains(t, err, "no trip files match")
}

func TestConfigValidate_Valid(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trip.yaml", lsTripYAML)

	require.NoError(t, f.run(t, "config", "validate"))

	msgs := tuitest.StripANSI(f.msgs.String())
	assert.Contains(t, msgs, "Configuration is valid")
	assert.NotContains(t, msgs, "Errors")
}

func TestConfigValidate_JSON(t *testing.T) {
	f := newCLIFixture(t)
	f.flags.Config.Keys.Favorite = []string{"enter"}

	err := f.run(t, "config", "validate", "--format", "json")
	require.Error(t, err, "invalid config exits non-zero")

	var report validationReport
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &report))
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "keys.favorite[0]", report.Errors[0].Field)
	assert.Contains(t, report.Errors[0].Message, "already bound to keys.expand")

	require.NotEmpty(t, report.Warnings)
	assert.Equal(t, "Trip", report.Warnings[0].Category)
}

func TestConfigValidate_TextErrors(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trip.yaml", "points: [{type: rocket}]")

	require.Error(t, f.run(t, "config", "validate"))

	msgs := tuitest.StripANSI(f.msgs.String())
	assert.Contains(t, msgs, "trip_file")
	assert.Contains(t, msgs, "1 error(s) found")
}

func TestFlags_ResolveTripFile(t *testing.T) {
	f := newCLIFixture(t)
	assert.Equal(t, filepath.Join(f.dir, "trip.yaml"), f.flags.ResolveTripFile())

	f.flags.TripFile = "/elsewhere/trip.yaml"
	assert.Equal(t, "/elsewhere/trip.yaml", f.flags.ResolveTripFile())

	noConfig := &Flags{DataDir: f.dir}
	assert.Equal(t, filepath.Join(f.dir, "trip.yaml"), noConfig.ResolveTripFile())
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_STATE_HOME", "/state")

	assert.Equal(t, "/cfg/waypoint/config.yaml", DefaultConfigPath())
	assert.Equal(t, "/data/waypoint", DefaultDataDir())
	assert.Equal(t, "/state/waypoint/waypoint.log", DefaultLogFile())
}

func TestTripFileCandidates(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "a.yaml", "")
	f.writeTrip(t, "nested/b.yml", "")
	f.writeTrip(t, "nested/c.json", "")

	got, err := tripFileCandidates(f.dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.yaml", "nested/b.yml"}, got)
}

func TestLs_Format(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trip.yaml", lsTripYAML)

	require.NoError(t, f.run(t, "ls", "--format", `{{.ID}}\t{{euro .BasePrice}}\t{{join .Offers "+"}}`))

	assert.Equal(t, "a\t€100\tRadio\nb\t€300\t\n", f.out.String())
}

func TestLs_FormatErrors(t *testing.T) {
	f := newCLIFixture(t)
	f.writeTrip(t, "trip.yaml", lsTripYAML)

	assert.ErrorContains(t, f.run(t, "ls", "--format", "{{.ID"), "parse template")
	assert.ErrorContains(t, f.run(t, "ls", "--format", "{{.Nope}}"), "point a")
}
