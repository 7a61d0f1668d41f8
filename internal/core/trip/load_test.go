package trip

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTrip = `
destinations:
  - id: ams
    name: Amsterdam
    description: Canals and bikes.
offers:
  - type: taxi
    offers:
      - id: taxi-upgrade
        title: Upgrade to business
        price: 120
points:
  - id: p1
    type: taxi
    destination: ams
    from: 2024-01-01T10:00
    to: 2024-01-01 12:00
    base_price: 1100
    offers: [taxi-upgrade]
  - type: sightseeing
    destination: ams
    from: 2024-01-02T09:00:00+01:00
    to: 2024-01-02T11:00:00+01:00
    base_price: 40
    is_favorite: true
`

func TestParse(t *testing.T) {
	tr, err := Parse([]byte(sampleTrip))
	require.NoError(t, err)

	require.Len(t, tr.Points, 2)
	require.Len(t, tr.Destinations, 1)
	require.Len(t, tr.Offers[PointTypeTaxi], 1)

	p1 := tr.Points[0]
	assert.Equal(t, "p1", p1.ID)
	assert.Equal(t, PointTypeTaxi, p1.Type)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local), p1.DueDate.From)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local), p1.DueDate.To)
	assert.Equal(t, []string{"taxi-upgrade"}, p1.Offers)
	assert.Equal(t, 1100, p1.BasePrice)

	p2 := tr.Points[1]
	_, err = uuid.Parse(p2.ID)
	assert.NoError(t, err, "missing ids are filled with a uuid")
	assert.True(t, p2.IsFavorite)
	assert.Equal(t, 2*time.Hour, p2.DueDate.Duration())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "unknown type",
			doc:     "points:\n  - {id: a, type: rocket, from: 2024-01-01T10:00, to: 2024-01-01T11:00}\n",
			wantErr: "unknown point type",
		},
		{
			name:    "bad date",
			doc:     "points:\n  - {id: a, type: bus, from: tomorrow, to: 2024-01-01T11:00}\n",
			wantErr: "unrecognized date",
		},
		{
			name:    "end before start",
			doc:     "points:\n  - {id: a, type: bus, from: 2024-01-01T12:00, to: 2024-01-01T11:00}\n",
			wantErr: "is before",
		},
		{
			name:    "unknown destination",
			doc:     "points:\n  - {id: a, type: bus, destination: nowhere, from: 2024-01-01T10:00, to: 2024-01-01T11:00}\n",
			wantErr: "unknown destination",
		},
		{
			name: "duplicate id",
			doc: "points:\n" +
				"  - {id: a, type: bus, from: 2024-01-01T10:00, to: 2024-01-01T11:00}\n" +
				"  - {id: a, type: bus, from: 2024-01-01T10:00, to: 2024-01-01T11:00}\n",
			wantErr: "duplicate id",
		},
		{
			name:    "offer group with unknown type",
			doc:     "offers:\n  - {type: rocket, offers: []}\n",
			wantErr: "unknown point type",
		},
		{
			name:    "destination without id",
			doc:     "destinations:\n  - {name: Nowhere}\n",
			wantErr: "destination without id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTrip), 0o644))

	tr, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, tr.Points, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTrip), 0o644))

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(sampleTrip+"\n"), 0o644))

	select {
	case ev := <-w.Events():
		assert.Equal(t, path, ev.Path)
		assert.False(t, ev.Timestamp.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for file change")
	}
}
