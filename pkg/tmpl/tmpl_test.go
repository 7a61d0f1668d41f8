package tmpl

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Type   string
	From   time.Time
	Price  int
	Offers []string
}

func TestRender(t *testing.T) {
	data := row{
		ID:     "p1",
		Type:   "taxi",
		From:   time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC),
		Price:  120,
		Offers: []string{"Radio", "Upgrade"},
	}

	tests := []struct {
		name    string
		tmpl    string
		want    string
		wantErr string
	}{
		{name: "field", tmpl: "{{.ID}}", want: "p1"},
		{name: "join", tmpl: `{{join .Offers ", "}}`, want: "Radio, Upgrade"},
		{name: "upper", tmpl: "{{upper .Type}}", want: "TAXI"},
		{name: "lower", tmpl: `{{lower "AMS"}}`, want: "ams"},
		{name: "date", tmpl: `{{date "Jan 02 15:04" .From}}`, want: "Mar 05 09:30"},
		{name: "euro", tmpl: "{{euro .Price}}", want: "€120"},
		{name: "escaped tab", tmpl: `{{.ID}}\t{{.Type}}`, want: "p1\ttaxi"},
		{name: "escaped newline", tmpl: `{{.ID}}\n{{.Type}}`, want: "p1\ntaxi"},
		{name: "parse error", tmpl: "{{.ID", wantErr: "parse template"},
		{name: "unknown field", tmpl: "{{.Missing}}", wantErr: "execute template"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, data)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_MissingMapKey(t *testing.T) {
	_, err := Render("{{.nope}}", map[string]string{"id": "p1"})
	assert.ErrorContains(t, err, "execute template")
}

func TestTemplate_ExecuteAppendsNewline(t *testing.T) {
	tpl, err := Parse("{{.}}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.Execute(&buf, "a"))
	require.NoError(t, tpl.Execute(&buf, "b"))

	assert.Equal(t, "a\nb\n", buf.String())
}
