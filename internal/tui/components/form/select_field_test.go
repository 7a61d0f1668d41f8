package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestSelectFormField(t *testing.T) {
	options := []Option{
		{Value: "ams", Label: "Amsterdam"},
		{Value: "gva", Label: "Geneva"},
		{Value: "cha", Label: "Chamonix"},
	}

	t.Run("creation with no default", func(t *testing.T) {
		f := NewSelectFormField("Destination", options, "")
		assert.Equal(t, "Destination", f.Label())
		assert.False(t, f.Focused())
		assert.Equal(t, "ams", f.Value())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewSelectFormField("Destination", options, "gva")
		assert.Equal(t, "gva", f.Value())
	})

	t.Run("invalid default falls back to first", func(t *testing.T) {
		f := NewSelectFormField("Destination", options, "nowhere")
		assert.Equal(t, "ams", f.Value())
	})

	t.Run("empty options", func(t *testing.T) {
		f := NewSelectFormField("Destination", nil, "")
		assert.Empty(t, f.Value())
		assert.Contains(t, f.View(), "Destination")
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewSelectFormField("Destination", options, "")
		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "ams", field.Value())
	})

	t.Run("moves when focused", func(t *testing.T) {
		f := NewSelectFormField("Destination", options, "")
		f.Focus()

		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "gva", field.Value())
	})

	t.Run("set value", func(t *testing.T) {
		f := NewSelectFormField("Destination", options, "ams")
		f.SetValue("cha")
		assert.Equal(t, "cha", f.Value())

		f.SetValue("unknown")
		assert.Equal(t, "ams", f.Value())
	})

	t.Run("view shows labels", func(t *testing.T) {
		f := NewSelectFormField("Destination", options, "")
		assert.Contains(t, f.View(), "Amsterdam")
		assert.False(t, f.IsFiltering())
	})
}
