package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestMultiSelectField(t *testing.T) {
	options := []Option{
		{Value: "luggage", Label: "Add luggage +30"},
		{Value: "comfort", Label: "Comfort class +100"},
		{Value: "meal", Label: "Add meal +15"},
	}
	space := tea.KeyPressMsg(tea.Key{Code: ' '})
	down := tea.KeyPressMsg(tea.Key{Code: 'j'})

	t.Run("creation defaults", func(t *testing.T) {
		f := NewMultiSelectFormField("Offers", options, nil)
		assert.Equal(t, "Offers", f.Label())
		assert.False(t, f.Focused())
		assert.Equal(t, []string{}, f.Value())
	})

	t.Run("creation with selection", func(t *testing.T) {
		f := NewMultiSelectFormField("Offers", options, []string{"meal", "luggage", "unknown"})
		assert.Equal(t, []string{"luggage", "meal"}, f.Value())
	})

	t.Run("toggle selection with space", func(t *testing.T) {
		f := NewMultiSelectFormField("Offers", options, nil)
		f.Focus()

		f.Update(space)
		assert.Equal(t, []string{"luggage"}, f.Value())

		f.Update(down)
		f.Update(space)
		assert.Equal(t, []string{"luggage", "comfort"}, f.Value())

		f.Update(space)
		assert.Equal(t, []string{"luggage"}, f.Value())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewMultiSelectFormField("Offers", options, nil)
		f.Update(space)
		assert.Empty(t, f.Value())
	})

	t.Run("set selected replaces checks", func(t *testing.T) {
		f := NewMultiSelectFormField("Offers", options, []string{"luggage"})
		f.SetSelected([]string{"comfort"})
		assert.Equal(t, []string{"comfort"}, f.Value())
	})

	t.Run("set options swaps the list", func(t *testing.T) {
		f := NewMultiSelectFormField("Offers", options, []string{"luggage"})

		f.SetOptions([]Option{{Value: "radio", Label: "Choose radio"}}, []string{"radio"})

		assert.Equal(t, []string{"radio"}, f.Value())
		assert.Contains(t, f.View(), "Choose radio")
		assert.NotContains(t, f.View(), "luggage")
	})

	t.Run("empty options show placeholder", func(t *testing.T) {
		f := NewMultiSelectFormField("Offers", nil, nil).WithEmptyText("no offers")
		assert.Equal(t, []string{}, f.Value())
		assert.Contains(t, f.View(), "no offers")
	})
}
