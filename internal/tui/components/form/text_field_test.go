package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("Price", "0", "")
		assert.Equal(t, "Price", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("Price", "0", "1100")
		assert.Equal(t, "1100", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Price", "", "")
		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("focus returns a cmd", func(t *testing.T) {
		f := NewTextField("Price", "", "")
		assert.NotNil(t, f.Focus())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Price", "", "")
		field, cmd := f.Update(tea.KeyPressMsg(tea.Key{Code: 'a', Text: "a"}))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("typing when focused", func(t *testing.T) {
		f := NewTextField("Price", "", "")
		f.Focus()
		f.Update(tea.KeyPressMsg(tea.Key{Code: '4', Text: "4"}))
		f.Update(tea.KeyPressMsg(tea.Key{Code: '2', Text: "2"}))
		assert.Equal(t, "42", f.Value())
	})

	t.Run("set value replaces text", func(t *testing.T) {
		f := NewTextField("Price", "", "10")
		f.SetValue("250")
		assert.Equal(t, "250", f.Value())
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextField("Price", "", "")
		unfocused := f.View()
		assert.Contains(t, unfocused, "Price")

		f.Focus()
		assert.NotEqual(t, unfocused, f.View())
	})
}
