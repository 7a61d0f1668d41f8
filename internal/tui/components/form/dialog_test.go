package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialog(t *testing.T) {
	tab := tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	shiftTab := tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
	enter := tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})

	t.Run("creation focuses first field", func(t *testing.T) {
		f1 := NewTextField("Start", "", "")
		f2 := NewTextField("End", "", "")
		d := NewDialog("Edit", f1, f2)

		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.False(t, d.Submitted())
		assert.Equal(t, 0, d.focusedField)
	})

	t.Run("empty dialog", func(t *testing.T) {
		d := NewDialog("Empty")
		d.Update(tab)
		assert.False(t, d.Submitted())
		assert.Nil(t, d.Reset())
	})

	t.Run("tab wraps around", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		f3 := NewTextField("C", "", "")
		d := NewDialog("Test", f1, f2, f3)

		d.Update(tab)
		assert.True(t, f2.Focused())
		d.Update(tab)
		assert.True(t, f3.Focused())
		d.Update(tab)
		assert.True(t, f1.Focused())
		assert.False(t, f3.Focused())
		assert.False(t, d.Submitted())
	})

	t.Run("shift+tab wraps backwards", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", f1, f2)

		d.Update(shiftTab)
		assert.True(t, f2.Focused())
		assert.False(t, f1.Focused())
	})

	t.Run("single field keeps focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", f1)

		d.Update(shiftTab)
		assert.True(t, f1.Focused())
	})

	t.Run("enter advances then submits on last field", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", f1, f2)

		d.Update(enter)
		assert.True(t, f2.Focused())
		assert.False(t, d.Submitted())

		d.Update(enter)
		assert.True(t, d.Submitted())
	})

	t.Run("escape is not handled", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", f1)

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.False(t, d.Submitted())
		assert.False(t, d.CapturesEscape())
	})

	t.Run("reset refocuses first field", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", f1, f2)
		d.Update(enter)
		d.Update(enter)
		require.True(t, d.Submitted())

		d.Reset()

		assert.False(t, d.Submitted())
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
	})

	t.Run("view renders title and fields", func(t *testing.T) {
		f1 := NewTextField("Name", "enter name", "")
		f2 := NewSelectFormField("Color", Options("red", "blue"), "")
		d := NewDialog("Test Form", f1, f2)

		view := d.View()
		assert.Contains(t, view, "Test Form")
		assert.Contains(t, view, "Name")
		assert.Contains(t, view, "Color")
	})
}
