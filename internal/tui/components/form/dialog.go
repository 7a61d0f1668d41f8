package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/waypoint/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// Dialog is a form container that manages focus cycling and submission
// across a set of form fields. Cancellation is left to the owner.
type Dialog struct {
	fields       []Field
	focusedField int
	submitted    bool
	Title        string
}

// NewDialog creates a form dialog with the given fields.
// The first field is focused automatically.
func NewDialog(title string, fields ...Field) *Dialog {
	d := &Dialog{
		fields: fields,
		Title:  title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog. Tab and shift+tab cycle focus
// and wrap around; enter advances and submits from the last field.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || d.isFocusedFieldFiltering() {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.moveFocus(1)
	case "shift+tab":
		return d.moveFocus(-1)
	case "enter":
		if d.focusedField == len(d.fields)-1 {
			d.submitted = true
			return d, nil
		}
		return d.moveFocus(1)
	}

	return d.updateFocusedField(msg)
}

// View renders the title and all fields vertically with spacing.
func (d *Dialog) View() string {
	parts := make([]string, 0, len(d.fields)*2+1)
	if d.Title != "" {
		parts = append(parts, styles.FormTitleStyle.Render(d.Title))
	}
	for i, field := range d.fields {
		if i > 0 || d.Title != "" {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// CapturesEscape reports whether the focused field wants escape for itself,
// which is the case while a list filter is being typed.
func (d *Dialog) CapturesEscape() bool { return d.isFocusedFieldFiltering() }

// Reset clears the submitted flag and moves focus back to the first field.
func (d *Dialog) Reset() tea.Cmd {
	d.submitted = false
	if len(d.fields) == 0 {
		return nil
	}
	d.fields[d.focusedField].Blur()
	d.focusedField = 0
	return d.fields[0].Focus()
}

func (d *Dialog) moveFocus(delta int) (*Dialog, tea.Cmd) {
	if len(d.fields) < 2 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField = (d.focusedField + delta + len(d.fields)) % len(d.fields)
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
