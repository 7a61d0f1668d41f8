package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/select, []string for multi-select
	Label() string // Display label for the field
}

// Option is a selectable choice. Value is what the field reports, Label is
// what the user sees.
type Option struct {
	Value string
	Label string
}

// Options builds options whose label equals their value.
func Options(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}
