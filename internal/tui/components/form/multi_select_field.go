package form

import (
	"io"
	"slices"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/waypoint/internal/core/styles"
)

// MultiSelectField is a multi-select form field with checkbox toggles.
type MultiSelectField struct {
	list    list.Model
	options []Option
	checked map[int]bool
	label_  string
	empty   string
	focused bool
}

// multiSelectDelegate renders items with checkbox state.
type multiSelectDelegate struct {
	checked *map[int]bool
}

func (d multiSelectDelegate) Height() int                             { return 1 }
func (d multiSelectDelegate) Spacing() int                            { return 0 }
func (d multiSelectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d multiSelectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	check := styles.IconUnchecked + " "
	if (*d.checked)[item.index] {
		check = styles.IconChecked + " "
	}

	style := styles.SelectFieldItemStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectFieldItemSelectedStyle
		cursor = styles.SelectFieldCursorStyle.Render(styles.IconCursor) + " "
	}

	_, _ = io.WriteString(w, cursor+style.Render(check+item.label))
}

// NewMultiSelectFormField creates a multi-select field. Options whose value
// is in selected start checked.
func NewMultiSelectFormField(label string, options []Option, selected []string) *MultiSelectField {
	f := &MultiSelectField{
		checked: make(map[int]bool),
		label_:  label,
		empty:   "nothing to choose",
	}
	f.list = newOptionList(options, multiSelectDelegate{checked: &f.checked})
	f.options = options
	f.SetSelected(selected)
	return f
}

// WithEmptyText sets the text shown when there are no options.
func (f *MultiSelectField) WithEmptyText(s string) *MultiSelectField {
	f.empty = s
	return f
}

func (f *MultiSelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && !f.list.SettingFilter() {
		if keyMsg.String() == "space" {
			if si, ok := f.list.SelectedItem().(selectItem); ok {
				f.checked[si.index] = !f.checked[si.index]
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *MultiSelectField) View() string {
	if len(f.options) == 0 {
		return fieldFrame(f.label_, f.focused, styles.TextMutedStyle.Render(f.empty))
	}
	if f.list.SettingFilter() {
		return fieldFrame(f.label_, f.focused, f.list.FilterInput.View(), f.list.View())
	}
	return fieldFrame(f.label_, f.focused, f.list.View())
}

func (f *MultiSelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *MultiSelectField) Blur() {
	f.focused = false
}

func (f *MultiSelectField) Focused() bool { return f.focused }
func (f *MultiSelectField) Label() string { return f.label_ }

// Value returns the values of the checked options as []string.
func (f *MultiSelectField) Value() any {
	selected := []string{}
	for i, opt := range f.options {
		if f.checked[i] {
			selected = append(selected, opt.Value)
		}
	}
	return selected
}

// SetSelected checks exactly the options whose value is in values.
func (f *MultiSelectField) SetSelected(values []string) {
	clear(f.checked)
	for i, opt := range f.options {
		if slices.Contains(values, opt.Value) {
			f.checked[i] = true
		}
	}
}

// SetOptions swaps the option set, clears any filter and checks the options
// whose value is in selected.
func (f *MultiSelectField) SetOptions(options []Option, selected []string) tea.Cmd {
	f.options = options
	f.list.ResetFilter()
	cmd := f.list.SetItems(optionItems(options))
	f.list.SetSize(listWidth, listHeight(len(options)))
	f.list.SetShowPagination(len(options) > maxVisible)
	f.list.Select(0)
	f.SetSelected(selected)
	return cmd
}

// IsFiltering returns whether the list is currently filtering.
func (f *MultiSelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}
