package form

import (
	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/waypoint/internal/core/styles"
)

const (
	listWidth  = 40
	maxVisible = 8
)

// selectItem is the list item used by select and multi-select fields.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }

func optionItems(options []Option) []list.Item {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt.Label, index: i}
	}
	return items
}

func listHeight(n int) int {
	return max(min(n, maxVisible), 1)
}

// newOptionList builds the list.Model shared by select and multi-select fields.
func newOptionList(options []Option, delegate list.ItemDelegate) list.Model {
	l := list.New(optionItems(options), delegate, listWidth, listHeight(len(options)))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	// The field lives inside a larger program; it must never quit it.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	l.FilterInput.Prompt = "/ "
	filterStyles := textinput.DefaultStyles(true)
	filterStyles.Focused.Prompt = styles.TextPrimaryStyle
	filterStyles.Cursor.Color = styles.ColorPrimary
	l.FilterInput.SetStyles(filterStyles)

	return l
}

// fieldFrame renders a titled, bordered field body.
func fieldFrame(label string, focused bool, body ...string) string {
	titleStyle := styles.TextMutedStyle
	borderStyle := styles.FormFieldStyle
	if focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	parts := append([]string{titleStyle.Render(label)}, body...)
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
