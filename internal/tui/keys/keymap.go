package keys

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/waypoint/internal/core/config"
)

// KeyMap holds the key bindings of the point list. Point actions come from
// config, navigation keys are fixed.
type KeyMap struct {
	Expand   key.Binding
	Favorite key.Binding
	Submit   key.Binding
	Rollup   key.Binding
	Delete   key.Binding
	Cancel   key.Binding

	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	Sort      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NewKeyMap builds the key map from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Expand:   binding(cfg.Expand, "edit"),
		Favorite: binding(cfg.Favorite, "favorite"),
		Submit:   binding(cfg.Submit, "save"),
		Rollup:   binding(cfg.Rollup, "close"),
		Delete:   binding(cfg.Delete, "delete"),
		Cancel:   binding(cfg.Cancel, "cancel"),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// DefaultKeyMap returns the key map for the built-in key names.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeys())
}

func binding(names []string, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(names, "/"), help),
	)
}

// ShortHelp returns the bindings shown while browsing the list.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Favorite, k.Sort, k.Help, k.Quit}
}

// FullHelp returns list bindings and edit form bindings as two columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		k.EditHelp(),
	}
}

// EditHelp returns the bindings active inside an edit form.
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Rollup, k.Delete, k.Cancel}
}
