package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down      key.Binding
	NextFilter    key.Binding
	PrevFilter    key.Binding
	PickFilter    key.Binding
	Add           key.Binding
	Cart          key.Binding
	Close         key.Binding
	Inc, Dec      key.Binding
	Remove        key.Binding
	Checkout      key.Binding
	Quit          key.Binding
	cartOpenState bool
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextFilter: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next filter")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev filter")),
		PickFilter: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "filter")),
		Add:        key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter/a", "add to cart")),
		Cart:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close cart")),
		Inc:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Dec:        key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "less")),
		Remove:     key.NewBinding(key.WithKeys("x", "d", "delete"), key.WithHelp("x", "remove")),
		Checkout:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "checkout")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp shows the bindings that apply to whichever pane has focus.
func (k keyMap) ShortHelp() []key.Binding {
	if k.cartOpenState {
		return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Remove, k.Checkout, k.Close, k.Quit}
	}
	return []key.Binding{k.Up, k.Down, k.Add, k.NextFilter, k.PickFilter, k.Cart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add},
		{k.NextFilter, k.PrevFilter, k.PickFilter},
		{k.Cart, k.Inc, k.Dec, k.Remove, k.Checkout, k.Close},
		{k.Quit},
	}
}
