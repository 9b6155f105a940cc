package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Jump   key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next tab")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev tab")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Scroll: key.NewBinding(key.WithKeys("up", "down", "j", "k", "pgup", "pgdown", "ctrl+u", "ctrl+d"), key.WithHelp("j/k", "scroll")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) hints() []hint {
	bindings := []key.Binding{k.Prev, k.Next, k.Jump, k.Scroll, k.Quit}
	out := make([]hint, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, hint{key: b.Help().Key, desc: b.Help().Desc})
	}
	return out
}
