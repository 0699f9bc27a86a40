// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	quit    key.Binding
	newItem key.Binding
	pause   key.Binding
	resume  key.Binding
	end     key.Binding
	delete  key.Binding
	sync    key.Binding
	retry   key.Binding
	migrate key.Binding
	dismiss key.Binding
	login   key.Binding
	logout  key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem: key.NewBinding(key.WithKeys("n")),
	pause:   key.NewBinding(key.WithKeys("p")),
	resume:  key.NewBinding(key.WithKeys("r")),
	end:     key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	sync:    key.NewBinding(key.WithKeys("s")),
	retry:   key.NewBinding(key.WithKeys("t")),
	migrate: key.NewBinding(key.WithKeys("m")),
	dismiss: key.NewBinding(key.WithKeys("x")),
	login:   key.NewBinding(key.WithKeys("i")),
	logout:  key.NewBinding(key.WithKeys("o")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
