package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// actionBinding ties a set of keys to a game action.
type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// menuBinding ties a set of keys to a menu action.
type menuBinding struct {
	action  MenuAction
	binding key.Binding
}

func bind(k ...string) key.Binding {
	return key.NewBinding(key.WithKeys(k...))
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{core.ActionQuit, bind("ctrl+c", "q", "esc")},
			{core.ActionLeft, bind("left", "a", "h")},
			{core.ActionDown, bind("down", "s", "j")},
			{core.ActionUp, bind("up", "w", "k")},
			{core.ActionRight, bind("right", "d", "l")},
			{core.ActionConfirm, bind("enter")},
			{core.ActionBack, bind("b")},
			{core.ActionPause, bind("p", " ")},
			{core.ActionRestart, bind("r")},
		},
		menu: []menuBinding{
			{MenuActionQuit, bind("ctrl+c", "q")},
			{MenuActionUp, bind("up", "w", "k")},
			{MenuActionDown, bind("down", "s", "j")},
			{MenuActionSelect, bind("enter", " ")},
			{MenuActionBack, bind("esc", "b")},
			{MenuActionScoreboard, bind("tab")},
		},
	}
}

// MapKey translates a key message to a game action (ActionNone when unbound)
// and reports whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to frame and reports whether it asks to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction is an action in the variant picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// GameKeyMap is the in-game help bar.
type GameKeyMap struct {
	Move    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Move}, {k.Pause, k.Restart, k.Quit}}
}

// HelpKeys builds the help bar from the mapper's own bindings so the two never drift.
func (km *KeyMapper) HelpKeys() GameKeyMap {
	var move []string
	var h GameKeyMap
	for _, b := range km.game {
		switch b.action {
		case core.ActionLeft, core.ActionDown, core.ActionUp, core.ActionRight:
			move = append(move, b.binding.Keys()...)
		case core.ActionPause:
			h.Pause = key.NewBinding(key.WithKeys(b.binding.Keys()...), key.WithHelp("p", "pause"))
		case core.ActionRestart:
			h.Restart = key.NewBinding(key.WithKeys(b.binding.Keys()...), key.WithHelp("r", "restart"))
		case core.ActionQuit:
			h.Quit = key.NewBinding(key.WithKeys(b.binding.Keys()...), key.WithHelp("esc/q", "quit"))
		}
	}
	h.Move = key.NewBinding(key.WithKeys(move...), key.WithHelp("arrows/wasd/hjkl", "steer"))
	return h
}

// directional keeps only the steering actions of a frame.
func directional(in core.InputFrame) core.InputFrame {
	var out core.InputFrame
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft, core.ActionDown, core.ActionUp, core.ActionRight:
			out.Set(a)
		}
	}
	return out
}
