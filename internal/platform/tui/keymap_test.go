package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"wasd a", runeKey('a'), core.ActionLeft, false},
		{"wasd s", runeKey('s'), core.ActionDown, false},
		{"wasd w", runeKey('w'), core.ActionUp, false},
		{"wasd d", runeKey('d'), core.ActionRight, false},
		{"vim h", runeKey('h'), core.ActionLeft, false},
		{"vim j", runeKey('j'), core.ActionDown, false},
		{"vim k", runeKey('k'), core.ActionUp, false},
		{"vim l", runeKey('l'), core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"escape quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %s, %v, expected %s, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameAccumulates(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionUp) {
		t.Error("frame should hold every mapped key since the last clear")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestDirectional(t *testing.T) {
	in := core.InputOf(core.ActionLeft, core.ActionPause, core.ActionRestart, core.ActionRight)
	out := directional(in)

	if !out.Has(core.ActionLeft) || !out.Has(core.ActionRight) {
		t.Error("directional actions should be kept")
	}
	if out.Has(core.ActionPause) || out.Has(core.ActionRestart) {
		t.Error("control actions should be dropped")
	}
}

func TestHelpKeysMatchMapper(t *testing.T) {
	km := NewKeyMapper()
	h := km.HelpKeys()

	if !key.Matches(runeKey('h'), h.Move) || !key.Matches(tea.KeyMsg{Type: tea.KeyUp}, h.Move) {
		t.Error("help Move binding should cover every steering key")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeySpace}, h.Pause) {
		t.Error("help Pause binding should include space")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, h.Quit) || key.Matches(runeKey('r'), h.Quit) {
		t.Error("help Quit binding should match the quit keys only")
	}
}
