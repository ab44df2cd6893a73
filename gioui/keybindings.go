package gioui

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gioui.org/io/key"
	"github.com/rossnomann/fretboard/config"
	"gopkg.in/yaml.v3"
)

type (
	KeyAction string

	KeyBinding struct {
		Key                                        string
		Shortcut, Ctrl, Command, Shift, Alt, Super bool
		Action                                     KeyAction
	}

	// KeyMap resolves key presses to actions and actions to a hint of the
	// key that triggers them.
	KeyMap struct {
		bindings map[key.Event]KeyAction
		hints    map[KeyAction]string
	}
)

const (
	NextTuning     KeyAction = "NextTuning"
	PrevTuning     KeyAction = "PrevTuning"
	NextTheme      KeyAction = "NextTheme"
	ToggleNotation KeyAction = "ToggleNotation"
	Quit           KeyAction = "Quit"
)

const KeyBindingsFile = "keybindings.yml"

//go:embed keybindings.yml
var defaultKeyBindings []byte

// LoadKeyMap returns the default key bindings followed by the ones of the
// user file. A user binding with an empty action unbinds the key.
func LoadKeyMap() (KeyMap, error) {
	var keyBindings, userKeyBindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(defaultKeyBindings))
	dec.KnownFields(true)
	if err := dec.Decode(&keyBindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	var warn error
	if _, err := config.UserPath(KeyBindingsFile); err == nil {
		if err := config.ReadCustomConfig(KeyBindingsFile, &userKeyBindings); err == nil {
			keyBindings = append(keyBindings, userKeyBindings...)
		} else if !errors.Is(err, fs.ErrNotExist) {
			warn = err
		}
	}
	return MakeKeyMap(keyBindings), warn
}

func MakeKeyMap(keyBindings []KeyBinding) KeyMap {
	m := KeyMap{bindings: map[key.Event]KeyAction{}, hints: map[KeyAction]string{}}
	for _, kb := range keyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Command {
			mods |= key.ModCommand
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		if kb.Super {
			mods |= key.ModSuper
		}

		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		if action, ok := m.bindings[keyEvent]; ok { // rebinding a key drops its old hint
			delete(m.hints, action)
		}
		if kb.Action == "" {
			delete(m.bindings, keyEvent)
			continue
		}
		m.bindings[keyEvent] = kb.Action
		// last binding of an action wins for displaying the hint
		modString := strings.ReplaceAll(mods.String(), "-", "+")
		text := kb.Key
		if modString != "" {
			text = modString + "+" + text
		}
		m.hints[kb.Action] = text
	}
	return m
}

// Action returns the action bound to e.
func (m KeyMap) Action(e key.Event) (KeyAction, bool) {
	if e.State != key.Press {
		return "", false
	}
	a, ok := m.bindings[key.Event{Name: e.Name, Modifiers: e.Modifiers, State: key.Press}]
	return a, ok
}

// Hint appends the key of action to hint using format, e.g. " (%s)".
func (m KeyMap) Hint(hint, format string, action KeyAction) string {
	if k := m.hints[action]; k != "" {
		return hint + fmt.Sprintf(format, k)
	}
	return hint
}
