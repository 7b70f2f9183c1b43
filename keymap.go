package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type KeyHandler func(key string) bool

func CreateKeyHandler(f func()) KeyHandler {
	return func(key string) bool {
		f()
		return true
	}
}

type KeyMap map[string]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

func (km KeyMap) HandleKey(key string) bool {
	if handler, ok := km[key]; ok {
		return handler(key)
	} else {
		return false
	}
}

func (km KeyMap) Bind(key string, f func()) {
	km[key] = CreateKeyHandler(f)
}

// KeyName returns the keymap name of a key press, with modifiers prefixed
// as C-, M- and S-. Bare modifier presses yield an empty name.
func KeyName(key glfw.Key, scancode int, modes glfw.ModifierKey) string {
	var keyName string
	switch key {
	case glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper:
		return ""
	case glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper:
		return ""
	case glfw.KeySpace:
		keyName = "Space"
	case glfw.KeyEscape:
		keyName = "Escape"
	case glfw.KeyEnter:
		keyName = "Enter"
	case glfw.KeyTab:
		keyName = "Tab"
	case glfw.KeyF1:
		keyName = "F1"
	default:
		keyName = glfw.GetKeyName(key, scancode)
	}
	if keyName == "" {
		return ""
	}
	if modes&glfw.ModShift != 0 {
		keyName = "S-" + keyName
	}
	if modes&glfw.ModAlt != 0 {
		keyName = "M-" + keyName
	}
	if modes&glfw.ModControl != 0 {
		keyName = "C-" + keyName
	}
	return keyName
}
