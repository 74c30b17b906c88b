package encode

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps token classes to sprint functions.
type Colors struct {
	Field  func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
	Null   func(string, ...any) string
	Sep    func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field:  color.RGB(196, 96, 16).SprintfFunc(),
		String: color.RGB(128, 168, 196).SprintfFunc(),
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.CyanString,
		Null:   color.RGB(168, 0, 196).SprintfFunc(),
		Sep:    color.RGB(255, 0, 196).SprintfFunc(),
	}
}

func NoColors() *Colors {
	return &Colors{
		Field:  fmt.Sprintf,
		String: fmt.Sprintf,
		Number: fmt.Sprintf,
		Bool:   fmt.Sprintf,
		Null:   fmt.Sprintf,
		Sep:    fmt.Sprintf,
	}
}
