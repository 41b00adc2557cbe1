package data

import (
	"fmt"
	"os"

	"github.com/fluxframe/frame/internal/asset"
	"gopkg.in/yaml.v3"
)

// Click handlers a button may name in the layout file.
const (
	OnClickQuit            = "quit"
	OnClickChangeMenuState = "change_menu_state"
)

// ButtonEntry defines one menu button and the scene that hosts it.
type ButtonEntry struct {
	Name        string            `yaml:"name"`
	Sprite      string            `yaml:"sprite"`
	PixPerFrame int               `yaml:"pix_per_frame"`
	X           uint8             `yaml:"x"`
	Y           uint8             `yaml:"y"`
	Animations  []asset.Animation `yaml:"animations"`
	Framerate   float64           `yaml:"framerate"`
	OnClick     string            `yaml:"on_click"`
}

// MenuLayout lists the menu buttons in scene order.
type MenuLayout struct {
	Buttons []ButtonEntry `yaml:"buttons"`
}

// LoadMenuLayout loads menu.yaml.
func LoadMenuLayout(path string) (*MenuLayout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu layout: %w", err)
	}
	l, err := ParseMenuLayout(raw)
	if err != nil {
		return nil, fmt.Errorf("menu layout %s: %w", path, err)
	}
	return l, nil
}

// ParseMenuLayout decodes and validates a layout document.
func ParseMenuLayout(raw []byte) (*MenuLayout, error) {
	var l MenuLayout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse menu layout: %w", err)
	}
	for i := range l.Buttons {
		b := &l.Buttons[i]
		switch b.OnClick {
		case OnClickQuit, OnClickChangeMenuState:
		default:
			return nil, fmt.Errorf("button %d (%s): unknown on_click %q", i, b.Name, b.OnClick)
		}
		if b.PixPerFrame <= 0 {
			return nil, fmt.Errorf("button %d (%s): pix_per_frame must be > 0", i, b.Name)
		}
	}
	return &l, nil
}

// Count returns the number of buttons.
func (l *MenuLayout) Count() int {
	return len(l.Buttons)
}
