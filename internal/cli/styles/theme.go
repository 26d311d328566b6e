// Package styles holds the lipgloss theme for the interactive demo.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the demo's visual styles.
type Theme struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	BarFill  lipgloss.Style
	BarEmpty lipgloss.Style
	LogLine  lipgloss.Style
	Consumed lipgloss.Style
	Passed   lipgloss.Style
}

// DefaultTheme returns the standard demo theme.
func DefaultTheme() *Theme {
	return &Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		BarFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		LogLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Consumed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Passed:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// RenderBar renders a labeled horizontal bar like "volume ███░░ 60".
func (t *Theme) RenderBar(label string, value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	bar := t.BarFill.Render(strings.Repeat("█", filled)) +
		t.BarEmpty.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s %s",
		t.Label.Width(10).Render(label),
		bar,
		t.Value.Render(fmt.Sprintf("%3d", value)))
}

// DemoKeyMap is the keybinding set for the demo.
type DemoKeyMap struct {
	VolumeUp       key.Binding
	VolumeDown     key.Binding
	BrightnessUp   key.Binding
	BrightnessDown key.Binding
	Mute           key.Binding
	Fullscreen     key.Binding
	Embedded       key.Binding
	Background     key.Binding
	Create         key.Binding
	Start          key.Binding
	Destroy        key.Binding
	Quit           key.Binding
}

// DefaultDemoKeyMap returns the standard demo bindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		VolumeUp:       key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "swipe volume up")),
		VolumeDown:     key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "swipe volume down")),
		BrightnessUp:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "swipe brightness up")),
		BrightnessDown: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "swipe brightness down")),
		Mute:           key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute key event")),
		Fullscreen:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Embedded:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "embedded")),
		Background:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "background")),
		Create:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create signal")),
		Start:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start signal")),
		Destroy:        key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "destroy signal")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.VolumeUp, k.VolumeDown, k.BrightnessUp, k.BrightnessDown, k.Mute, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.VolumeUp, k.VolumeDown, k.BrightnessUp, k.BrightnessDown},
		{k.Mute, k.Fullscreen, k.Embedded, k.Background},
		{k.Create, k.Start, k.Destroy, k.Quit},
	}
}
