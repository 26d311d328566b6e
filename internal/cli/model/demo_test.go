package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swipectl/internal/cli/styles"
	"github.com/bnema/swipectl/internal/config"
)

func newTestModel(t *testing.T) DemoModel {
	t.Helper()
	snap := config.NewSnapshot(config.ControlsConfig{
		EnableVolumeGestures:     true,
		EnableBrightnessGestures: true,
		SaveAndRestoreBrightness: true,
	})
	return NewDemoModel(context.Background(), snap, styles.DefaultTheme())
}

func press(m DemoModel, r rune) DemoModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(DemoModel)
}

func TestDemoModel_CreateAttachesOverlay(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.root.HasView(m.overlay))

	m = press(m, 'c')

	assert.True(t, m.root.HasView(m.overlay))
}

func TestDemoModel_VolumeSwipe(t *testing.T) {
	m := press(newTestModel(t), 'c')
	before := m.volume.level

	m = press(m, 'k')

	assert.Greater(t, m.volume.level, before)
}

func TestDemoModel_BrightnessSwipe(t *testing.T) {
	m := press(newTestModel(t), 'c')
	before := m.screen.level

	m = press(m, 'n')

	assert.Less(t, m.screen.level, before)
}

func TestDemoModel_MuteKeyConsumed(t *testing.T) {
	m := press(newTestModel(t), 'c')
	require.True(t, m.volume.enabled)

	m = press(m, 'm')

	assert.False(t, m.volume.enabled)
	assert.Equal(t, 0, m.stats.defaultKeys, "consumed key must not reach default dispatch")
}

func TestDemoModel_SwipeSelfHealsWithoutCreate(t *testing.T) {
	m := newTestModel(t)

	m = press(m, 'k')

	assert.True(t, m.root.HasView(m.overlay), "first gesture must lazily initialize")
}

func TestDemoModel_ViewRenders(t *testing.T) {
	m := press(newTestModel(t), 'c')
	m = press(m, 'f')

	view := m.View()

	assert.Contains(t, view, "swipectl demo host")
	assert.Contains(t, view, "fullscreen")
}
