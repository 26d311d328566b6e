// Package model contains the Bubble Tea model simulating a host screen
// around a live coordinator.
package model

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/swipectl/internal/cli/styles"
	"github.com/bnema/swipectl/internal/config"
	"github.com/bnema/swipectl/internal/host"
	"github.com/bnema/swipectl/internal/player"
)

const maxLogLines = 8

// hostStats counts events that fell through to the host's default
// dispatch path.
type hostStats struct {
	defaultTouches int
	defaultKeys    int
}

// DemoModel drives a real coordinator with synthetic lifecycle and
// input signals and renders the observable state.
type DemoModel struct {
	coord   *host.Coordinator
	root    *demoRoot
	overlay *demoOverlay
	volume  *demoVolume
	screen  *demoBrightness
	states  *player.StateStream
	stats   *hostStats
	snap    config.Snapshot

	theme *styles.Theme
	keys  styles.DemoKeyMap
	help  help.Model

	logs   []string
	width  int
	height int
}

// NewDemoModel builds the demo world: stub collaborators, a state
// stream and a coordinator bound to the given feature-flag snapshot.
func NewDemoModel(ctx context.Context, snap config.Snapshot, theme *styles.Theme) DemoModel {
	root := &demoRoot{rect: host.Rect{Width: 1920, Height: 1080}}
	overlay := &demoOverlay{name: "swipe-overlay"}
	volume := &demoVolume{level: 50, enabled: true}
	screen := &demoBrightness{level: 70, saved: 70, defaultLevel: 80}
	states := player.NewStateStream()
	stats := &hostStats{}

	deps := host.Deps{
		Settings: snap,
		Root:     root,
		States:   states,
		NewVolume: func() host.VolumeController {
			return volume
		},
		NewBrightness: func() host.BrightnessController {
			return screen
		},
		NewOverlay: func() host.OverlaySurface {
			return overlay
		},
		NewZones: func(bounds func() host.Rect) host.ZoneLocator {
			return &demoZones{bounds: bounds}
		},
		NewKeys: func() host.KeyInterpreter {
			return &demoKeys{volume: volume, hasVol: snap.VolumeGesturesEnabled}
		},
		NewClassicGesture: func(env host.GestureEnv) host.GestureInterpreter {
			return newDemoGesture(env, volume, screen, false)
		},
		NewPressGesture: func(env host.GestureEnv) host.GestureInterpreter {
			return newDemoGesture(env, volume, screen, true)
		},
		DefaultTouch: func(_ host.TouchEvent) bool {
			stats.defaultTouches++
			return false
		},
		DefaultKey: func(_ host.KeyEvent) bool {
			stats.defaultKeys++
			return false
		},
	}

	return DemoModel{
		coord:   host.New(ctx, deps),
		root:    root,
		overlay: overlay,
		volume:  volume,
		screen:  screen,
		states:  states,
		stats:   stats,
		snap:    snap,
		theme:   theme,
		keys:    styles.DefaultDemoKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Create):
			m.coord.OnCreate()
			return m.log("create signal delivered"), nil
		case key.Matches(msg, m.keys.Start):
			m.coord.OnStart()
			return m.log("start signal delivered (overlay reattached)"), nil
		case key.Matches(msg, m.keys.Destroy):
			m.coord.OnDestroy()
			return m.log("destroy signal delivered"), nil

		case key.Matches(msg, m.keys.VolumeUp):
			return m.swipe("volume", 0.75, 60), nil
		case key.Matches(msg, m.keys.VolumeDown):
			return m.swipe("volume", 0.75, -60), nil
		case key.Matches(msg, m.keys.BrightnessUp):
			return m.swipe("brightness", 0.25, 60), nil
		case key.Matches(msg, m.keys.BrightnessDown):
			return m.swipe("brightness", 0.25, -60), nil

		case key.Matches(msg, m.keys.Mute):
			consumed := m.coord.DispatchKey(&host.KeyEvent{Code: muteKey, Pressed: true, When: time.Now()})
			return m.log(fmt.Sprintf("key mute consumed=%v", consumed)), nil

		case key.Matches(msg, m.keys.Fullscreen):
			return m.publish(player.StateFullscreen), nil
		case key.Matches(msg, m.keys.Embedded):
			return m.publish(player.StateEmbedded), nil
		case key.Matches(msg, m.keys.Background):
			return m.publish(player.StateBackground), nil
		}
	}

	return m, nil
}

// swipe emits a synthetic down/move/up touch sequence at the given
// horizontal fraction of the screen, moving by delta pixels upward.
func (m DemoModel) swipe(what string, xFrac, delta float64) DemoModel {
	x := m.root.rect.X + m.root.rect.Width*xFrac
	y := m.root.rect.Y + m.root.rect.Height/2

	events := []host.TouchEvent{
		{Phase: host.TouchDown, X: x, Y: y},
		{Phase: host.TouchMove, X: x, Y: y - delta/2},
		{Phase: host.TouchMove, X: x, Y: y - delta},
		{Phase: host.TouchUp, X: x, Y: y - delta},
	}

	consumed := 0
	for i := range events {
		events[i].When = time.Now()
		if m.coord.DispatchTouch(&events[i]) {
			consumed++
		}
	}

	return m.log(fmt.Sprintf("%s swipe: %d/%d events consumed", what, consumed, len(events)))
}

func (m DemoModel) publish(state player.State) DemoModel {
	m.states.Publish(state)
	return m.log("player state -> " + state.String())
}

func (m DemoModel) log(line string) DemoModel {
	m.logs = append(m.logs, line)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
	return m
}

// View implements tea.Model.
func (m DemoModel) View() string {
	t := m.theme

	state := "hidden"
	if s, ok := m.states.Last(); ok {
		state = s.String()
	}

	attached := "no"
	if m.root.HasView(m.overlay) {
		attached = "yes"
	}

	audio := "enabled"
	if !m.volume.enabled {
		audio = "muted"
	}

	status := lipgloss.JoinVertical(lipgloss.Left,
		t.RenderBar("volume", m.volume.level, 100, 30),
		t.RenderBar("brightness", m.screen.level, 100, 30),
		"",
		t.Label.Render("player state  ")+t.Value.Render(state),
		t.Label.Render("overlay       ")+t.Value.Render(attached),
		t.Label.Render("audio         ")+t.Value.Render(audio),
		t.Label.Render("pass-through  ")+t.Value.Render(
			fmt.Sprintf("%d touch, %d key", m.stats.defaultTouches, m.stats.defaultKeys)),
	)

	logLines := ""
	for _, l := range m.logs {
		logLines += t.LogLine.Render(l) + "\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("swipectl demo host"),
		t.Panel.Render(status),
		t.Panel.Width(60).Render(logLines),
		m.help.View(m.keys),
	)
}
