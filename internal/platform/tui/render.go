package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightline/internal/danger"
	"github.com/vovakirdan/lightline/internal/engine"
	"github.com/vovakirdan/lightline/internal/procgen"
)

// Map glyphs. The renderer only sees the snapshot, so everything drawn here
// is already filtered by the engine's information policy.
const (
	glyphWall      = '#'
	glyphFloor     = '.'
	glyphWater     = '~'
	glyphTrail     = '*'
	glyphCut       = '%'
	glyphPlayer    = '@'
	glyphHunter    = 'H'
	glyphPending   = '!'
	glyphExit      = '>'
	glyphStart     = '<'
	glyphBeacon    = '^'
	glyphRelic     = '$'
	glyphSwitchOff = '/'
	glyphSwitchOn  = '\\'
)

// glyphStyles maps map glyphs to lipgloss styles.
var glyphStyles = map[rune]lipgloss.Style{
	glyphWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	glyphFloor:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	glyphWater:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	glyphTrail:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	glyphCut:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	glyphPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	glyphHunter:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	glyphPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	glyphExit:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	glyphStart:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	glyphBeacon:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	glyphRelic:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	glyphSwitchOff: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	glyphSwitchOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// hudLines is the number of non-map lines RenderSnapshot emits.
const hudLines = 4

// RenderSnapshot renders a snapshot into a styled string that fits a
// width x height terminal. Floors larger than the viewport are scrolled to
// keep the player on screen.
func RenderSnapshot(snap engine.Snapshot, width, height int) string {
	if snap.Width == 0 || snap.Height == 0 {
		return statusStyle.Render("Carving the first floor...")
	}

	grid := composeGrid(snap)

	viewW, viewH := width, height-hudLines
	if viewW <= 0 {
		viewW = snap.Width
	}
	if viewH <= 0 {
		viewH = snap.Height
	}
	ox := cameraOrigin(snap.Player.Pos.X, snap.Width, viewW)
	oy := cameraOrigin(snap.Player.Pos.Y, snap.Height, viewH)

	var sb strings.Builder
	sb.Grow(snap.Width*snap.Height*2 + snap.Height)

	sb.WriteString(renderHUD(snap))
	sb.WriteByte('\n')

	for y := oy; y < oy+viewH && y < snap.Height; y++ {
		// Group consecutive cells with the same glyph for fewer escapes.
		x := ox
		rowEnd := ox + viewW
		if rowEnd > snap.Width {
			rowEnd = snap.Width
		}
		for x < rowEnd {
			start := grid[y][x]
			var run strings.Builder
			for x < rowEnd && grid[y][x] == start {
				run.WriteRune(grid[y][x])
				x++
			}
			style, ok := glyphStyles[start]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(renderFooter(snap))
	return sb.String()
}

// composeGrid builds the glyph grid: terrain first, then anchors, pending
// cuts, the hunter, and the player on top.
func composeGrid(snap engine.Snapshot) [][]rune {
	grid := make([][]rune, snap.Height)
	for y := range grid {
		grid[y] = make([]rune, snap.Width)
		for x := range grid[y] {
			switch snap.TileAt(x, y) {
			case engine.ViewWall:
				grid[y][x] = glyphWall
			case engine.ViewWater:
				grid[y][x] = glyphWater
			case engine.ViewTrail:
				grid[y][x] = glyphTrail
			case engine.ViewCut:
				grid[y][x] = glyphCut
			default:
				grid[y][x] = glyphFloor
			}
		}
	}

	for _, a := range snap.Anchors {
		grid[a.Pos.Y][a.Pos.X] = anchorGlyph(a)
	}
	for _, p := range snap.PendingCuts {
		grid[p.Y][p.X] = glyphPending
	}
	if snap.HunterVisible {
		grid[snap.Hunter.Y][snap.Hunter.X] = glyphHunter
	}
	grid[snap.Player.Pos.Y][snap.Player.Pos.X] = glyphPlayer
	return grid
}

func anchorGlyph(a engine.AnchorView) rune {
	switch a.Kind {
	case procgen.AnchorExit:
		return glyphExit
	case procgen.AnchorPlayerStart:
		return glyphStart
	case procgen.AnchorBeacon:
		return glyphBeacon
	case procgen.AnchorRelic:
		return glyphRelic
	case procgen.AnchorSwitch:
		if a.On {
			return glyphSwitchOn
		}
		return glyphSwitchOff
	default:
		return glyphFloor
	}
}

// cameraOrigin clamps a viewport so the focus stays centered where possible.
func cameraOrigin(focus, mapSize, viewSize int) int {
	if mapSize <= viewSize {
		return 0
	}
	origin := focus - viewSize/2
	if origin < 0 {
		origin = 0
	}
	if origin > mapSize-viewSize {
		origin = mapSize - viewSize
	}
	return origin
}

func renderHUD(snap engine.Snapshot) string {
	head := fmt.Sprintf("Floor %d  Light %d/%d  Relics %d  Steps %d",
		snap.FloorIndex,
		snap.Player.Light.Current, snap.Player.Light.Max,
		snap.Player.Relics, snap.Steps)

	var threat string
	switch snap.DangerKind {
	case danger.KindHunter:
		threat = fmt.Sprintf("hunter  noise %d", snap.NoisePressure)
		if snap.HunterVisible {
			threat += "  NEARBY"
		}
	case danger.KindCollapse:
		threat = "collapse"
		if len(snap.PendingCuts) > 0 {
			threat = fmt.Sprintf("collapse  impact in %d", snap.CollapseIn)
		}
	}
	return hudStyle.Render(head) + "  " + dangerStyle.Render(threat)
}

func renderFooter(snap engine.Snapshot) string {
	var sb strings.Builder
	switch snap.Status {
	case engine.StatusPaused:
		sb.WriteString(pausedStyle.Render("-- PAUSED --"))
	case engine.StatusGameOver:
		sb.WriteString(overStyle.Render(fmt.Sprintf("Run over: %s.", snap.Outcome)))
		sb.WriteString(statusStyle.Render("  r restart, q quit"))
	default:
		sb.WriteString(statusStyle.Render(snap.StatusLine))
	}
	sb.WriteByte('\n')
	sb.WriteString(statusStyle.Render("move wasd/arrows  shift quiet  e interact  esc pause  q quit"))
	return sb.String()
}
