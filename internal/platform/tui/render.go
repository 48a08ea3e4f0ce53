package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// kindColors is the guideline color of each tetromino.
var kindColors = map[tetris.Kind]core.Color{
	tetris.KindI: core.ColorCyan,
	tetris.KindJ: core.ColorBlue,
	tetris.KindL: core.ColorOrange,
	tetris.KindO: core.ColorYellow,
	tetris.KindS: core.ColorGreen,
	tetris.KindT: core.ColorMagenta,
	tetris.KindZ: core.ColorRed,
}

const (
	blockRune = '█'
	ghostRune = '░'
	cellWidth = 2 // terminal columns per board cell

	panelWidth   = 14
	previewWidth = 4*cellWidth + 2
	previewRows  = 2
	panelGap     = 2
)

// layout positions the board and side panel on the screen.
type layout struct {
	board core.Rect
	next  core.Rect
	hold  core.Rect
	hud   core.Rect
}

func newLayout(rows, cols int) layout {
	board := core.NewRect(0, 0, cols*cellWidth+2, rows+2)
	next := board.RightOf(panelGap, previewWidth, previewRows+2)
	hold := next.Below(1, previewWidth, previewRows+2)
	hud := hold.Below(1, panelWidth, 5)
	return layout{board: board, next: next, hold: hold, hud: hud}
}

// size returns the screen dimensions needed to draw everything.
func (l layout) size() (int, int) {
	w := max(l.board.Right(), l.next.Right(), l.hud.Right())
	h := max(l.board.Bottom(), l.hud.Bottom())
	return w, h
}

// ScreenSize returns the character cells needed to draw a rows x cols
// game, without the help bar.
func ScreenSize(rows, cols int) (int, int) {
	return newLayout(rows, cols).size()
}

// hud holds the values shown beside the board that do not come from the
// engine.
type hud struct {
	HighScore int
	Paused    bool
}

// drawGame renders a snapshot into s. The screen is resized to fit.
func drawGame(s *core.Screen, snap tetris.Snapshot, h hud) {
	l := newLayout(snap.Rows, snap.Cols)
	w, ht := l.size()
	s.Resize(w, ht)
	s.Clear()

	s.DrawBox(l.board, core.ColorGray)
	inner := l.board.Inner()

	if !snap.Over && !snap.Falling.IsNone() {
		for _, c := range snap.Ghost.Cells() {
			if snap.At(c.Row, c.Col).IsEmpty() {
				drawCell(s, inner, c.Row, c.Col, core.Cell{Rune: ghostRune, Color: core.ColorGray})
			}
		}
	}
	for r := range snap.Rows {
		for c := range snap.Cols {
			cell := snap.At(r, c)
			if cell.IsEmpty() {
				continue
			}
			drawCell(s, inner, r, c, core.Cell{Rune: blockRune, Color: kindColors[cell.Kind()]})
		}
	}

	drawPreview(s, l.next, "NEXT", snap.Next)
	drawPreview(s, l.hold, "HOLD", snap.Held)

	x, y := l.hud.X, l.hud.Y
	s.DrawTextColor(x, y, "SCORE", core.ColorGray)
	s.DrawText(x, y+1, fmt.Sprintf("%d", snap.Points))
	s.DrawTextColor(x, y+2, "LINES", core.ColorGray)
	s.DrawText(x+6, y+2, fmt.Sprintf("%d", snap.Lines))
	s.DrawTextColor(x, y+3, "LEVEL", core.ColorGray)
	s.DrawText(x+6, y+3, fmt.Sprintf("%d", snap.Level))
	s.DrawTextColor(x, y+4, "HIGH", core.ColorGray)
	s.DrawText(x+6, y+4, fmt.Sprintf("%d", max(h.HighScore, snap.Points)))

	switch {
	case snap.Over:
		drawBanner(s, inner, "GAME OVER", core.ColorRed)
	case h.Paused:
		drawBanner(s, inner, "PAUSED", core.ColorYellow)
	}
}

func drawCell(s *core.Screen, area core.Rect, row, col int, c core.Cell) {
	x := area.X + col*cellWidth
	for i := range cellWidth {
		s.SetCell(x+i, area.Y+row, c)
	}
}

// drawPreview draws a piece in spawn orientation inside a titled box.
func drawPreview(s *core.Screen, box core.Rect, title string, b tetris.Block) {
	s.DrawBox(box, core.ColorGray)
	s.DrawTextColor(box.X+1, box.Y, title, core.ColorGray)
	if b.IsNone() {
		return
	}
	inner := box.Inner()
	for _, d := range tetris.Offsets(b.Kind, 0) {
		drawCell(s, inner, d.Row, d.Col, core.Cell{Rune: blockRune, Color: kindColors[b.Kind]})
	}
}

func drawBanner(s *core.Screen, area core.Rect, text string, c core.Color) {
	y := area.Y + area.H/2
	x := area.X + (area.W-len(text))/2
	s.DrawTextColor(x, y, text, c)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
