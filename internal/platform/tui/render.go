package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/padlkit/padl/internal/engine"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// brick glyphs from full health down to nearly gone
var brickGlyphs = []rune{'░', '▒', '▓', '█'}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	classicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	brkoutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	panelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderSession paints one snapshot: header, court, control panel, help.
func renderSession(m *Model) string {
	s := m.state
	scr := m.screen
	scr.Clear()

	// Two rows of chrome above the court, two below.
	courtTop := 1
	courtH := m.height - 4
	if courtH < 4 {
		courtH = 4
	}
	courtW := m.width
	if courtW < 10 {
		courtW = 10
	}

	drawCourt(scr, m, courtTop, courtW, courtH)

	if s.Winner != engine.NoWinner {
		drawWinnerBanner(scr, s, courtTop, courtW, courtH)
	}

	boardStyle := classicStyle
	if s.Breakout {
		boardStyle = brkoutStyle
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(headerLine(m)))
	sb.WriteString("\n")
	sb.WriteString(boardStyle.Render(scr.String()))
	sb.WriteString("\n")
	sb.WriteString(panelStyle.Render(panelLine(m)))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// drawCourt projects the court onto screen cells.
func drawCourt(scr *Screen, m *Model, top, w, h int) {
	s := m.state
	court := m.cfg.Court.Size
	sx := float64(w-1) / court
	sy := float64(h-1) / court

	cellX := func(x float64) int { return int(x * sx) }
	cellY := func(y float64) int { return top + int(y*sy) }

	// Net
	for y := 0; y < h; y += 2 {
		scr.Set(w/2, top+y, NetChar)
	}

	// Bricks, shaded by opacity, only in breakout mode
	if s.Breakout {
		for _, br := range s.Bricks {
			bx := cellX(br.Position.X)
			by := cellY(br.Position.Y)
			bw := cellX(br.Position.X+br.Width) - bx
			if bw < 1 {
				bw = 1
			}
			bh := cellY(br.Position.Y+br.Height) - by
			if bh < 1 {
				bh = 1
			}
			scr.FillRect(bx, by, bw, bh, brickGlyph(br.Opacity))
		}
	}

	// Paddles
	ph := int(m.cfg.Paddle.Height * sy)
	if ph < 1 {
		ph = 1
	}
	scr.DrawVLine(cellX(s.PlayerBar.Position.X), cellY(s.PlayerBar.Position.Y), ph, PaddleChar)
	scr.DrawVLine(cellX(s.ComputerBar.Position.X), cellY(s.ComputerBar.Position.Y), ph, PaddleChar)

	// Ball
	scr.Set(cellX(s.Ball.Position.X), cellY(s.Ball.Position.Y), BallChar)
}

// brickGlyph shades a brick by its remaining opacity.
func brickGlyph(opacity float64) rune {
	idx := int(opacity * float64(len(brickGlyphs)))
	if idx >= len(brickGlyphs) {
		idx = len(brickGlyphs) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return brickGlyphs[idx]
}

func headerLine(m *Model) string {
	s := m.state
	mode := "CLASSIC"
	if s.Breakout {
		mode = "BREAKOUT"
	}
	return fmt.Sprintf(" PADL  %s   YOU %d : %d CPU", mode, s.P1Score, s.P2Score)
}

func panelLine(m *Model) string {
	music := "off"
	if m.music {
		music = "on"
	}
	return fmt.Sprintf(" AI %v/20  music %s  t=%v", m.slider, music, m.state.Time)
}

// drawWinnerBanner draws the game-over box with the restart entry point.
func drawWinnerBanner(scr *Screen, s engine.State, top, w, h int) {
	title := "CPU WINS"
	if s.Winner == engine.PlayerWins {
		title = "YOU WIN!"
	}
	subtitle := fmt.Sprintf("%d - %d  |  press r to restart", s.P1Score, s.P2Score)

	boxW := len(subtitle) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := top + (h-boxH)/2

	scr.FillRect(boxX, boxY, boxW, boxH, ' ')
	scr.DrawBox(boxX, boxY, boxW, boxH)
	scr.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	scr.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
