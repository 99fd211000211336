package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"vela"
)

// pulse drives the full frame pipeline from a bubbletea tick loop: every
// few seconds the highlighted panel flips, and the layout animates the
// indicator across instead of snapping.

const (
	tickRate = 50 * time.Millisecond
	flipRate = 2 * time.Second
)

type tickMsg time.Time

type model struct {
	display *vela.Display
	width   int
	height  int
	flip    bool
	ticks   int
	palette []vela.Color
}

func newModel() model {
	return model{
		display: vela.NewDisplay(60, 12),
		width:   60,
		height:  12,
		palette: buildPalette(8),
	}
}

// buildPalette spreads hues evenly around the wheel.
func buildPalette(n int) []vela.Color {
	out := make([]vela.Color, n)
	for i := range out {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.65, 0.95)
		r, g, b := c.RGB255()
		out[i] = vela.RGB(r, g, b)
	}
	return out
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.flip = !m.flip
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 1
		m.display.Resize(m.width, m.height)
		return m, nil
	case tickMsg:
		m.ticks++
		if m.ticks%int(flipRate/tickRate) == 0 {
			m.flip = !m.flip
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	view := m.buildView()
	buf := m.display.Frame(view)
	help := lipgloss.NewStyle().Faint(true).Render("space: flip   q: quit")
	return buf.ANSI() + "\n" + help
}

func (m model) buildView() vela.View {
	font := vela.TerminalFont{}
	indicator := vela.ForegroundColor(
		vela.NewText("●", font),
		m.palette[m.ticks/8%len(m.palette)],
	)

	alignment := vela.Alignment{Horizontal: vela.Leading, Vertical: vela.VCenter}
	if m.flip {
		alignment.Horizontal = vela.Trailing
	}

	track := vela.Animated(
		vela.NewFixedFrame(indicator).
			WithWidth(vela.Dimension(m.width-4)).
			WithAlignment(alignment),
		vela.EaseInOutAnimation(600*time.Millisecond),
		m.flip,
	)

	title := vela.NewText("pulse", font).WithAlignment(vela.HCenter)
	status := fmt.Sprintf("tick %d", m.ticks)

	// The edge label swaps content and color, never tree shape: a branch
	// change between frames would be a join mismatch.
	edge, edgeColor := "leading", vela.Cyan
	if m.flip {
		edge, edgeColor = "trailing", vela.Yellow
	}

	return vela.NewPadding(
		vela.NewVStack(
			vela.ForegroundColor(title, vela.BrightWhite),
			vela.NewDivider(),
			vela.NewSpacer(),
			track,
			vela.NewSpacer(),
			vela.NewDivider(),
			vela.NewHStack(
				vela.NewText(status, font),
				vela.NewSpacer(),
				vela.ForegroundColor(vela.NewText(edge, font), edgeColor),
			),
		),
		1,
	)
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
