package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/dvalenta/terrainforge/services/terrain"
)

// generatedMsg carries the outcome of a generation pass back into Update.
type generatedMsg struct {
	result *terrain.Result
	err    error
}

// ViewerModel renders a generated terrain as a colored cell grid and lets the
// user reseed and tweak octave counts interactively.
type ViewerModel struct {
	cfg       terrain.Config
	result    *terrain.Result
	width     int
	height    int
	showWater bool
	loading   bool
	errorMsg  string
}

func newViewerModel(cfg terrain.Config) ViewerModel {
	return ViewerModel{
		cfg:       cfg,
		showWater: true,
		loading:   true,
	}
}

// Init kicks off the first generation pass
func (m ViewerModel) Init() tea.Cmd {
	return m.generateCmd()
}

// generateCmd runs a full generation pass off the UI loop
func (m ViewerModel) generateCmd() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		svc, err := terrain.NewService(cfg)
		if err != nil {
			return generatedMsg{err: err}
		}
		result, err := svc.Generate(context.Background(), terrain.NewMemorySurface())
		return generatedMsg{result: result, err: err}
	}
}

// Update handles key presses and generation results
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generatedMsg:
		m.loading = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		m.errorMsg = ""
		m.result = msg.result
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "r":
			m.cfg.Seed = time.Now().UnixNano()
			m.loading = true
			return m, m.generateCmd()

		case "w":
			m.showWater = !m.showWater
			return m, nil

		case "+", "=":
			m.cfg.Octaves++
			m.loading = true
			return m, m.generateCmd()

		case "-":
			if m.cfg.Octaves > 0 {
				m.cfg.Octaves--
				m.loading = true
				return m, m.generateCmd()
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the terrain grid with a title and status bar
func (m ViewerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Terrain Viewer"))
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errorMsg))
		b.WriteString("\n")
		return b.String()
	}

	if m.loading || m.result == nil {
		b.WriteString(helpStyle.Render("Generating terrain..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	status := fmt.Sprintf("seed %d | octaves %d | water %.2f | generated in %s",
		m.cfg.Seed, m.cfg.Octaves, m.cfg.WaterLevel, m.result.Duration.Round(time.Millisecond))
	b.WriteString(statusBarStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r: reseed | w: toggle water | +/-: octaves | q: quit"))

	return b.String()
}

// renderGrid downsamples the splat map to the terminal size. Each display
// cell is two columns wide so the aspect ratio is roughly square.
func (m ViewerModel) renderGrid() string {
	cols := m.width / 2
	rows := m.height - 4
	if cols < 1 || rows < 1 {
		cols, rows = 32, 32
	}
	if cols > m.result.Splat.Resolution() {
		cols = m.result.Splat.Resolution()
	}
	if rows > m.result.Splat.Resolution() {
		rows = m.result.Splat.Resolution()
	}

	splatRes := m.result.Splat.Resolution()
	var b strings.Builder
	for row := 0; row < rows; row++ {
		v := float64(row) / float64(rows-1+boolToInt(rows == 1))
		for col := 0; col < cols; col++ {
			u := float64(col) / float64(cols-1+boolToInt(cols == 1))

			h := m.result.Grid.Sample(u, v)
			if m.showWater && h < m.cfg.WaterLevel {
				b.WriteString(cellStyle(waterCellColor).String())
				continue
			}

			sx := int(u * float64(splatRes-1))
			sz := int(v * float64(splatRes-1))
			layer := m.result.Splat.DominantAt(sx, sz)
			b.WriteString(cellStyle(layerColors[layer%len(layerColors)]).String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
