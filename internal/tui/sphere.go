// internal/tui/sphere.go
//
// A terminal projection of the Bloch sphere. Pure rendering: the grid is
// rebuilt from the vector on every frame and nothing here mutates state.

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qubitlab/blochterm/internal/qubit"
)

const (
	sphereRadius = 9 // grid rows from center to pole
	sphereAspect = 2 // terminal cells are roughly twice as tall as wide
)

var (
	outlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	frontMarker  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).Render("◉")
	backMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Render("◌")
)

// RenderSphere draws the sphere outline, the equator, the Z axis labels, and
// the state marker. The projection is orthographic: the screen plane is
// Y (horizontal) by Z (vertical), with X pointing at the viewer.
func RenderSphere(v qubit.Vector) string {
	rows := 2*sphereRadius + 1
	cols := 2*sphereRadius*sphereAspect + 1
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	cx := sphereRadius * sphereAspect
	cy := sphereRadius

	// Outline: the great circle facing the viewer.
	for deg := 0; deg < 360; deg += 3 {
		rad := float64(deg) * math.Pi / 180
		col := cx + int(math.Round(math.Cos(rad)*sphereRadius*sphereAspect))
		row := cy + int(math.Round(math.Sin(rad)*sphereRadius))
		plot(grid, row, col, outlineStyle.Render("·"))
	}
	// Equator: the XY plane edge-on, flattened toward the viewer.
	for deg := 0; deg < 360; deg += 4 {
		rad := float64(deg) * math.Pi / 180
		col := cx + int(math.Round(math.Cos(rad)*sphereRadius*sphereAspect))
		row := cy + int(math.Round(math.Sin(rad)*sphereRadius*0.28))
		plot(grid, row, col, outlineStyle.Render("·"))
	}
	// Axis hints.
	plot(grid, cy, cx, axisStyle.Render("+"))
	plot(grid, 0, cx, axisStyle.Render("|0⟩"))
	plot(grid, rows-1, cx, axisStyle.Render("|1⟩"))
	plot(grid, cy, cols-1, axisStyle.Render("+y"))
	plot(grid, cy+2, cx-sphereAspect*3, axisStyle.Render("+x"))

	// State marker, drawn last so it always wins the cell. Points on the
	// far hemisphere (x < 0) render hollow.
	mcol := cx + int(math.Round(v.Y*sphereRadius*sphereAspect))
	mrow := cy - int(math.Round(v.Z*sphereRadius))
	marker := frontMarker
	if v.X < 0 {
		marker = backMarker
	}
	plot(grid, mrow, mcol, marker)

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = strings.TrimRight(strings.Join(grid[r], ""), " ")
	}
	return strings.Join(lines, "\n")
}

func plot(grid [][]string, row, col int, s string) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = s
}
