// cmd/blochterm/main.go
//
// Entry point for the interactive Bloch-sphere explorer. It initializes the
// .blochterm folder in the current directory and hands control to the TUI.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qubitlab/blochterm/internal/config"
	"github.com/qubitlab/blochterm/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitBlochDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .blochterm directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting blochterm: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
