// internal/tui/app.go
//
// This is the main TUI for blochterm. It uses bubbletea, which follows The
// Elm Architecture: the App model holds all state, Update reacts to
// messages, and View renders to a string.
//
// The TUI is only a rendering collaborator: every quantum-state decision
// lives in internal/qubit and internal/challenge. Keys become engine
// commands, the engine notifies, and the view re-reads the vector.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qubitlab/blochterm/internal/challenge"
	"github.com/qubitlab/blochterm/internal/config"
	"github.com/qubitlab/blochterm/internal/logbook"
	"github.com/qubitlab/blochterm/internal/qubit"
	"github.com/qubitlab/blochterm/packs"
)

// focusArea represents which panel receives navigation keys.
type focusArea int

const (
	focusSphere     focusArea = iota // gate keys act on the sphere
	focusChallenges                  // arrows/enter act on the challenge board
)

const logPanelLines = 6

// gateKeys maps keyboard commands to gates. The vocabulary is closed: any
// other key is simply not a gate command.
var gateKeys = map[string]qubit.Gate{
	"x": qubit.GateX,
	"y": qubit.GateY,
	"z": qubit.GateZ,
	"h": qubit.GateH,
	"s": qubit.GateS,
	"t": qubit.GateT,
}

// packsChangedMsg signals that the pack directory changed on disk.
type packsChangedMsg struct{}

// challengeItem implements list.Item for the challenge board.
type challengeItem struct {
	challenge challenge.Challenge
	done      bool
}

func (i challengeItem) Title() string {
	if i.done {
		return "✓ " + i.challenge.Title
	}
	return i.challenge.Title
}

func (i challengeItem) Description() string { return i.challenge.Description }
func (i challengeItem) FilterValue() string { return i.challenge.Title }

// App is the main application model.
type App struct {
	config      *config.Config
	session     *qubit.Session
	evaluator   *challenge.Evaluator
	completions *challenge.CompletionSet
	logbook     *logbook.Logbook
	watcher     *packs.Watcher

	challengeMenu list.Model
	focus         focusArea
	statusMsg     string

	// readout is refreshed by the engine's state-changed notification; the
	// view never recomputes it.
	readout string

	width  int
	height int
}

// NewApp wires the engine, evaluator, packs, and logbook for one session.
func NewApp(projectDir string) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}

	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "session.log"))
	if err != nil {
		lb = nil
	}

	basis := qubit.BasisZero
	if cfg.DefaultBasis() == "1" {
		basis = qubit.BasisOne
	}
	session := qubit.NewSession(qubit.WithBasis(basis))

	evaluator := challenge.NewEvaluator()
	var watcher *packs.Watcher
	if cfg.PacksEnabled() {
		added, err := packs.Register(evaluator, cfg.PacksDir())
		if err != nil {
			return nil, err
		}
		if added > 0 && lb != nil {
			lb.Info("Loaded %d pack challenge(s) from %s", added, cfg.PacksDir())
		}
		if w, err := packs.NewWatcher(cfg.PacksDir()); err == nil {
			watcher = w
		} else if lb != nil {
			lb.Warn("Pack watcher unavailable: %v", err)
		}
	}

	menu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Challenges"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	app := &App{
		config:        cfg,
		session:       session,
		evaluator:     evaluator,
		completions:   challenge.NewCompletionSet(),
		logbook:       lb,
		watcher:       watcher,
		challengeMenu: menu,
		statusMsg:     "x/y/z/h/s/t gates · 0/1 reset · u undo · tab challenges",
	}
	session.Subscribe(app.refreshReadout)
	app.refreshReadout()
	app.refreshChallengeMenu()
	if lb != nil {
		lb.Info("Session %s opened at |%s⟩", session.ID(), cfg.DefaultBasis())
	}
	return app, nil
}

// refreshReadout is the engine's state-changed observer: it pulls the new
// vector and polar angles and formats the 3-decimal readout.
func (a *App) refreshReadout() {
	v := a.session.Vector()
	theta, phi := a.session.Polar()
	a.readout = fmt.Sprintf("%s\nθ = %.3f\nφ = %.3f\nundo steps: %d",
		v, theta, phi, a.session.Depth())
}

func (a *App) refreshChallengeMenu() {
	all := a.evaluator.Challenges()
	items := make([]list.Item, len(all))
	for i, c := range all {
		items[i] = challengeItem{challenge: c, done: a.completions.Contains(c.ID)}
	}
	selected := a.challengeMenu.Index()
	a.challengeMenu.SetItems(items)
	if selected >= 0 && selected < len(items) {
		a.challengeMenu.Select(selected)
	}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return a.waitForPackChange()
}

// waitForPackChange blocks until the pack directory changes.
func (a *App) waitForPackChange() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		<-a.watcher.Changes()
		return packsChangedMsg{}
	}
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.challengeMenu.SetSize(max(20, msg.Width/3), max(10, msg.Height-12))
		return a, nil

	case packsChangedMsg:
		a.reloadPacks()
		return a, a.waitForPackChange()

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q":
			a.logInfo("Session %s closed · %d/%d challenges complete",
				a.session.ID(), a.completions.Len(), len(a.evaluator.Challenges()))
			if a.watcher != nil {
				_ = a.watcher.Close()
			}
			return a, tea.Quit
		case "tab":
			if a.focus == focusSphere {
				a.focus = focusChallenges
			} else {
				a.focus = focusSphere
			}
			return a, nil
		case "u":
			depth := a.session.Depth()
			a.session.Undo()
			if depth == 0 {
				a.statusMsg = "Nothing to undo"
			} else {
				a.statusMsg = "Undid last command"
				a.logInfo("Undo · state %s", a.session.Vector())
			}
			return a, nil
		case "0":
			a.session.Reset(qubit.BasisZero)
			a.statusMsg = "Reset to |0⟩"
			a.logInfo("Reset |0⟩")
			return a, nil
		case "1":
			a.session.Reset(qubit.BasisOne)
			a.statusMsg = "Reset to |1⟩"
			a.logInfo("Reset |1⟩")
			return a, nil
		case "r":
			a.reloadPacks()
			return a, nil
		case "enter":
			if a.focus == focusChallenges {
				a.checkSelectedChallenge()
				return a, nil
			}
		}
		if gate, ok := gateKeys[key]; ok && a.focus == focusSphere {
			a.session.ApplyGate(gate)
			theta, phi := a.session.Polar()
			a.statusMsg = fmt.Sprintf("Applied %s", gate)
			a.logInfo("Gate %s · state %s · θ=%.3f φ=%.3f", gate, a.session.Vector(), theta, phi)
			return a, nil
		}
	}

	if a.focus == focusChallenges {
		var cmd tea.Cmd
		a.challengeMenu, cmd = a.challengeMenu.Update(msg)
		return a, cmd
	}
	return a, nil
}

// checkSelectedChallenge evaluates the highlighted challenge against the
// live vector. Completed challenges are not re-checked.
func (a *App) checkSelectedChallenge() {
	item, ok := a.challengeMenu.SelectedItem().(challengeItem)
	if !ok {
		return
	}
	id := item.challenge.ID
	if a.completions.Contains(id) {
		a.statusMsg = fmt.Sprintf("%s already completed", item.challenge.Title)
		return
	}
	res, err := a.evaluator.Check(id, a.session.Vector())
	if err != nil {
		a.statusMsg = err.Error()
		a.logWarn("Challenge check failed: %v", err)
		return
	}
	if res.Passed {
		a.completions.Add(id)
		a.refreshChallengeMenu()
		a.statusMsg = fmt.Sprintf("✓ %s completed", item.challenge.Title)
		a.logInfo("Challenge %s completed", id)
		return
	}
	a.statusMsg = fmt.Sprintf("Not yet · %s", res.Hint)
	a.logInfo("Challenge %s not satisfied at %s", id, a.session.Vector())
}

// reloadPacks rebuilds the evaluator from the builtin catalogue plus the
// current pack directory. Completions survive a reload.
func (a *App) reloadPacks() {
	if !a.config.PacksEnabled() {
		return
	}
	fresh := challenge.NewEvaluator()
	added, err := packs.Register(fresh, a.config.PacksDir())
	if err != nil {
		a.statusMsg = fmt.Sprintf("Pack reload failed: %v", err)
		a.logWarn("Pack reload failed: %v", err)
		return
	}
	a.evaluator = fresh
	a.refreshChallengeMenu()
	a.statusMsg = fmt.Sprintf("Packs reloaded · %d custom challenge(s)", added)
	a.logInfo("Packs reloaded · %d custom challenge(s)", added)
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 44 {
		leftWidth = width - 4
		rightWidth = 0
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		MarginBottom(1).
		Render("◌ BLOCHTERM")

	left := lipgloss.JoinVertical(lipgloss.Left,
		RenderSphere(a.session.Vector()),
		"",
		a.renderReadoutPanel(),
	)
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(left)

	var body string
	if rightWidth > 0 {
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(a.challengeBorderColor()).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(a.renderChallengePanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	} else {
		body = leftBox
	}

	sections := []string{header, body}
	if a.config.Project.UI.ShowLog {
		if panel := a.renderLogPanel(); panel != "" {
			sections = append(sections, panel)
		}
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) challengeBorderColor() lipgloss.Color {
	if a.focus == focusChallenges {
		return lipgloss.Color("#5B8DEF")
	}
	return lipgloss.Color("#444444")
}

func (a *App) renderReadoutPanel() string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("STATE")
	progress := fmt.Sprintf("challenges: %d/%d", a.completions.Len(), len(a.evaluator.Challenges()))
	return lipgloss.JoinVertical(lipgloss.Left, head, a.readout, progress)
}

func (a *App) renderChallengePanel() string {
	view := a.challengeMenu.View()
	hint := "Enter → check goal    Tab → back to sphere"
	if a.focus == focusSphere {
		hint = "Tab → challenge board    r → reload packs"
	}
	instructions := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginTop(1).
		Render(hint)
	return lipgloss.JoinVertical(lipgloss.Left, view, instructions)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s", filepath.Base(a.logbook.Path())))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
