// cmd/blochctl/main.go
//
// Non-interactive circuit runner: applies a comma-separated gate sequence to
// a fresh session and prints the readout plus every challenge verdict. Gate
// names arrive from the command line, an untrusted boundary, so unlike the
// TUI this binary rejects unknown gates instead of silently ignoring them.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qubitlab/blochterm/internal/challenge"
	"github.com/qubitlab/blochterm/internal/config"
	"github.com/qubitlab/blochterm/internal/qubit"
	"github.com/qubitlab/blochterm/packs"
)

func main() {
	gateList := flag.String("gates", "", "comma-separated circuit, e.g. x,h,t")
	basisFlag := flag.String("basis", "0", "starting basis state: 0 or 1")
	projectDir := flag.String("project", "", "directory holding .blochterm (defaults to cwd)")
	withPacks := flag.Bool("packs", true, "include challenge packs from the project directory")
	flag.Parse()

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}
	cfg, err := config.NewConfig(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}

	basis, err := parseBasis(*basisFlag)
	if err != nil {
		die("%v", err)
	}
	circuit, err := parseCircuit(*gateList)
	if err != nil {
		die("%v", err)
	}

	evaluator := challenge.NewEvaluator()
	if *withPacks && cfg.PacksEnabled() {
		if _, err := packs.Register(evaluator, cfg.PacksDir()); err != nil {
			die("load packs: %v", err)
		}
	}

	session := qubit.NewSession(qubit.WithBasis(basis))
	for _, gate := range circuit {
		session.ApplyGate(gate)
	}

	printReadout(session)
	printVerdicts(evaluator, session.Vector())
}

func parseBasis(value string) (qubit.Basis, error) {
	switch strings.TrimSpace(value) {
	case "0":
		return qubit.BasisZero, nil
	case "1":
		return qubit.BasisOne, nil
	default:
		return qubit.BasisZero, fmt.Errorf("basis must be 0 or 1, got %q", value)
	}
}

func parseCircuit(value string) ([]qubit.Gate, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, ",")
	circuit := make([]qubit.Gate, 0, len(parts))
	for _, part := range parts {
		gate, err := qubit.ParseGate(part)
		if err != nil {
			if errors.Is(err, qubit.ErrUnknownGate) {
				return nil, fmt.Errorf("%v (valid gates: %s)", err, gateNames())
			}
			return nil, err
		}
		circuit = append(circuit, gate)
	}
	return circuit, nil
}

func gateNames() string {
	gates := qubit.Gates()
	names := make([]string, len(gates))
	for i, g := range gates {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

func printReadout(session *qubit.Session) {
	theta, phi := session.Polar()
	fmt.Printf("vector  %s\n", session.Vector())
	fmt.Printf("theta   %.3f\n", theta)
	fmt.Printf("phi     %.3f\n", phi)
}

func printVerdicts(ev *challenge.Evaluator, v qubit.Vector) {
	fmt.Println()
	for _, c := range ev.Challenges() {
		res, err := ev.Check(c.ID, v)
		if err != nil {
			die("check %s: %v", c.ID, err)
		}
		mark := "✗"
		if res.Passed {
			mark = "✓"
		}
		fmt.Printf("%s %-20s %s\n", mark, c.ID, c.Title)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
