package main

import (
	"errors"
	"strings"
	"testing"

	"savescout/internal/testsupport"
)

func TestResolveFromFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteGOGLibrary(t, env.root, testsupport.LibraryGame{AppName: "1207", Title: "Celeste", Platform: "linux"})

	out, _, err := runCLI(t, []string{"resolve", "--app-name", "1207", "--runner", "gog"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if strings.TrimSpace(out) != "Celeste" {
		t.Fatalf("expected Celeste, got %q", out)
	}
}

func TestResolveFromEnvironment(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteLegendaryInstalled(t, testsupport.LegendaryDir(env.root),
		testsupport.LegendaryInstall{AppName: "Fish", Title: "Fishing Game", Platform: "Windows", InstallPath: "/epic/Fish"})
	t.Setenv("HEROIC_APP_NAME", "Fish")
	t.Setenv("HEROIC_APP_RUNNER", "legendary")
	t.Setenv("HEROIC_APP_SOURCE", "epic")

	out, _, err := runCLI(t, []string{"resolve"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if strings.TrimSpace(out) != "Fishing Game" {
		t.Fatalf("expected Fishing Game, got %q", out)
	}
}

func TestResolveNoMatch(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"resolve"}, env.configPath)
	if !errors.Is(err, errNoMatch) {
		t.Fatalf("expected no match without environment, got %v", err)
	}

	_, _, err = runCLI(t, []string{"resolve", "--app-name", "x", "--runner", "nile"}, env.configPath)
	if !errors.Is(err, errNoMatch) {
		t.Fatalf("expected no match for nile runner, got %v", err)
	}
}

func TestResolveRequiresBothFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"resolve", "--app-name", "x"}, env.configPath); err == nil || errors.Is(err, errNoMatch) {
		t.Fatalf("expected flag validation error, got %v", err)
	}
}
